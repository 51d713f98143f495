// Package entity contains the core business objects of the project.
package entity

// SessionClaims are the identity fields embedded in a signed session token.
// They are copied verbatim from the User at issuance time and are immutable
// for the life of the token; there is no revocation list, validity is purely
// cryptographic plus expiry.
//
// A SessionClaims value must only be produced at token issuance from a
// verified User, or by successful token verification. It is never built
// from unvalidated input.
type SessionClaims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// ClaimsFromUser copies the identity fields of a verified user into claims.
func ClaimsFromUser(user *User) *SessionClaims {
	return &SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role.String(),
	}
}
