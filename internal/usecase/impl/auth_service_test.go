package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(claims *entity.SessionClaims) (string, error) {
	args := m.Called(claims)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(token string) (*entity.SessionClaims, bool) {
	args := m.Called(token)
	if claims := args.Get(0); claims != nil {
		return claims.(*entity.SessionClaims), args.Bool(1)
	}

	return nil, args.Bool(1)
}

func (m *mockTokenService) TokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockLoginAuditor struct {
	mock.Mock
}

func (m *mockLoginAuditor) Record(ctx context.Context, email string, success bool, userID *uint, meta service.AttemptMeta) error {
	args := m.Called(ctx, email, success, userID, meta)

	return args.Error(0)
}

type authServiceMocks struct {
	users   *mockUserRepository
	hasher  *mockPasswordHasher
	tokens  *mockTokenService
	auditor *mockLoginAuditor
}

func newTestAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	mocks := &authServiceMocks{
		users:   new(mockUserRepository),
		hasher:  new(mockPasswordHasher),
		tokens:  new(mockTokenService),
		auditor: new(mockLoginAuditor),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthService(mocks.users, mocks.hasher, mocks.tokens, mocks.auditor, logger), mocks
}

func testUser() *entity.User {
	return &entity.User{
		ID:           42,
		Email:        "admin@example.com",
		PasswordHash: "$2a$12$stored-hash",
		Name:         "Admin",
		Role:         entity.RoleAdmin,
	}
}

func userIDPointsTo(want uint) any {
	return mock.MatchedBy(func(id *uint) bool {
		return id != nil && *id == want
	})
}

func nilUserID() any {
	return mock.MatchedBy(func(id *uint) bool {
		return id == nil
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks := newTestAuthService(t)
	user := testUser()
	meta := service.AttemptMeta{ForwardedFor: "203.0.113.9", UserAgent: "test-agent"}

	mocks.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
	mocks.hasher.On("Check", "secret", user.PasswordHash).Return(true).Once()
	mocks.tokens.On("Issue", entity.ClaimsFromUser(user)).Return("signed-token", nil).Once()
	mocks.tokens.On("TokenTTL").Return(7 * 24 * time.Hour).Once()
	mocks.auditor.On("Record", mock.Anything, user.Email, true, userIDPointsTo(user.ID), meta).Return(nil).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    user.Email,
		Password: "secret",
		Meta:     meta,
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, 604800, output.MaxAge)
	require.NotNil(t, output.User)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, user.Email, output.User.Email)

	mocks.users.AssertExpectations(t)
	mocks.hasher.AssertExpectations(t)
	mocks.tokens.AssertExpectations(t)
	mocks.auditor.AssertExpectations(t)
}

func TestAuthService_Login_MissingInputIsNeverAudited(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "missing email", password: "secret"},
		{name: "missing password", email: "admin@example.com"},
		{name: "blank email", email: "   ", password: "secret"},
		{name: "both missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newTestAuthService(t)

			output, err := svc.Login(context.Background(), &usecase.LoginInput{
				Email:    tt.email,
				Password: tt.password,
			})
			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))

			mocks.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
			mocks.auditor.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	svc, mocks := newTestAuthService(t)
	meta := service.AttemptMeta{RealIP: "198.51.100.4"}

	mocks.users.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	mocks.auditor.On("Record", mock.Anything, "ghost@example.com", false, nilUserID(), meta).
		Return(nil).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
		Meta:     meta,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	mocks.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	mocks.auditor.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newTestAuthService(t)
	user := testUser()

	mocks.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
	mocks.hasher.On("Check", "wrong", user.PasswordHash).Return(false).Once()
	mocks.auditor.On("Record", mock.Anything, user.Email, false, userIDPointsTo(user.ID), mock.Anything).
		Return(nil).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	mocks.tokens.AssertNotCalled(t, "Issue", mock.Anything)
	mocks.auditor.AssertExpectations(t)
}

func TestAuthService_Login_UnknownAccountAndWrongPasswordShareOneMessage(t *testing.T) {
	// Both failure branches must surface the exact same user-facing error, so
	// responses cannot be used to probe which addresses have accounts.
	svc, mocks := newTestAuthService(t)
	user := testUser()

	mocks.users.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	mocks.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
	mocks.hasher.On("Check", "wrong", user.PasswordHash).Return(false).Once()
	mocks.auditor.On("Record", mock.Anything, mock.Anything, false, mock.Anything, mock.Anything).
		Return(nil).Twice()

	_, unknownErr := svc.Login(context.Background(), &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
	_, wrongErr := svc.Login(context.Background(), &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
}

func TestAuthService_Login_AuditFailureDoesNotChangeOutcome(t *testing.T) {
	svc, mocks := newTestAuthService(t)
	user := testUser()

	mocks.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
	mocks.hasher.On("Check", "secret", user.PasswordHash).Return(true).Once()
	mocks.tokens.On("Issue", mock.Anything).Return("signed-token", nil).Once()
	mocks.tokens.On("TokenTTL").Return(7 * 24 * time.Hour).Once()
	mocks.auditor.On("Record", mock.Anything, user.Email, true, mock.Anything, mock.Anything).
		Return(errors.New("audit table unavailable")).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    user.Email,
		Password: "secret",
	})
	require.NoError(t, err, "a failed audit write must never fail the login")
	assert.Equal(t, "signed-token", output.Token)

	mocks.auditor.AssertExpectations(t)
}

func TestAuthService_Login_LookupInfraErrorIsNotInvalidCredentials(t *testing.T) {
	svc, mocks := newTestAuthService(t)

	mocks.users.On("FindByEmail", mock.Anything, "admin@example.com").
		Return(nil, errors.New("connection reset")).Once()
	mocks.auditor.On("Record", mock.Anything, "admin@example.com", false, nilUserID(), mock.Anything).
		Return(nil).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "secret",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	// Infrastructure failures surface as generic errors, not as the 401
	// credential failure; the transport maps them to a plain 500.
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))

	mocks.auditor.AssertExpectations(t)
}

func TestAuthService_Login_TokenIssueFailureIsAuditedAsFailure(t *testing.T) {
	svc, mocks := newTestAuthService(t)
	user := testUser()

	mocks.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
	mocks.hasher.On("Check", "secret", user.PasswordHash).Return(true).Once()
	mocks.tokens.On("Issue", mock.Anything).Return("", errors.New("signing failure")).Once()
	mocks.auditor.On("Record", mock.Anything, user.Email, false, userIDPointsTo(user.ID), mock.Anything).
		Return(nil).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    user.Email,
		Password: "secret",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	mocks.auditor.AssertExpectations(t)
}
