// Package entity contains the core business objects of the project.
package entity

import "time"

// Artwork is a single portfolio piece shown on the public site.
type Artwork struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Testimonial is a client quote displayed on the marketing pages.
type Testimonial struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Quote     string    `json:"quote"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
}

// Skill is one entry of the skills section.
type Skill struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Banner is an ad banner placement.
type Banner struct {
	ID       uint   `json:"id"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	Position string `json:"position"`
	Active   bool   `json:"active"`
}

// FooterConfig holds the editable footer text. There is a single row;
// updates go through the session-protected endpoint only.
type FooterConfig struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updatedAt"`
}
