// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrFooterConfigNotFound is returned when the footer configuration row is absent.
var ErrFooterConfigNotFound = errors.New("footer config not found")

// ContentRepository exposes the read operations of the display-content
// collaborator: portfolio pieces, testimonials, skills and ad banners.
type ContentRepository interface {
	ListArtworks(ctx context.Context) ([]*entity.Artwork, error)
	ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error)
	ListSkills(ctx context.Context) ([]*entity.Skill, error)
	ListActiveBanners(ctx context.Context) ([]*entity.Banner, error)
}

// FooterConfigRepository reads and writes the single footer configuration
// row. Update is only reachable through a session-protected endpoint.
type FooterConfigRepository interface {
	Get(ctx context.Context) (*entity.FooterConfig, error)
	Update(ctx context.Context, text string) (*entity.FooterConfig, error)
}
