package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// UpdateFooterInput carries the new footer text for the protected update.
type UpdateFooterInput struct {
	Text string `json:"text" validate:"required"`
}

// ContentUsecase exposes the display-content collaborator: public reads
// plus the session-protected footer update.
type ContentUsecase interface {
	ListArtworks(ctx context.Context) ([]*entity.Artwork, error)
	ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error)
	ListSkills(ctx context.Context) ([]*entity.Skill, error)
	ListActiveBanners(ctx context.Context) ([]*entity.Banner, error)

	GetFooter(ctx context.Context) (*entity.FooterConfig, error)
	UpdateFooter(ctx context.Context, input *UpdateFooterInput) (*entity.FooterConfig, error)
}
