package impl

import (
	"context"
	"strings"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
)

// contentService implements the ContentUsecase interface. It is plain CRUD
// plumbing over the same database handle the authentication core uses.
type contentService struct {
	content repository.ContentRepository
	footer  repository.FooterConfigRepository
}

// NewContentService is the constructor for contentService.
func NewContentService(
	content repository.ContentRepository,
	footer repository.FooterConfigRepository,
) usecase.ContentUsecase {
	return &contentService{
		content: content,
		footer:  footer,
	}
}

func (srv *contentService) ListArtworks(ctx context.Context) ([]*entity.Artwork, error) {
	return srv.content.ListArtworks(ctx)
}

func (srv *contentService) ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	return srv.content.ListTestimonials(ctx)
}

func (srv *contentService) ListSkills(ctx context.Context) ([]*entity.Skill, error) {
	return srv.content.ListSkills(ctx)
}

func (srv *contentService) ListActiveBanners(ctx context.Context) ([]*entity.Banner, error) {
	return srv.content.ListActiveBanners(ctx)
}

// GetFooter returns the footer configuration.
func (srv *contentService) GetFooter(ctx context.Context) (*entity.FooterConfig, error) {
	footer, err := srv.footer.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrFooterConfigNotFound) {
			return nil, domainerrors.ErrFooterNotFound.WrapMessage("footer config missing")
		}

		return nil, err
	}

	return footer, nil
}

// UpdateFooter replaces the footer text. The handler guards this with the
// session middleware; by the time this runs the caller is authenticated.
func (srv *contentService) UpdateFooter(ctx context.Context, input *usecase.UpdateFooterInput) (*entity.FooterConfig, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("footer text is required")
	}

	return srv.footer.Update(ctx, input.Text)
}
