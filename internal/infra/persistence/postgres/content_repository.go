// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contentRepository implements the read side of the display-content collaborator.
type contentRepository struct {
	provider *Provider
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(provider *Provider) repository.ContentRepository {
	return &contentRepository{provider: provider}
}

// ListArtworks returns all portfolio pieces, newest first.
func (repo *contentRepository) ListArtworks(ctx context.Context) ([]*entity.Artwork, error) {
	db, err := repo.provider.Get()
	if err != nil {
		return nil, err
	}

	var rows []model.ArtworkModel
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list artworks")
	}

	artworks := make([]*entity.Artwork, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		artworks = append(artworks, &entity.Artwork{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			ImageURL:    row.ImageURL,
			Category:    row.Category,
			Featured:    row.Featured,
			CreatedAt:   row.CreatedAt,
		})
	}

	return artworks, nil
}

// ListTestimonials returns all testimonials, newest first.
func (repo *contentRepository) ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	db, err := repo.provider.Get()
	if err != nil {
		return nil, err
	}

	var rows []model.TestimonialModel
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list testimonials")
	}

	testimonials := make([]*entity.Testimonial, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		testimonials = append(testimonials, &entity.Testimonial{
			ID:        row.ID,
			Author:    row.Author,
			Quote:     row.Quote,
			Company:   row.Company,
			CreatedAt: row.CreatedAt,
		})
	}

	return testimonials, nil
}

// ListSkills returns every skill entry.
func (repo *contentRepository) ListSkills(ctx context.Context) ([]*entity.Skill, error) {
	db, err := repo.provider.Get()
	if err != nil {
		return nil, err
	}

	var rows []model.SkillModel
	if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	skills := make([]*entity.Skill, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		skills = append(skills, &entity.Skill{
			ID:    row.ID,
			Name:  row.Name,
			Level: row.Level,
		})
	}

	return skills, nil
}

// ListActiveBanners returns the banners currently eligible for placement.
func (repo *contentRepository) ListActiveBanners(ctx context.Context) ([]*entity.Banner, error) {
	db, err := repo.provider.Get()
	if err != nil {
		return nil, err
	}

	var rows []model.BannerModel
	if err := db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	banners := make([]*entity.Banner, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		banners = append(banners, &entity.Banner{
			ID:       row.ID,
			ImageURL: row.ImageURL,
			LinkURL:  row.LinkURL,
			Position: row.Position,
			Active:   row.Active,
		})
	}

	return banners, nil
}

// footerConfigRepository reads and writes the single footer configuration row.
type footerConfigRepository struct {
	provider *Provider
}

// NewFooterConfigRepository is the constructor for footerConfigRepository.
func NewFooterConfigRepository(provider *Provider) repository.FooterConfigRepository {
	return &footerConfigRepository{provider: provider}
}

// Get returns the footer configuration.
func (repo *footerConfigRepository) Get(ctx context.Context) (*entity.FooterConfig, error) {
	db, err := repo.provider.Get()
	if err != nil {
		return nil, err
	}

	var row model.FooterConfigModel
	if err := db.WithContext(ctx).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFooterConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to get footer config")
	}

	return toFooterConfigDomain(&row), nil
}

// Update replaces the footer text, creating the row on first write.
func (repo *footerConfigRepository) Update(ctx context.Context, text string) (*entity.FooterConfig, error) {
	db, err := repo.provider.Get()
	if err != nil {
		return nil, err
	}

	var row model.FooterConfigModel
	err = db.WithContext(ctx).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.FooterConfigModel{Text: text}
		if err := db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, errors.Wrap(err, "failed to create footer config")
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to load footer config")
	default:
		row.Text = text
		if err := db.WithContext(ctx).Save(&row).Error; err != nil {
			return nil, errors.Wrap(err, "failed to update footer config")
		}
	}

	return toFooterConfigDomain(&row), nil
}

func toFooterConfigDomain(data *model.FooterConfigModel) *entity.FooterConfig {
	return &entity.FooterConfig{
		ID:        data.ID,
		Text:      data.Text,
		UpdatedAt: data.UpdatedAt,
	}
}
