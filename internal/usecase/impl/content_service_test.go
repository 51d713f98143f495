package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"
)

type stubFooterRepository struct {
	footer      *entity.FooterConfig
	getErr      error
	updatedText string
}

func (r *stubFooterRepository) Get(context.Context) (*entity.FooterConfig, error) {
	return r.footer, r.getErr
}

func (r *stubFooterRepository) Update(_ context.Context, text string) (*entity.FooterConfig, error) {
	r.updatedText = text

	return &entity.FooterConfig{ID: 1, Text: text}, nil
}

func TestContentService_GetFooter_MapsMissingRow(t *testing.T) {
	repo := &stubFooterRepository{getErr: repository.ErrFooterConfigNotFound}
	svc := NewContentService(nil, repo)

	footer, err := svc.GetFooter(context.Background())
	require.Error(t, err)
	assert.Nil(t, footer)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrFooterNotFound.HTTPCode(), appErr.HTTPCode())
}

func TestContentService_GetFooter_PassesThroughOtherErrors(t *testing.T) {
	repo := &stubFooterRepository{getErr: errors.New("connection reset")}
	svc := NewContentService(nil, repo)

	_, err := svc.GetFooter(context.Background())
	require.Error(t, err)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestContentService_UpdateFooter(t *testing.T) {
	repo := &stubFooterRepository{}
	svc := NewContentService(nil, repo)

	footer, err := svc.UpdateFooter(context.Background(), &usecase.UpdateFooterInput{Text: "© 2026"})
	require.NoError(t, err)
	assert.Equal(t, "© 2026", footer.Text)
	assert.Equal(t, "© 2026", repo.updatedText)
}

func TestContentService_UpdateFooter_RejectsBlankText(t *testing.T) {
	repo := &stubFooterRepository{}
	svc := NewContentService(nil, repo)

	for _, text := range []string{"", "   "} {
		_, err := svc.UpdateFooter(context.Background(), &usecase.UpdateFooterInput{Text: text})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Empty(t, repo.updatedText, "a rejected update must not touch storage")
	}
}
