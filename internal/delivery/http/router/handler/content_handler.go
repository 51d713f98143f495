package handler

import (
	"net/http"

	"portfolio/internal/delivery/http/response"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler serves the display-content collaborator endpoints.
type ContentHandler struct {
	uc usecase.ContentUsecase
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// ListArtworks returns all portfolio pieces.
func (h *ContentHandler) ListArtworks(c echo.Context) error {
	artworks, err := h.uc.ListArtworks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, artworks)
}

// ListTestimonials returns all testimonials.
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.uc.ListTestimonials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, testimonials)
}

// ListSkills returns the skills section entries.
func (h *ContentHandler) ListSkills(c echo.Context) error {
	skills, err := h.uc.ListSkills(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, skills)
}

// ListBanners returns the active ad banners.
func (h *ContentHandler) ListBanners(c echo.Context) error {
	banners, err := h.uc.ListActiveBanners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, banners)
}

// GetFooter returns the footer configuration.
func (h *ContentHandler) GetFooter(c echo.Context) error {
	footer, err := h.uc.GetFooter(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, footer)
}

// UpdateFooter replaces the footer text. The route is registered behind
// RequireSession; identity is established before this runs.
func (h *ContentHandler) UpdateFooter(c echo.Context) error {
	var input usecase.UpdateFooterInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	footer, err := h.uc.UpdateFooter(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, footer)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
