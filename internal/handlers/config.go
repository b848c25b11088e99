package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dukaadmin/internal/remoteconfig"
)

// GetConfig returns the typed view of the remote config template.
func (h *Handler) GetConfig(c echo.Context) error {
	cfg, err := h.config.GetConfig(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cfg)
}

// UpdateConfig rewrites the known config parameters through a full
// fetch-modify-validate-publish cycle.
func (h *Handler) UpdateConfig(c echo.Context) error {
	var cfg remoteconfig.AppConfig
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.config.SetConfig(c.Request().Context(), &cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
