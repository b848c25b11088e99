package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetServiceStatus returns the public status board, defaulting every
// service to operational until something has been saved.
func (h *Handler) GetServiceStatus(c echo.Context) error {
	board, err := h.store.GetServiceStatus(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, board)
}

// UpdateServiceStatus merges the posted service/status pairs into the
// board; services not named keep their current status.
func (h *Handler) UpdateServiceStatus(c echo.Context) error {
	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.store.MergeServiceStatus(c.Request().Context(), fields); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
