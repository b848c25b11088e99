package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type UserPointsRequest struct {
	UserID string      `json:"userId"`
	Points interface{} `json:"points"`
}

// AddUserPoints is a stub kept for the dashboard. It acknowledges without
// touching the store; real point accounting would need user auth ids.
func (h *Handler) AddUserPoints(c echo.Context) error {
	var req UserPointsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Points added (Simulated)",
	})
}
