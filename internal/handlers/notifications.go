package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dukaadmin/internal/notification"
)

// SendNotification dispatches a push immediately, or schedules it when the
// request carries a future scheduledTime.
func (h *Handler) SendNotification(c echo.Context) error {
	var req notification.DispatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title and Body are required"})
	}

	result, err := h.dispatcher.Dispatch(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, notification.ErrMissingTitleBody) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// ListNotifications returns the history, newest first.
func (h *Handler) ListNotifications(c echo.Context) error {
	records, err := h.history.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, records)
}

type EditNotificationRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (h *Handler) UpdateNotification(c echo.Context) error {
	var req EditNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.history.Update(c.Request().Context(), c.Param("id"), req.Title, req.Body); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) DeleteNotification(c echo.Context) error {
	if err := h.history.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Stats is the public dashboard counter: total notifications plus the
// server clock.
func (h *Handler) Stats(c echo.Context) error {
	count, err := h.history.Count(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_notifications": count,
		"server_time":         time.Now().UTC().Format(time.RFC3339),
	})
}
