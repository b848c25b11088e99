package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type CreateReviewRequest struct {
	Name   string      `json:"name"`
	Text   string      `json:"text"`
	Rating interface{} `json:"rating"`
}

func (h *Handler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if _, err := h.store.AddReview(c.Request().Context(), req.Name, req.Text, toNumber(req.Rating)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListReviews(c echo.Context) error {
	reviews, err := h.store.ListReviews(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *Handler) ApproveReview(c echo.Context) error {
	if err := h.store.ApproveReview(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) DeleteReview(c echo.Context) error {
	if err := h.store.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
