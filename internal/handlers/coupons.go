package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dukaadmin/internal/db"
)

type CreateCouponRequest struct {
	Code     string      `json:"code"`
	Discount interface{} `json:"discount"`
	Type     string      `json:"type"`
}

func (h *Handler) CreateCoupon(c echo.Context) error {
	var req CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	coupon := db.NewCoupon(req.Code, toNumber(req.Discount), req.Type)
	if _, err := h.store.AddCoupon(c.Request().Context(), coupon); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListCoupons(c echo.Context) error {
	coupons, err := h.store.ListCoupons(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, coupons)
}

func (h *Handler) DeleteCoupon(c echo.Context) error {
	if err := h.store.DeleteCoupon(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
