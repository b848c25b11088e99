package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the shared admin password for a session cookie.
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if !h.gate.CheckPassword(req.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Incorrect Password"})
	}

	cookie, err := h.gate.IssueCookie()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) CheckAuth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"loggedIn": h.gate.LoggedIn(c)})
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(h.gate.ClearCookie())
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
