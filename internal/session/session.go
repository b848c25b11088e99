package session

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"dukaadmin/internal/config"
)

const CookieName = "duka_session"

// Gate implements the single shared-password login. A successful login
// issues a signed cookie carrying a loggedIn claim; the middleware rejects
// protected requests without a valid one. There is no per-user identity and
// deliberately no rate limiting or lockout.
type Gate struct {
	secret       []byte
	password     string
	passwordHash string
	ttl          time.Duration
}

func NewGate(cfg *config.Config) *Gate {
	return &Gate{
		secret:       []byte(cfg.SessionSecret),
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
		ttl:          cfg.SessionTTL,
	}
}

// CheckPassword compares the submitted password against the shared secret.
// When ADMIN_PASSWORD_HASH is set the bcrypt hash wins over the plain value.
func (g *Gate) CheckPassword(password string) bool {
	if g.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(g.password), []byte(password)) == 1
}

// IssueCookie returns a session cookie holding a signed loggedIn token.
func (g *Gate) IssueCookie() (*http.Cookie, error) {
	claims := jwt.MapClaims{
		"loggedIn": true,
		"exp":      time.Now().Add(g.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(g.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// ClearCookie returns an expired cookie that removes the session.
func (g *Gate) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// LoggedIn reports whether the request carries a valid session cookie.
func (g *Gate) LoggedIn(c echo.Context) bool {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	loggedIn, _ := claims["loggedIn"].(bool)
	return loggedIn
}

// Middleware rejects requests without a valid session.
func (g *Gate) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !g.LoggedIn(c) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized. Please login."})
		}
		return next(c)
	}
}
