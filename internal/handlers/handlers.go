package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"dukaadmin/internal/db"
	"dukaadmin/internal/notification"
	"dukaadmin/internal/remoteconfig"
	"dukaadmin/internal/session"
)

// DispatchService sends or schedules a push notification.
type DispatchService interface {
	Dispatch(ctx context.Context, req *notification.DispatchRequest) (*notification.DispatchResult, error)
}

// HistoryService is the notification history store.
type HistoryService interface {
	List(ctx context.Context) ([]*notification.Record, error)
	Update(ctx context.Context, id, title, body string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ConfigService is the remote config mapper.
type ConfigService interface {
	GetConfig(ctx context.Context) (*remoteconfig.AppConfig, error)
	SetConfig(ctx context.Context, cfg *remoteconfig.AppConfig) error
}

// ResourceStore is the reviews/coupons/service-status store.
type ResourceStore interface {
	AddReview(ctx context.Context, name, text string, rating float64) (string, error)
	ListReviews(ctx context.Context) ([]*db.Review, error)
	ApproveReview(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, id string) error
	AddCoupon(ctx context.Context, coupon *db.Coupon) (string, error)
	ListCoupons(ctx context.Context) ([]*db.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	GetServiceStatus(ctx context.Context) (map[string]interface{}, error)
	MergeServiceStatus(ctx context.Context, fields map[string]interface{}) error
}

// Handler holds every dependency the HTTP surface needs, passed in
// explicitly so tests can swap fakes.
type Handler struct {
	gate       *session.Gate
	dispatcher DispatchService
	history    HistoryService
	config     ConfigService
	store      ResourceStore
	validate   *validator.Validate
}

func New(gate *session.Gate, dispatcher DispatchService, history HistoryService, config ConfigService, store ResourceStore) *Handler {
	return &Handler{
		gate:       gate,
		dispatcher: dispatcher,
		history:    history,
		config:     config,
		store:      store,
		validate:   validator.New(),
	}
}

func (h *Handler) Gate() *session.Gate {
	return h.gate
}

func (h *Handler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// toNumber coerces a JSON field that may arrive as a number or a numeric
// string. Anything else becomes zero; there is no further validation.
func toNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}
