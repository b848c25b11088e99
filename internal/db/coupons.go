package db

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/iterator"
)

const couponsCollection = "coupons"

// Coupon is a discount code. Codes are uppercased on write regardless of
// the input case. There is no deactivate operation, only delete.
type Coupon struct {
	ID       string  `json:"id" firestore:"-"`
	Code     string  `json:"code" firestore:"code"`
	Discount float64 `json:"discount" firestore:"discount"`
	Type     string  `json:"type" firestore:"type"`
	Active   bool    `json:"active" firestore:"active"`
}

// NewCoupon shapes the stored coupon fields: uppercased code, type
// defaulting to "percent", created active.
func NewCoupon(code string, discount float64, couponType string) *Coupon {
	if couponType == "" {
		couponType = "percent"
	}
	return &Coupon{
		Code:     strings.ToUpper(code),
		Discount: discount,
		Type:     couponType,
		Active:   true,
	}
}

func (s *Store) AddCoupon(ctx context.Context, coupon *Coupon) (string, error) {
	ref := s.db.Collection(couponsCollection).NewDoc()
	if _, err := ref.Set(ctx, coupon); err != nil {
		return "", fmt.Errorf("failed to save coupon: %w", err)
	}
	return ref.ID, nil
}

// ListCoupons returns all coupons in store order.
func (s *Store) ListCoupons(ctx context.Context) ([]*Coupon, error) {
	iter := s.db.Collection(couponsCollection).Documents(ctx)
	defer iter.Stop()

	result := []*Coupon{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list coupons: %w", err)
		}

		var coupon Coupon
		if err := doc.DataTo(&coupon); err != nil {
			return nil, fmt.Errorf("failed to parse coupon: %w", err)
		}
		coupon.ID = doc.Ref.ID
		result = append(result, &coupon)
	}

	return result, nil
}

func (s *Store) DeleteCoupon(ctx context.Context, id string) error {
	if _, err := s.db.Collection(couponsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	return nil
}
