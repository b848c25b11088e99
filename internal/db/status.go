package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	systemCollection = "system"
	serviceStatusDoc = "service_status"
)

// DefaultServiceStatus is the board shown before anything has been saved.
func DefaultServiceStatus() map[string]interface{} {
	return map[string]interface{}{
		"instagram": "operational",
		"tiktok":    "operational",
		"facebook":  "operational",
		"youtube":   "operational",
	}
}

// GetServiceStatus reads the singleton status document, falling back to
// the default board when it does not exist yet.
func (s *Store) GetServiceStatus(ctx context.Context) (map[string]interface{}, error) {
	doc, err := s.db.Collection(systemCollection).Doc(serviceStatusDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return DefaultServiceStatus(), nil
		}
		return nil, fmt.Errorf("failed to read service status: %w", err)
	}
	return doc.Data(), nil
}

// MergeServiceStatus merges the given fields into the singleton status
// document, creating it if needed. Existing services not named in fields
// keep their stored status.
func (s *Store) MergeServiceStatus(ctx context.Context, fields map[string]interface{}) error {
	_, err := s.db.Collection(systemCollection).Doc(serviceStatusDoc).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update service status: %w", err)
	}
	return nil
}
