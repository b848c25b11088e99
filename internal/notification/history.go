package notification

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
)

const historyCollection = "notifications"

// HistoryStore persists dispatched notifications in Firestore.
type HistoryStore struct {
	db *firestore.Client
}

func NewHistoryStore(db *firestore.Client) *HistoryStore {
	return &HistoryStore{db: db}
}

// Add appends a history record under a store-generated id. The record's
// Timestamp field is filled in server-side.
func (s *HistoryStore) Add(ctx context.Context, rec *Record) (string, error) {
	ref := s.db.Collection(historyCollection).NewDoc()
	if _, err := ref.Set(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to save notification history: %w", err)
	}
	return ref.ID, nil
}

// List returns the full history, newest first by write timestamp.
func (s *HistoryStore) List(ctx context.Context) ([]*Record, error) {
	iter := s.db.Collection(historyCollection).OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	result := []*Record{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list notification history: %w", err)
		}

		var rec Record
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("failed to parse notification history record: %w", err)
		}
		rec.ID = doc.Ref.ID
		result = append(result, &rec)
	}

	return result, nil
}

// Update edits the title and body of a history record. The id is not
// checked for existence first; a store error surfaces as-is.
func (s *HistoryStore) Update(ctx context.Context, id, title, body string) error {
	_, err := s.db.Collection(historyCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "title", Value: title},
		{Path: "body", Value: body},
	})
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	return nil
}

func (s *HistoryStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.Collection(historyCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// Count returns the total number of history records via an aggregation
// query, so the stats endpoint does not pull the whole collection.
func (s *HistoryStore) Count(ctx context.Context) (int64, error) {
	results, err := s.db.Collection(historyCollection).NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	value, ok := results["all"]
	if !ok {
		return 0, errors.New("count aggregation missing from result")
	}

	count, ok := value.(*firestorepb.Value)
	if !ok {
		return 0, errors.New("unexpected count aggregation value type")
	}

	return count.GetIntegerValue(), nil
}
