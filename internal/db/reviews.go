package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const reviewsCollection = "reviews"

// Review is a customer testimonial. Reviews are created unapproved and
// only show in the app after explicit moderation.
type Review struct {
	ID       string  `json:"id" firestore:"-"`
	Name     string  `json:"name" firestore:"name"`
	Text     string  `json:"text" firestore:"text"`
	Rating   float64 `json:"rating" firestore:"rating"`
	Approved bool    `json:"approved" firestore:"approved"`
	Date     string  `json:"date" firestore:"date"`
}

func (s *Store) AddReview(ctx context.Context, name, text string, rating float64) (string, error) {
	ref := s.db.Collection(reviewsCollection).NewDoc()
	_, err := ref.Set(ctx, &Review{
		Name:     name,
		Text:     text,
		Rating:   rating,
		Approved: false,
		Date:     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("failed to save review: %w", err)
	}
	return ref.ID, nil
}

// ListReviews returns all reviews, newest first. Moderation state is not
// filtered here; the dashboard shows everything.
func (s *Store) ListReviews(ctx context.Context) ([]*Review, error) {
	iter := s.db.Collection(reviewsCollection).OrderBy("date", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	result := []*Review{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews: %w", err)
		}

		var review Review
		if err := doc.DataTo(&review); err != nil {
			return nil, fmt.Errorf("failed to parse review: %w", err)
		}
		review.ID = doc.Ref.ID
		result = append(result, &review)
	}

	return result, nil
}

func (s *Store) ApproveReview(ctx context.Context, id string) error {
	_, err := s.db.Collection(reviewsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "approved", Value: true},
	})
	if err != nil {
		return fmt.Errorf("failed to approve review: %w", err)
	}
	return nil
}

func (s *Store) DeleteReview(ctx context.Context, id string) error {
	if _, err := s.db.Collection(reviewsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
