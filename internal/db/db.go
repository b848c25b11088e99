package db

import (
	"cloud.google.com/go/firestore"
)

// Store wraps the Firestore client for the plain CRUD collections
// (reviews, coupons, service status). Notification history lives in the
// notification package next to the dispatcher.
type Store struct {
	db *firestore.Client
}

func NewStore(db *firestore.Client) *Store {
	return &Store{db: db}
}
