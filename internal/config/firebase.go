package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FirebaseClient bundles the per-process Firebase handles. It is created
// exactly once at startup and shared by every service.
type FirebaseClient struct {
	App       *firebase.App
	Firestore *firestore.Client
	Messaging *messaging.Client

	ProjectID   string
	Credentials []byte
}

type serviceAccount struct {
	ProjectID string `json:"project_id"`
}

// LoadServiceAccount resolves the credential JSON: an inline
// GOOGLE_SERVICE_ACCOUNT_JSON environment variable wins, otherwise the
// file named by SERVICE_ACCOUNT_FILE (default service-account.json).
func LoadServiceAccount() ([]byte, error) {
	if inline := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); inline != "" {
		if !json.Valid([]byte(inline)) {
			return nil, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is not valid JSON")
		}
		return []byte(inline), nil
	}

	path := os.Getenv("SERVICE_ACCOUNT_FILE")
	if path == "" {
		path = "service-account.json"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account file %s: %w", path, err)
	}
	return data, nil
}

func NewFirebaseClient(ctx context.Context, credentialsJSON []byte) (*FirebaseClient, error) {
	var account serviceAccount
	if err := json.Unmarshal(credentialsJSON, &account); err != nil {
		slog.Error("Failed to parse service account credentials", "error", err)
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		projectID = account.ProjectID
	}

	opt := option.WithCredentialsJSON(credentialsJSON)

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		slog.Error("Failed to create Firebase app", "error", err)
		return nil, fmt.Errorf("failed to create Firebase app: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		slog.Error("Failed to create Firestore client", "error", err)
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		slog.Error("Failed to create Messaging client", "error", err)
		return nil, fmt.Errorf("failed to create Messaging client: %w", err)
	}

	slog.Info("Firebase clients initialized", "project_id", projectID)

	return &FirebaseClient{
		App:         app,
		Firestore:   firestoreClient,
		Messaging:   messagingClient,
		ProjectID:   projectID,
		Credentials: credentialsJSON,
	}, nil
}

func (f *FirebaseClient) Close() error {
	if f == nil || f.Firestore == nil {
		return nil
	}
	if err := f.Firestore.Close(); err != nil {
		slog.Error("Failed to close Firestore client", "error", err)
		return err
	}
	slog.Info("Firestore client closed")
	return nil
}
