package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"dukaadmin/internal/config"
	"dukaadmin/internal/db"
	"dukaadmin/internal/handlers"
	"dukaadmin/internal/notification"
	"dukaadmin/internal/remoteconfig"
	"dukaadmin/internal/routes"
	"dukaadmin/internal/session"
)

func main() {
	cfg := config.Load()

	credentials, err := config.LoadServiceAccount()
	if err != nil {
		log.Fatalf("Failed to load service account: %v", err)
	}

	ctx := context.Background()
	firebaseClient, err := config.NewFirebaseClient(ctx, credentials)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer firebaseClient.Close()

	rcClient, err := remoteconfig.NewClient(ctx, firebaseClient.ProjectID, firebaseClient.Credentials)
	if err != nil {
		log.Fatalf("Failed to initialize remote config client: %v", err)
	}

	gate := session.NewGate(cfg)
	history := notification.NewHistoryStore(firebaseClient.Firestore)
	dispatcher := notification.NewDispatcher(firebaseClient.Messaging, history)
	mapper := remoteconfig.NewMapper(rcClient)
	store := db.NewStore(firebaseClient.Firestore)

	h := handlers.New(gate, dispatcher, history, mapper, store)

	e := echo.New()
	e.HideBanner = true
	e.Static("/", "public")

	routes.SetupRoutes(e.Group("/api"), h)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
