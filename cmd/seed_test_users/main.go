package main

import (
	"context"
	"log"

	"github.com/pageza/heritage-recipes/backend/config"
	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
	"github.com/pageza/heritage-recipes/backend/internal/app"
	"github.com/pageza/heritage-recipes/backend/internal/logger"
)

const testPassword = "test1234"

var testUsers = []struct {
	name  string
	email string
}{
	{name: "Test User", email: "test@example.com"},
	{name: "Asha Menon", email: "asha@example.com"},
	{name: "Ravi Kumar", email: "ravi@example.com"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logger.New(cfg.LogLevel), nil)
	if err != nil {
		log.Fatal(err)
	}
	defer application.Close()

	log.Println("Creating test users...")

	for _, u := range testUsers {
		user, _, err := application.AuthService.Register(ctx, u.name, u.email, testPassword)
		if err != nil {
			if apperrors.Is(err, apperrors.KindConflict) {
				log.Printf("User %s already exists, skipping...", u.email)
				continue
			}
			log.Printf("Failed to create user %s: %v", u.email, err)
			continue
		}
		log.Printf("Created user: %s (%s)", user.Name, user.Email)
	}

	log.Println("Test credentials:")
	log.Println("Email: any of the above emails")
	log.Printf("Password: %s", testPassword)
}
