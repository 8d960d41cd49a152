package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/pageza/heritage-recipes/backend/config"
	"github.com/pageza/heritage-recipes/backend/internal/app"
	"github.com/pageza/heritage-recipes/backend/internal/logger"
	"github.com/pageza/heritage-recipes/backend/internal/service"
)

func main() {
	action := flag.String("action", "list", "One of create, list, delete")
	name := flag.String("name", "Test User", "Name for -action=create")
	email := flag.String("email", "test@example.com", "Email for -action=create or -action=delete")
	password := flag.String("password", "test1234", "Password for -action=create")
	id := flag.String("id", "", "User id for -action=delete; takes precedence over -email")
	flag.Parse()

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

	switch *action {
	case "create":
		user, _, err := application.AuthService.Register(ctx, *name, *email, *password)
		if err != nil {
			log.Fatalf("Error creating user: %v", err)
		}
		fmt.Printf("User created: %s (%s) %s\n", user.Name, user.Email, user.ID)

	case "list":
		users, err := application.AuthService.ListUsers(ctx)
		if err != nil {
			log.Fatalf("Error listing users: %v", err)
		}
		if len(users) == 0 {
			fmt.Println("No users found")
			return
		}
		for i, u := range users {
			fmt.Printf("%d. %s (%s) %s\n", i+1, u.Name, u.Email, u.ID)
		}

	case "delete":
		userID, err := resolveUser(ctx, application, *id, *email)
		if err != nil {
			log.Fatal(err)
		}
		if err := application.AuthService.DeleteUser(ctx, userID); err != nil {
			log.Fatalf("Error deleting user: %v", err)
		}
		fmt.Printf("User %s deleted\n", userID)

	default:
		fmt.Fprintf(os.Stderr, "unknown action %q\n", *action)
		flag.Usage()
		os.Exit(2)
	}
}

func resolveUser(ctx context.Context, application *app.App, id, email string) (uuid.UUID, error) {
	if id != "" {
		userID, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid user id %q: %w", id, err)
		}
		return userID, nil
	}
	user, err := application.Users.GetByEmail(ctx, service.NormalizeEmail(email))
	if err != nil {
		return uuid.Nil, fmt.Errorf("user %s not found: %w", email, err)
	}
	return user.ID, nil
}
