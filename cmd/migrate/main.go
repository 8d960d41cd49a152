package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/pageza/heritage-recipes/backend/config"
	"github.com/pageza/heritage-recipes/backend/internal/database"
	"github.com/pageza/heritage-recipes/backend/internal/logger"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "", "Directory holding the migration files (defaults to MIGRATIONS_DIR)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if *dir == "" {
		*dir = cfg.MigrationsDir
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		if cfg.DBDriver != "postgres" {
			log.Fatal("SQL migrations need PostgreSQL: set DATABASE_URL or DB_DRIVER=postgres")
		}
		dsn = cfg.DSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if *rollback {
		name, err := database.RollbackLast(ctx, db, *dir)
		if err != nil {
			if errors.Is(err, database.ErrNothingToRollback) {
				log.Fatal("No migrations to rollback")
			}
			log.Fatalf("failed to rollback: %v", err)
		}
		fmt.Printf("Successfully rolled back migration: %s\n", name)
		return
	}

	if err := database.ApplySQLMigrations(ctx, db, *dir, logger.New(cfg.LogLevel)); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	fmt.Println("All migrations applied successfully")
}
