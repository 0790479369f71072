package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"divyaAPI/migrations"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using existing environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Connected to PostgreSQL successfully")

	// Get command from arguments (default to "up")
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	if err := run(db, command); err != nil {
		log.Fatal(err)
	}
}

func run(db *sql.DB, command string) error {
	log.Printf("Running migrations: %s", command)
	switch command {
	case "up":
		if err := goose.Up(db, "."); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Println("Migrations completed successfully")
	case "down":
		if err := goose.Down(db, "."); err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}
		log.Println("Rollback completed successfully")
	case "reset":
		if err := goose.Reset(db, "."); err != nil {
			return fmt.Errorf("failed to reset migrations: %w", err)
		}
		log.Println("Reset completed successfully")
	case "status":
		if err := goose.Status(db, "."); err != nil {
			return fmt.Errorf("failed to get migration status: %w", err)
		}
	case "version":
		version, err := goose.GetDBVersion(db)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		log.Printf("Current migration version: %d", version)
	default:
		return fmt.Errorf("unknown command: %s. Available commands: up, down, reset, status, version", command)
	}
	return nil
}
