package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/homelesson/lms-backend-go/internal/config"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	seed := flag.Bool("seed", false, "insert default settings and an admin account after migrating")
	schemaPath := flag.String("schema", "db/schema.sql", "path to the schema file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		fmt.Println("Error reading schema:", err)
		os.Exit(1)
	}

	if _, err := db.Exec(ctx, string(schema)); err != nil {
		fmt.Println("Error applying schema:", err)
		os.Exit(1)
	}
	fmt.Println("Schema applied")

	if *seed {
		if err := seedData(ctx, db); err != nil {
			fmt.Println("Error seeding:", err)
			os.Exit(1)
		}
		fmt.Println("Seed data inserted")
	}
}

func seedData(ctx context.Context, db *database.DB) error {
	defaults := map[string]string{
		"teaching_allowance":         "20000",
		"transport_allowance":        "12000",
		"enable_transport_allowance": "true",
	}
	for key, value := range defaults {
		_, err := db.Exec(ctx, `
			INSERT INTO system_config (config_key, config_value)
			VALUES ($1, $2)
			ON CONFLICT (config_key) DO NOTHING
		`, key, value)
		if err != nil {
			return fmt.Errorf("seed setting %s: %w", key, err)
		}
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (username, password_hash, is_admin)
		VALUES ('admin', $1, true)
		ON CONFLICT (username) DO NOTHING
	`, string(hash))
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	subjects := []string{"Mathematics", "English", "Science", "Indonesian", "Social Studies"}
	for _, name := range subjects {
		_, err := db.Exec(ctx, `
			INSERT INTO subjects (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name)
		if err != nil {
			return fmt.Errorf("seed subject %s: %w", name, err)
		}
	}

	return nil
}
