package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/PackOpener_Go/internal/database"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry()
	registry.Register(&MigrateCommand{})
	registry.Register(&WaitForDBCommand{})
	registry.Register(&SimulateCommand{})
	registry.Register(&ValidateConfigCommand{})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

// dbURL prefers DB_URL and otherwise builds one from the same variables the server reads
func dbURL() string {
	if url := os.Getenv("DB_URL"); url != "" {
		return url
	}
	return database.ConnString(
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "packopener"),
		getEnv("DB_SSLMODE", "disable"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
