package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	url := dbURL()
	var err error
	for i := 0; i < waitMaxRetries; i++ {
		if err = ping(url); err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitMaxRetries, err)
}

func ping(url string) error {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), waitRetryInterval)
	defer cancel()
	return db.PingContext(ctx)
}
