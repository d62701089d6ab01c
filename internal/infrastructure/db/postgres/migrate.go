package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schema string

// resetOrder lists tables children first so each DELETE leaves no dangling references.
var resetOrder = []string{
	"interview_preparations",
	"optimized_resumes",
	"resume_analyses",
	"job_applications",
	"payments",
	"usage_records",
	"user_files",
	"users",
	"job_postings",
}

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Reset removes all rows from every application table in one transaction.
func Reset(ctx context.Context, db DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, table := range resetOrder {
		if _, err = tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func ResetTables() []string { return append([]string(nil), resetOrder...) }
