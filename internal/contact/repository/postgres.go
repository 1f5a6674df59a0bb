package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aarikaaura/storefront/internal/contact/domain"
)

// PostgresArchive stores contact submissions for follow-up.
type PostgresArchive struct {
	db *sql.DB
}

func NewPostgresArchive(db *sql.DB) *PostgresArchive {
	return &PostgresArchive{db: db}
}

// EnsureSchema creates the contact_messages table when absent.
func (a *PostgresArchive) EnsureSchema(ctx context.Context) error {
	_, err := a.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create contact_messages table: %w", err)
	}
	return nil
}

func (a *PostgresArchive) SaveMessage(ctx context.Context, msg domain.Message) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, subject, message) VALUES ($1, $2, $3, $4)`,
		msg.Name, msg.Email, msg.Subject, msg.Body,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}
