package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/user/githookbot/internal/relay"
)

// ErrWebhookNotFound is returned by management lookups when no webhook
// matches the given name for the owner.
var ErrWebhookNotFound = errors.New("webhook not found")

// WebhookStore handles webhook-related database operations.
type WebhookStore struct {
	db *Database
}

// NewWebhookStore creates a new webhook store.
func NewWebhookStore(db *Database) *WebhookStore {
	return &WebhookStore{db: db}
}

// Create inserts a new webhook registration. Editing a registration is
// delete-then-recreate, so an existing row with the same name for the same
// owner is removed first and a fresh identifier takes effect immediately.
func (s *WebhookStore) Create(ctx context.Context, w *Webhook) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM webhooks WHERE author_id = ? AND webhook_name = ?`,
		w.AuthorID, w.Name); err != nil {
		return fmt.Errorf("failed to replace webhook: %w", err)
	}

	query := `
		INSERT INTO webhooks (webhook_name, url, author_id, channel_id, thread_id, secret)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query,
		w.Name, w.URL, w.AuthorID, w.ChannelID, w.ThreadID, w.Secret); err != nil {
		return fmt.Errorf("failed to insert webhook: %w", err)
	}

	return tx.Commit()
}

// Resolve maps a webhook identifier to its destination. Implements
// relay.Resolver: an unknown id yields relay.ErrUnknownWebhook, a backend
// failure yields *relay.StorageError. Every call is a fresh read so that
// concurrent management operations are observed immediately.
func (s *WebhookStore) Resolve(ctx context.Context, webhookID string) (relay.Destination, error) {
	var w Webhook
	query := `SELECT channel_id, thread_id FROM webhooks WHERE url = ?`
	err := s.db.GetContext(ctx, &w, query, webhookID)
	if errors.Is(err, sql.ErrNoRows) {
		return relay.Destination{}, relay.ErrUnknownWebhook
	}
	if err != nil {
		return relay.Destination{}, &relay.StorageError{Err: err}
	}
	return w.Destination(), nil
}

// GetByName returns a webhook by its name for the given owner.
func (s *WebhookStore) GetByName(ctx context.Context, authorID int64, name string) (*Webhook, error) {
	var w Webhook
	query := `SELECT * FROM webhooks WHERE author_id = ? AND webhook_name = ?`
	err := s.db.GetContext(ctx, &w, query, authorID, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWebhookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByAuthor returns all webhooks registered by a user.
func (s *WebhookStore) ListByAuthor(ctx context.Context, authorID int64) ([]Webhook, error) {
	var hooks []Webhook
	query := `SELECT * FROM webhooks WHERE author_id = ? ORDER BY created_at DESC`
	err := s.db.SelectContext(ctx, &hooks, query, authorID)
	return hooks, err
}

// DeleteByName removes a webhook by its name for the given owner.
func (s *WebhookStore) DeleteByName(ctx context.Context, authorID int64, name string) error {
	query := `DELETE FROM webhooks WHERE author_id = ? AND webhook_name = ?`
	result, err := s.db.ExecContext(ctx, query, authorID, name)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrWebhookNotFound
	}
	return nil
}
