package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"naturalize/internal/profile/models"
	"naturalize/pkg/platform/tx"
)

// PostgresStore persists profile entries in the user_meta table.
// This store is pure I/O; lock semantics live in the lockout service.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn uses the caller's transaction when one is in the context.
func (s *PostgresStore) conn(ctx context.Context) execQuerier {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return s.db
}

func (s *PostgresStore) Get(ctx context.Context, userID, key string) (string, bool, error) {
	var value string
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT meta_value FROM user_meta WHERE user_id = $1 AND meta_key = $2`,
		userID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get user meta: %w", err)
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, userID, key, value string) error {
	if err := upsertMeta(ctx, s.conn(ctx), userID, key, value); err != nil {
		return fmt.Errorf("set user meta: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID, key string) error {
	if err := deleteMeta(ctx, s.conn(ctx), userID, key); err != nil {
		return fmt.Errorf("delete user meta: %w", err)
	}
	return nil
}

// Apply runs all mutations in one transaction. When the caller already owns a
// transaction (tx.WithTx), the mutations join it instead.
func (s *PostgresStore) Apply(ctx context.Context, userID string, mutations []models.Mutation) error {
	if t, ok := tx.From(ctx); ok {
		return applyMutations(ctx, t, userID, mutations)
	}

	t, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin apply user meta: %w", err)
	}
	defer func() {
		_ = t.Rollback()
	}()

	if err := applyMutations(ctx, t, userID, mutations); err != nil {
		return err
	}
	if err := t.Commit(); err != nil {
		return fmt.Errorf("commit apply user meta: %w", err)
	}
	return nil
}

func applyMutations(ctx context.Context, q execQuerier, userID string, mutations []models.Mutation) error {
	for _, m := range mutations {
		var err error
		if m.Delete {
			err = deleteMeta(ctx, q, userID, m.Key)
		} else {
			err = upsertMeta(ctx, q, userID, m.Key, m.Value)
		}
		if err != nil {
			return fmt.Errorf("apply user meta %q: %w", m.Key, err)
		}
	}
	return nil
}

func upsertMeta(ctx context.Context, q execQuerier, userID, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO user_meta (user_id, meta_key, meta_value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, meta_key) DO UPDATE SET
			meta_value = EXCLUDED.meta_value,
			updated_at = EXCLUDED.updated_at
	`, userID, key, value)
	return err
}

func deleteMeta(ctx context.Context, q execQuerier, userID, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM user_meta WHERE user_id = $1 AND meta_key = $2`, userID, key)
	return err
}
