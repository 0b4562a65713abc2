package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"naturalize/pkg/platform/sentinel"
	"naturalize/pkg/platform/tx"
)

// PostgresStore persists records as form_entries rows with one
// form_entry_fields row per field.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed record store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) conn(ctx context.Context) querier {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return s.db
}

func (s *PostgresStore) ReadField(ctx context.Context, recordID, fieldID string) (string, bool, error) {
	var value string
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT value FROM form_entry_fields WHERE entry_id = $1 AND field_id = $2`,
		recordID, fieldID,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read field %s: %w", fieldID, err)
	}
	return value, true, nil
}

func (s *PostgresStore) ReadFields(ctx context.Context, recordID string, fieldIDs []string) (map[string]string, error) {
	out := make(map[string]string, len(fieldIDs))
	if len(fieldIDs) == 0 {
		return out, nil
	}
	rows, err := s.conn(ctx).QueryContext(ctx,
		`SELECT field_id, value FROM form_entry_fields WHERE entry_id = $1 AND field_id = ANY($2)`,
		recordID, pq.Array(fieldIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("read fields: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var field, value string
		if err := rows.Scan(&field, &value); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		out[field] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fields: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) WriteField(ctx context.Context, recordID, fieldID, value string) error {
	ok, err := s.Exists(ctx, recordID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("record %s: %w", recordID, sentinel.ErrNotFound)
	}
	if err := upsertField(ctx, s.conn(ctx), recordID, fieldID, value); err != nil {
		return fmt.Errorf("write field %s: %w", fieldID, err)
	}
	return nil
}

func (s *PostgresStore) FindRecordsByField(ctx context.Context, formID, fieldID, value string) ([]string, error) {
	rows, err := s.conn(ctx).QueryContext(ctx, `
		SELECT e.id
		FROM form_entries e
		JOIN form_entry_fields f ON f.entry_id = e.id
		WHERE e.form_id = $1 AND f.field_id = $2 AND f.value = $3
		ORDER BY e.created_at, e.id
	`, formID, fieldID, value)
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan record id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return ids, nil
}

// CreateRecord inserts the entry and its fields in one transaction, joining
// the caller's transaction when present.
func (s *PostgresStore) CreateRecord(ctx context.Context, formID string, fields map[string]string) (string, error) {
	id := uuid.NewString()
	insert := func(q querier) error {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO form_entries (id, form_id, created_at) VALUES ($1, $2, clock_timestamp())`,
			id, formID,
		); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
		for field, value := range fields {
			if err := upsertField(ctx, q, id, field, value); err != nil {
				return fmt.Errorf("insert field %s: %w", field, err)
			}
		}
		return nil
	}

	if t, ok := tx.From(ctx); ok {
		if err := insert(t); err != nil {
			return "", err
		}
		return id, nil
	}

	t, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin create record: %w", err)
	}
	defer func() {
		_ = t.Rollback()
	}()
	if err := insert(t); err != nil {
		return "", err
	}
	if err := t.Commit(); err != nil {
		return "", fmt.Errorf("commit create record: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) Exists(ctx context.Context, recordID string) (bool, error) {
	var exists bool
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM form_entries WHERE id = $1)`, recordID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check record: %w", err)
	}
	return exists, nil
}

func upsertField(ctx context.Context, q querier, recordID, fieldID, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO form_entry_fields (entry_id, field_id, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (entry_id, field_id) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, recordID, fieldID, value)
	return err
}
