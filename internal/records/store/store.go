// Package store defines the form record store contract and its backends.
// Records are string key/value bags identified by (form id, record id).
package store

import (
	"context"
)

// Store is the logical contract of the forms platform's record storage.
// Missing records are reported with sentinel.ErrNotFound on writes; reads of
// missing fields report ok=false.
type Store interface {
	ReadField(ctx context.Context, recordID, fieldID string) (string, bool, error)
	// ReadFields returns only the fields that exist; absent fields are omitted.
	ReadFields(ctx context.Context, recordID string, fieldIDs []string) (map[string]string, error)
	WriteField(ctx context.Context, recordID, fieldID, value string) error
	// FindRecordsByField returns ids of records in formID whose fieldID equals
	// value, in creation order.
	FindRecordsByField(ctx context.Context, formID, fieldID, value string) ([]string, error)
	CreateRecord(ctx context.Context, formID string, fields map[string]string) (string, error)
	Exists(ctx context.Context, recordID string) (bool, error)
}
