// Package store provides user-profile store backends.
//
// Every backend implements Apply as a single atomic unit so multi-field
// writes (the lockout triple in particular) are never observed half-done.
package store

import (
	"context"

	"naturalize/internal/profile/models"
)

// Store is the per-user key/value contract.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, userID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, userID, key, value string) error
	Delete(ctx context.Context, userID, key string) error
	// Apply performs every mutation or none of them.
	Apply(ctx context.Context, userID string, mutations []models.Mutation) error
}
