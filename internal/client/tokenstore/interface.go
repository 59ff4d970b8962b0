// Package tokenstore persists the session token between runs. The backend
// issues an opaque bearer credential on login; at most one token is stored
// at a time, under a fixed key in the local database.
package tokenstore

import "context"

// Store owns the persisted session token.
//
// Contract:
//   - Get returns the stored token, or an empty string when none is stored.
//   - Set overwrites any previously stored token.
//   - Delete is idempotent: deleting an absent token is not an error.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
