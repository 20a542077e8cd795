// Package store implements the credential store: durable key-value
// storage that outlives a single page view and holds, per browser
// session, at most one snapshot of the last successful authentication.
// Only the session state machine writes to it; consumers never touch
// it directly.
package store

import (
    "context"
    "errors"

    "github.com/velora/salon-web/internal/model"
)

// ErrCorruptSnapshot is returned by Get when a snapshot exists but can
// no longer be decoded. The session machine recovers by clearing the
// store and treating the session as anonymous; the error never reaches
// the user.
var ErrCorruptSnapshot = errors.New("store: corrupt credential snapshot")

// Snapshot is the serialized {token, user} pair mirroring the last
// successful authentication.
type Snapshot struct {
    Token string            `json:"token"`
    User  model.UserProfile `json:"user"`
}

// Store holds a single credential snapshot. Get before any Set must
// report absence (nil, nil), not an error.
type Store interface {
    Get(ctx context.Context) (*Snapshot, error)
    Set(ctx context.Context, s Snapshot) error
    Clear(ctx context.Context) error
}

// Provider hands out a Store scoped to one browser session ID.
type Provider interface {
    For(sessionID string) Store
}
