package records

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistence port for the assistant's small named records
// (preferences, wizard cursor, pending access marker). Each record is scoped
// to one session and read-modify-written as a whole; there is exactly one
// writer per session so the last write wins by construction.
type Store interface {
	// Get unmarshals the named record into out. The bool reports whether
	// the record exists; a corrupt record counts as missing.
	Get(ctx context.Context, sessionId uuid.UUID, name string, out any) (bool, error)

	// Put marshals value and overwrites the named record.
	Put(ctx context.Context, sessionId uuid.UUID, name string, value any) error

	// Delete removes the named record. Deleting a missing record is a no-op.
	Delete(ctx context.Context, sessionId uuid.UUID, name string) error
}
