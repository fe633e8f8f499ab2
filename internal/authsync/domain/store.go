//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "SessionStore=SessionStore"
package domain

import (
	"context"

	"github.com/google/uuid"
)

// SessionStore keeps live session records keyed by SessionKey. Implementations
// must be safe under arbitrary concurrent access; operations on the same key
// are linearizable. Get treats an expired record as absent and evicts it.
type SessionStore interface {
	// Put stores the record, overwriting any existing record for the same key.
	Put(ctx context.Context, record SessionRecord) error
	// Get returns the live record for the key or ErrSessionNotFound.
	Get(ctx context.Context, key SessionKey) (SessionRecord, error)
	// Delete removes the record. Deleting an absent key is not an error.
	Delete(ctx context.Context, key SessionKey) error
	// DeleteByUser removes all live records of the user, returning the removed ones.
	DeleteByUser(ctx context.Context, userID uuid.UUID) ([]SessionRecord, error)
	// AppendOrigin registers the origin on every live record of the user.
	AppendOrigin(ctx context.Context, userID uuid.UUID, origin string) error
	// DeleteExpired evicts all expired records.
	DeleteExpired(ctx context.Context) error
}
