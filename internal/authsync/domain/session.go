package domain

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

const sessionKeyEntropyBytes = 32

type (
	// SessionKey is the opaque identifier stored in the origin-scoped session
	// cookie. It is generated server-side from crypto randomness and is never
	// derived from the user ID or any client-supplied value.
	SessionKey string

	SessionRecord struct {
		Key          SessionKey
		UserID       uuid.UUID
		IssuerCookie string
		IssuedAt     time.Time
		ExpiresAt    time.Time
		KnownOrigins []string
	}
)

func NewSessionKey() (SessionKey, error) {
	entropy := make([]byte, sessionKeyEntropyBytes)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("generate session key: %w", err)
	}

	return SessionKey(base64.RawURLEncoding.EncodeToString(entropy)), nil
}

func NewSessionRecord(userID uuid.UUID, issuerCookie string, now time.Time, ttl time.Duration) (SessionRecord, error) {
	key, err := NewSessionKey()
	if err != nil {
		return SessionRecord{}, err
	}

	return SessionRecord{
		Key:          key,
		UserID:       userID,
		IssuerCookie: issuerCookie,
		IssuedAt:     now,
		ExpiresAt:    now.Add(ttl),
		KnownOrigins: nil,
	}, nil
}

func (r SessionRecord) IsExpired(at time.Time) bool {
	return !r.ExpiresAt.After(at)
}

// RegisterOrigin adds the origin to the known set, reporting whether it was
// new. The set only ever grows for the lifetime of the record.
func (r *SessionRecord) RegisterOrigin(origin string) bool {
	for _, known := range r.KnownOrigins {
		if known == origin {
			return false
		}
	}

	r.KnownOrigins = append(r.KnownOrigins, origin)
	return true
}
