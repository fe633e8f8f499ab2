//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "IdentityService=IdentityService"
package external

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned for a malformed, expired or
	// failed-signature credential.
	ErrInvalidToken = errors.New("identity credential is invalid")
	// ErrRevokedIdentity is returned for a structurally valid credential
	// whose identity was revoked upstream.
	ErrRevokedIdentity = errors.New("identity is revoked")
	// ErrIdentityServiceUnavailable is returned on transport failures and
	// timeouts, never conflated with an invalid credential.
	ErrIdentityServiceUnavailable = errors.New("identity service is unavailable")
)

// IdentityService is the single seam to the external identity issuer.
// Verification checks both signature validity and revocation status; session
// cookie verification is always called with checkRevoked enabled here, the
// flag exists because the issuer offers the cheaper signature-only mode.
type IdentityService interface {
	VerifyIdentityToken(ctx context.Context, token string) (uuid.UUID, error)
	VerifySessionCookie(ctx context.Context, cookieValue string, checkRevoked bool) (uuid.UUID, error)
	IssueSessionCookie(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error)
	IssueCustomToken(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error)
}
