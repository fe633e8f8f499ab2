package identity

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/external"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

const requestRetryMaxElapsedTime = 3 * time.Second

type (
	verifyRequest struct {
		Credential   string `json:"credential"`
		CheckRevoked bool   `json:"checkRevoked,omitempty"`
	}

	verifyResponse struct {
		UserID uuid.UUID `json:"userId"`
	}

	issueRequest struct {
		UserID     uuid.UUID `json:"userId"`
		TTLSeconds int64     `json:"ttlSeconds"`
	}

	issueResponse struct {
		Value string `json:"value"`
	}

	service struct {
		client pkghttp.Client
	}
)

// NewService wraps the identity issuer's HTTP API. Transient failures are
// retried briefly; anything still failing surfaces as
// external.ErrIdentityServiceUnavailable so callers never mistake an outage
// for an invalid credential.
func NewService(client pkghttp.Client) external.IdentityService {
	return service{client: client}
}

func (s service) VerifyIdentityToken(ctx context.Context, token string) (uuid.UUID, error) {
	return s.verify(ctx, "/v1/tokens/verify", verifyRequest{Credential: token})
}

func (s service) VerifySessionCookie(ctx context.Context, cookieValue string, checkRevoked bool) (uuid.UUID, error) {
	return s.verify(ctx, "/v1/session-cookies/verify", verifyRequest{
		Credential:   cookieValue,
		CheckRevoked: checkRevoked,
	})
}

func (s service) IssueSessionCookie(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	return s.issue(ctx, "/v1/session-cookies", userID, ttl)
}

func (s service) IssueCustomToken(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	return s.issue(ctx, "/v1/custom-tokens", userID, ttl)
}

func (s service) verify(ctx context.Context, path string, body verifyRequest) (uuid.UUID, error) {
	var result verifyResponse
	statusCode, err := s.post(ctx, path, body, &result)
	if err != nil {
		return uuid.UUID{}, err
	}

	switch {
	case statusCode == http.StatusOK:
		return result.UserID, nil
	case statusCode == http.StatusForbidden:
		return uuid.UUID{}, external.ErrRevokedIdentity
	case statusCode == http.StatusBadRequest || statusCode == http.StatusUnauthorized:
		return uuid.UUID{}, external.ErrInvalidToken
	default:
		return uuid.UUID{}, fmt.Errorf("%w: unexpected status %d", external.ErrIdentityServiceUnavailable, statusCode)
	}
}

func (s service) issue(ctx context.Context, path string, userID uuid.UUID, ttl time.Duration) (string, error) {
	var result issueResponse
	statusCode, err := s.post(ctx, path, issueRequest{
		UserID:     userID,
		TTLSeconds: int64(ttl / time.Second),
	}, &result)
	if err != nil {
		return "", err
	}
	if statusCode != http.StatusCreated && statusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", external.ErrIdentityServiceUnavailable, statusCode)
	}

	return result.Value, nil
}

func (s service) post(ctx context.Context, path string, body, result any) (int, error) {
	var statusCode int
	err := backoff.Retry(func() error {
		resp, err := s.client.NewRequest(ctx).
			SetBody(body).
			SetResult(result).
			Post(path)
		if err != nil {
			return err
		}

		statusCode = resp.StatusCode()
		if statusCode >= http.StatusInternalServerError {
			return fmt.Errorf("identity service responded with %d", statusCode)
		}
		return nil
	}, newRequestBackoff(ctx))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", external.ErrIdentityServiceUnavailable, err)
	}

	return statusCode, nil
}

func newRequestBackoff(ctx context.Context) backoff.BackOffContext {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = requestRetryMaxElapsedTime
	return backoff.WithContext(bo, ctx)
}
