package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/orbit-suite/orbit/internal/authsync/infra/notify"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
	"github.com/orbit-suite/orbit/pkg/log"
)

func newDropTarget(t *testing.T, userID uuid.UUID, notified *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/session-drop", r.URL.Path)

		var body struct {
			UserID uuid.UUID `json:"userId"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, userID, body.UserID)

		notified.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestLogoutNotifier_NotifiesEveryOrigin(t *testing.T) {
	userID := uuid.New()

	var notified atomic.Int32
	first := newDropTarget(t, userID, &notified)
	defer first.Close()
	second := newDropTarget(t, userID, &notified)
	defer second.Close()

	notifier := notify.NewLogoutNotifier(pkghttp.NewClient(), log.New(log.LevelDisabled))
	notifier.NotifyLogout(context.Background(), []string{first.URL, second.URL}, userID)

	assert.Equal(t, int32(2), notified.Load())
}

func TestLogoutNotifier_SurvivesUnreachableOrigin(t *testing.T) {
	userID := uuid.New()

	var notified atomic.Int32
	reachable := newDropTarget(t, userID, &notified)
	defer reachable.Close()

	notifier := notify.NewLogoutNotifier(pkghttp.NewClient(), log.New(log.LevelDisabled))
	notifier.NotifyLogout(
		context.Background(),
		[]string{"http://127.0.0.1:1", reachable.URL},
		userID,
	)

	assert.Equal(t, int32(1), notified.Load())
}

func TestLogoutNotifier_NoOriginsIsNoop(t *testing.T) {
	notifier := notify.NewLogoutNotifier(pkghttp.NewClient(), log.New(log.LevelDisabled))
	notifier.NotifyLogout(context.Background(), nil, uuid.New())
}
