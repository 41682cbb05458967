package http_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hortifruti/internal/core/domain/model/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingBackend holds CurrentIdentity until released, so tests can observe
// the panel while a session restore is in flight.
type blockingBackend struct {
	fakeBackend
	started chan struct{}
	release chan struct{}
}

func (b *blockingBackend) CurrentIdentity(ctx context.Context, token string) (*identity.Identity, error) {
	close(b.started)
	<-b.release
	return b.fakeBackend.CurrentIdentity(ctx, token)
}

func Test_Guard_WhileRestoring(t *testing.T) {
	t.Run("should answer 503 on guarded routes until the restore settles", func(t *testing.T) {
		// Arrange
		backend := &blockingBackend{
			fakeBackend: fakeBackend{identities: map[string]*identity.Identity{
				"stored-token": testIdentity(t, identity.RoleManager, "rui@hortifruti.com.br"),
			}},
			started: make(chan struct{}),
			release: make(chan struct{}),
		}

		p := newPanel(t, backend)
		require.NoError(t, p.store.Set("hortifruti.token", "stored-token"))

		done := make(chan error)
		go func() {
			done <- p.sessions.Restore(context.Background())
		}()
		<-backend.started

		// Act
		view := p.request(http.MethodGet, "/admin", "")
		api := p.request(http.MethodGet, "/api/v1/deliveries", "")

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, view.Code)
		assert.Equal(t, http.StatusServiceUnavailable, api.Code)

		close(backend.release)
		require.NoError(t, <-done)

		require.Eventually(t, func() bool {
			return p.request(http.MethodGet, "/admin", "").Code == http.StatusOK
		}, time.Second, 10*time.Millisecond)
	})
}
