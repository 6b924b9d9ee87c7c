//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coffee-verifier/internal/pkg/config"
	"coffee-verifier/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type SyncTokenHelper struct {
	cfg config.AuthConfig
}

func NewSyncTokenHelper(cfg config.AuthConfig) *SyncTokenHelper {
	return &SyncTokenHelper{cfg: cfg}
}

// Token issues a token carrying the scope the sync endpoint requires.
func (h *SyncTokenHelper) Token(t *testing.T, subject string) string {
	t.Helper()
	return h.TokenWithScope(t, subject, jwt.ScopeSyncVerification)
}

func (h *SyncTokenHelper) TokenWithScope(t *testing.T, subject, scope string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.SyncTokenSecret, h.cfg.SyncTokenIssuer, h.cfg.SyncTokenDuration)
	token, err := service.GenerateToken(subject, scope)
	require.NoError(t, err)
	return token
}

func (h *SyncTokenHelper) CreateExpiredToken(t *testing.T, subject string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.SyncTokenSecret, h.cfg.SyncTokenIssuer, -1*time.Minute)
	token, err := service.GenerateToken(subject, jwt.ScopeSyncVerification)
	require.NoError(t, err)
	return token
}
