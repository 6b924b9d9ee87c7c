//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"coffee-verifier/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", "coffee-verifier", time.Hour)

	t.Run("round trip with scope", func(t *testing.T) {
		token, err := svc.GenerateToken("event-listener", jwt.ScopeSyncVerification)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token, jwt.ScopeSyncVerification)
		require.NoError(t, err)
		assert.Equal(t, "event-listener", claims.Subject)
		assert.Equal(t, jwt.ScopeSyncVerification, claims.Scope)
	})

	t.Run("wrong scope", func(t *testing.T) {
		token, err := svc.GenerateToken("dashboard", "verification:read")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token, jwt.ScopeSyncVerification)
		assert.ErrorIs(t, err, jwt.ErrMissingScope)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", "coffee-verifier", time.Hour)
		token, err := other.GenerateToken("event-listener", jwt.ScopeSyncVerification)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token, jwt.ScopeSyncVerification)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		other := jwt.NewService("secret", "someone-else", time.Hour)
		token, err := other.GenerateToken("event-listener", jwt.ScopeSyncVerification)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token, jwt.ScopeSyncVerification)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		short := jwt.NewService("secret", "coffee-verifier", -time.Minute)
		token, err := short.GenerateToken("event-listener", jwt.ScopeSyncVerification)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token, jwt.ScopeSyncVerification)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token", "")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
