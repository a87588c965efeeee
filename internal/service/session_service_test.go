package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/pkg/config"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
)

func TestSessionIssueAndValidate(t *testing.T) {
	svc := NewSessionService(config.SessionConfig{Enabled: true, Secret: "secret", TTL: time.Hour})
	token, expiresAt, err := svc.Issue(&models.User{ID: 42})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestSessionExpired(t *testing.T) {
	svc := NewSessionService(config.SessionConfig{Enabled: true, Secret: "secret", TTL: time.Minute})
	token, _, err := svc.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthenticated)
	assert.Equal(t, "session expired", appErrors.FromError(err).Message)
}

func TestSessionRejectsForeignSignature(t *testing.T) {
	issuer := NewSessionService(config.SessionConfig{Secret: "one"})
	verifier := NewSessionService(config.SessionConfig{Secret: "two"})
	token, _, err := issuer.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthenticated)

	_, err = verifier.Validate("garbage")
	assert.ErrorIs(t, err, appErrors.ErrUnauthenticated)
}

func TestSessionIssueRequiresSecret(t *testing.T) {
	_, _, err := NewSessionService(config.SessionConfig{}).Issue(&models.User{ID: 1})
	assert.Error(t, err)
}
