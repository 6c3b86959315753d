package token

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestIssuePair_VerifyRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	pair, err := m.IssuePair(userID, "a@example.com")
	require.NoError(t, err)

	claims, err := m.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)

	claims, err = m.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestVerify_SecretsAreIndependent(t *testing.T) {
	m := newTestManager()
	pair, err := m.IssuePair(uuid.New(), "a@example.com")
	require.NoError(t, err)

	_, err = m.VerifyAccess(pair.RefreshToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = m.VerifyRefresh(pair.AccessToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerify_Expired(t *testing.T) {
	m := newTestManager()
	issuedAt := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issuedAt }

	access, err := m.IssueAccess(uuid.New(), "a@example.com")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.VerifyAccess(access)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerify_MissingSecret(t *testing.T) {
	signer := newTestManager()
	access, err := signer.IssueAccess(uuid.New(), "a@example.com")
	require.NoError(t, err)

	m := NewManager("", "", time.Minute, time.Minute)
	_, err = m.VerifyAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.IssuePair(uuid.New(), "a@example.com")
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	m := newTestManager()
	_, err := m.VerifyAccess("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.VerifyAccess("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuePair_TokensAreUnique(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()
	first, err := m.IssuePair(userID, "a@example.com")
	require.NoError(t, err)
	second, err := m.IssuePair(userID, "a@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEqual(t, HashToken(first.RefreshToken), HashToken(second.RefreshToken))
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.Len(t, HashToken("abc"), 64)
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}
