package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	issuer := NewIssuer("secret-1", time.Hour)

	token, err := issuer.Sign("usr_1", "investor", "sess_1")
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "usr_1", claims.UserID)
	assert.Equal(t, "investor", claims.UserType)
	assert.Equal(t, "sess_1", claims.SessionID)
	assert.Equal(t, "usr_1", claims.Subject)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewIssuer("secret-1", time.Hour).Sign("usr_1", "investor", "sess_1")
	require.NoError(t, err)

	_, err = NewIssuer("secret-2", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	issuer := NewIssuer("secret-1", -time.Minute)

	token, err := issuer.Sign("usr_1", "investor", "sess_1")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := NewIssuer("secret-1", time.Hour).Verify("not.a.token")
	assert.Error(t, err)
}
