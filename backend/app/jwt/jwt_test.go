package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignerRoundTrip(t *testing.T) {
	s := &Signer{Secret: []byte("secret"), Issuer: "helpdesk", ExpMin: 60}

	token, jti, exp, err := s.Sign("user-1", "user")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, jti)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, jti, claims.ID)
	assert.Equal(t, "helpdesk", claims.Issuer)
}

func TestSignerRejectsWrongSecret(t *testing.T) {
	s := &Signer{Secret: []byte("secret"), Issuer: "helpdesk", ExpMin: 60}
	token, _, _, err := s.Sign("user-1", "user")
	require.NoError(t, err)

	other := &Signer{Secret: []byte("different"), Issuer: "helpdesk", ExpMin: 60}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestSignerRejectsExpired(t *testing.T) {
	s := &Signer{Secret: []byte("secret"), Issuer: "helpdesk", ExpMin: -1}
	token, _, _, err := s.Sign("user-1", "user")
	require.NoError(t, err)

	_, err = s.Parse(token)
	assert.Error(t, err)
}

func TestSignerUniqueJTI(t *testing.T) {
	s := &Signer{Secret: []byte("secret"), Issuer: "helpdesk", ExpMin: 60}
	_, a, _, err := s.Sign("user-1", "user")
	require.NoError(t, err)
	_, b, _, err := s.Sign("user-1", "user")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
