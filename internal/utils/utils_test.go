package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainPasswords(t *testing.T) {
	var p PlainPasswords
	stored, err := p.Prepare("hunter2")
	require.NoError(t, err)
	require.Equal(t, "hunter2", stored)
	require.True(t, p.Matches("hunter2", stored))
	require.False(t, p.Matches("hunter3", stored))
	require.False(t, p.Matches("", stored))
}

func TestBcryptPasswords(t *testing.T) {
	b := NewBcryptPasswords(bcrypt.MinCost)
	stored, err := b.Prepare("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", stored)
	require.True(t, b.Matches("hunter2", stored))
	require.False(t, b.Matches("hunter3", stored))

	require.Equal(t, DefaultBcryptCost, NewBcryptPasswords(0).Cost)
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("testsecret123456789012345678901234", time.Hour)
	require.True(t, issuer.Enabled())

	tok, err := issuer.Generate("65f1c0ffee0000000000abcd")
	require.NoError(t, err)

	claims, err := issuer.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, "65f1c0ffee0000000000abcd", claims.UserID)

	_, err = NewTokenIssuer("another-secret", time.Hour).Validate(tok)
	require.Error(t, err)
}

func TestTokenIssuerDisabled(t *testing.T) {
	issuer := NewTokenIssuer("", 0)
	require.False(t, issuer.Enabled())
	_, err := issuer.Generate("x")
	require.ErrorIs(t, err, ErrNoSecret)
	_, err = issuer.Validate("x")
	require.ErrorIs(t, err, ErrNoSecret)

	var nilIssuer *TokenIssuer
	require.False(t, nilIssuer.Enabled())
}
