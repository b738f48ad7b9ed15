package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlaintextVerifier(t *testing.T) {
	v := PlaintextVerifier{}

	stored, err := v.Hash("secret")
	require.NoError(t, err)
	require.Equal(t, "secret", stored)

	require.True(t, v.Verify(stored, "secret"))
	require.False(t, v.Verify(stored, "Secret"))
	require.False(t, v.Verify(stored, ""))
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{Cost: bcrypt.MinCost}

	stored, err := v.Hash("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", stored)

	require.True(t, v.Verify(stored, "secret"))
	require.False(t, v.Verify(stored, "wrong"))
}

func TestNewVerifierSelection(t *testing.T) {
	require.IsType(t, BcryptVerifier{}, NewVerifier("bcrypt"))
	require.IsType(t, PlaintextVerifier{}, NewVerifier("plain"))
	require.IsType(t, PlaintextVerifier{}, NewVerifier(""))
	require.IsType(t, PlaintextVerifier{}, NewVerifier("unknown"))
}
