package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("s3cret-pass")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotContains(t, hash, "s3cret-pass")

	assert.True(t, hasher.Verify(hash, "s3cret-pass"))
	assert.False(t, hasher.Verify(hash, "wrong-pass"))
	assert.False(t, hasher.Verify("not-a-hash", "s3cret-pass"))
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same-input")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-input")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(first, "same-input"))
	assert.True(t, hasher.Verify(second, "same-input"))
}

func TestAdminVerifierWithHashedPassword(t *testing.T) {
	hash, err := NewBcryptHasher().Hash("admin-pass")
	assert.NoError(t, err)

	verifier := NewAdminVerifier("admin", hash, "")

	assert.True(t, verifier.Verify("admin", "admin-pass"))
	assert.False(t, verifier.Verify("admin", "other"))
	assert.False(t, verifier.Verify("root", "admin-pass"))
}

func TestAdminVerifierPlaintextFallback(t *testing.T) {
	verifier := NewAdminVerifier("admin", "", "dev-pass")

	assert.True(t, verifier.Verify("admin", "dev-pass"))
	assert.False(t, verifier.Verify("admin", "dev-pass2"))
}

func TestAdminVerifierDeniesWhenUnconfigured(t *testing.T) {
	assert.False(t, NewAdminVerifier("", "", "").Verify("admin", "x"))
	assert.False(t, NewAdminVerifier("admin", "", "").Verify("admin", ""))
}
