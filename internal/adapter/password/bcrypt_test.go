package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "Admin123", hash)
	assert.True(t, h.Compare(hash, "Admin123"))
	assert.False(t, h.Compare(hash, "admin123"))
	assert.False(t, h.Compare("not-a-hash", "Admin123"))
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
}
