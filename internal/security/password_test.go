package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordVerify(t *testing.T) {
	hash, err := HashPassword("Abcd1234")
	require.NoError(t, err)

	ph := ParseStoredHash(hash)
	assert.Equal(t, HashModern, ph.Kind)
	assert.True(t, ph.Verify("Abcd1234"))
	assert.False(t, ph.Verify("abcd1234"))
	assert.False(t, ph.Verify(""))
}

func TestHashPasswordEmbedsSalt(t *testing.T) {
	h1, err := HashPassword("Abcd1234")
	require.NoError(t, err)
	h2, err := HashPassword("Abcd1234")
	require.NoError(t, err)

	// same input, different hashes
	assert.NotEqual(t, h1, h2)
}

func TestParseStoredHash(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		kind   HashKind
	}{
		{"bcrypt 2a", "$2a$10$N9qo8uLOickgx2ZMRZoMye1J9HGxkcbiM4zVhPiEeXn1uuG5dWlW2", HashModern},
		{"bcrypt 2b", "$2b$12$abcdefghijklmnopqrstuvABCDEFGHIJKLMNOPQRSTUVWXYZ012345", HashModern},
		{"bcrypt 2y", "$2y$10$abcdefghijklmnopqrstuvABCDEFGHIJKLMNOPQRSTUVWXYZ012345", HashModern},
		{"legacy md5", "5f4dcc3b5aa765d61d8327deb882cf99", HashLegacy},
		{"hex but too short", "5f4dcc3b5aa765d61d8327deb882cf9", HashModern},
		{"32 chars but not hex", "zf4dcc3b5aa765d61d8327deb882cf99", HashModern},
		{"garbage", "not-a-hash", HashModern},
		{"empty", "", HashModern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, ParseStoredHash(tt.stored).Kind)
		})
	}
}

func TestLegacyVerify(t *testing.T) {
	digest := LegacyDigest("password")
	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", digest)

	ph := ParseStoredHash(digest)
	require.Equal(t, HashLegacy, ph.Kind)
	assert.True(t, ph.Verify("password"))
	assert.False(t, ph.Verify("Password"))
	assert.False(t, ph.Verify(""))
}

func TestUnrecognizedFormatNeverVerifies(t *testing.T) {
	ph := ParseStoredHash("plaintext-left-in-column")
	assert.False(t, ph.Verify("plaintext-left-in-column"))
}
