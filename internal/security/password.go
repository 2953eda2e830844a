package security

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type HashKind int

const (
	// HashModern is a self-describing bcrypt hash.
	HashModern HashKind = iota
	// HashLegacy is the old unsalted 32-hex-char md5 digest, kept only to
	// authenticate accounts created before the bcrypt rollout.
	HashLegacy
)

// PasswordHash is a stored credential tagged with its format. The stored
// string is classified once, on parse, instead of being re-sniffed at every
// verification site.
type PasswordHash struct {
	Kind  HashKind
	Value string
}

// ParseStoredHash classifies a password column value. Bcrypt hashes are
// self-describing ("$2a$", "$2b$", "$2y$" prefixes); anything that is exactly
// a 32-char hex string is treated as a legacy md5 digest.
func ParseStoredHash(stored string) PasswordHash {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return PasswordHash{Kind: HashModern, Value: stored}
	}
	if len(stored) == 32 && isHex(stored) {
		return PasswordHash{Kind: HashLegacy, Value: stored}
	}
	// Unrecognized formats verify as modern and simply fail.
	return PasswordHash{Kind: HashModern, Value: stored}
}

func isHex(s string) bool {
	_, err := hex.DecodeString(s)
	return err == nil
}

// HashPassword produces a salted bcrypt hash of plain.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// LegacyDigest computes the historical unsalted digest. Only tests and the
// seeding path should ever produce one.
func LegacyDigest(plain string) string {
	sum := md5.Sum([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Verify checks plain against the stored hash in whichever format it is in.
func (h PasswordHash) Verify(plain string) bool {
	switch h.Kind {
	case HashLegacy:
		digest := LegacyDigest(plain)
		return subtle.ConstantTimeCompare([]byte(digest), []byte(h.Value)) == 1
	default:
		return bcrypt.CompareHashAndPassword([]byte(h.Value), []byte(plain)) == nil
	}
}
