package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"github.com/gin-contrib/sessions"
)

const csrfSessionKey = "csrf_token"

// CSRFToken returns the session's form token, minting and storing one on
// first use so the same value lives for the whole session.
func CSRFToken(sess sessions.Session) string {
	if v, ok := sess.Get(csrfSessionKey).(string); ok && v != "" {
		return v
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; there is
		// no token we could safely issue.
		panic(err)
	}
	token := hex.EncodeToString(buf)
	sess.Set(csrfSessionKey, token)
	_ = sess.Save()
	return token
}

// VerifyCSRF compares a submitted token against the session token in
// constant time. A session with no token yet always fails.
func VerifyCSRF(sess sessions.Session, submitted string) bool {
	stored, ok := sess.Get(csrfSessionKey).(string)
	if !ok || stored == "" || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
