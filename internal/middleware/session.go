package middleware

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionWindow enforces the absolute session lifetime: once the window
// lapses the whole session, principal and CSRF token included, is dropped
// and the visitor starts a fresh anonymous session. now is the clock,
// normally time.Now.
func SessionWindow(maxAge time.Duration, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		ts := now().Unix()
		created, ok := sess.Get("created").(int64)
		if !ok {
			sess.Set("created", ts)
			_ = sess.Save()
		} else if ts-created > int64(maxAge.Seconds()) {
			sess.Clear()
			sess.Set("created", ts)
			_ = sess.Save()
		}

		c.Next()
	}
}
