package handlers

import (
	"log"
	"time"

	"idcard-system/internal/auth"
	"idcard-system/internal/config"
	"idcard-system/internal/database"
	"idcard-system/internal/security"
	"idcard-system/internal/upload"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const perPage = 10

var (
	cfg    *config.Config
	photos *upload.Store
	svc    *auth.Service
)

// Setup wires the handler package against loaded config and the shared DB.
// Must run after database.Init.
func Setup(c *config.Config) {
	cfg = c

	var err error
	photos, err = upload.NewStore(c.UploadDir, c.MaxUploadSize, c.AllowedTypes)
	if err != nil {
		log.Fatalf("upload store: %v", err)
	}

	svc = &auth.Service{
		DB:             database.DB,
		Photos:         photos,
		MinPasswordLen: c.MinPasswordLen,
	}
}

// checkCSRF validates the form token before anything else in a
// state-changing handler.
func checkCSRF(c *gin.Context) bool {
	sess := sessions.Default(c)
	return security.VerifyCSRF(sess, c.PostForm("csrf_token"))
}

const csrfFailureMsg = "Security token validation failed. Please try again."

// startAuthenticatedSession drops the whole pre-login session, CSRF token
// included, so a fixated pre-auth value is useless afterwards.
func startAuthenticatedSession(sess sessions.Session, set func(sessions.Session)) {
	sess.Clear()
	sess.Set("created", time.Now().Unix())
	sess.Set("login_time", time.Now().Unix())
	set(sess)
	_ = sess.Save()
}
