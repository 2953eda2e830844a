package handlers

import (
	"idcard-system/internal/models"
	"idcard-system/internal/security"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML: every template gets the current principal and the
// session's CSRF token for its forms.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
		}
	}
	if aVal, ok := c.Get("CurrentAdmin"); ok {
		if a, ok := aVal.(models.Admin); ok {
			data["CurrentAdmin"] = a
		}
	}

	data["csrf_token"] = security.CSRFToken(sessions.Default(c))
	data["maxUploadMB"] = cfg.MaxUploadSize / 1024 / 1024

	c.HTML(status, tmpl, data)
}
