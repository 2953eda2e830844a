package middleware

import (
	"idcard-system/internal/database"
	"idcard-system/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectPrincipal resolves the session's principal, if any, and stores it in
// the gin context for handlers and templates. A session references exactly
// one of the two namespaces.
func InjectPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set("CurrentUser", user)
				}
			}
		}

		if aidRaw := sess.Get("admin_id"); aidRaw != nil {
			if aid, ok := aidRaw.(uint); ok && aid > 0 {
				var admin models.Admin
				if err := database.DB.First(&admin, aid).Error; err == nil {
					c.Set("CurrentAdmin", admin)
				}
			}
		}

		c.Next()
	}
}
