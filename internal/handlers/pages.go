package handlers

import (
	"net/http"

	"idcard-system/internal/database"
	"idcard-system/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	sess := sessions.Default(c)
	_, authed := sess.Get("user_id").(uint)

	// one-shot contact flash messages
	contactError, _ := sess.Get("contact_error").(string)
	contactSuccess, _ := sess.Get("contact_success").(string)
	if contactError != "" || contactSuccess != "" {
		sess.Delete("contact_error")
		sess.Delete("contact_success")
		_ = sess.Save()
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"isAuthed":       authed,
		"contactError":   contactError,
		"contactSuccess": contactSuccess,
	})
}

// Dashboard shows the logged-in user their profile summary.
func Dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		// session points at a deleted account
		sess := sessions.Default(c)
		sess.Clear()
		_ = sess.Save()
		c.Redirect(http.StatusFound, "/login")
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"user":     user,
		"hasPhoto": photos.Exists(user.Photo),
	})
}

// Card renders the user's ID card for viewing or printing.
func Card(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		sess := sessions.Default(c)
		sess.Clear()
		_ = sess.Save()
		c.Redirect(http.StatusFound, "/login")
		return
	}

	render(c, http.StatusOK, "card.html", gin.H{
		"user":     user,
		"hasPhoto": photos.Exists(user.Photo),
	})
}

func currentUser(c *gin.Context) (models.User, bool) {
	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			return u, true
		}
	}

	sess := sessions.Default(c)
	uid, ok := sess.Get("user_id").(uint)
	if !ok {
		return models.User{}, false
	}
	var user models.User
	if err := database.DB.First(&user, uid).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}
