package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ShowAdminLogin(c *gin.Context) {
	sess := sessions.Default(c)
	if sess.Get("admin_id") != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	render(c, http.StatusOK, "admin_login.html", gin.H{"error": ""})
}

func AdminLogin(c *gin.Context) {
	sess := sessions.Default(c)
	if sess.Get("admin_id") != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if !checkCSRF(c) {
		render(c, http.StatusBadRequest, "admin_login.html", gin.H{"error": csrfFailureMsg})
		return
	}

	admin, err := svc.LoginAdmin(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		render(c, http.StatusBadRequest, "admin_login.html", gin.H{"error": "Invalid username or password."})
		return
	}

	startAuthenticatedSession(sess, func(s sessions.Session) {
		s.Set("admin_id", admin.ID)
		s.Set("admin_username", admin.Username)
	})

	c.Redirect(http.StatusFound, "/admin")
}

func AdminLogout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}
