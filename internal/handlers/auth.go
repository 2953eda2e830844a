package handlers

import (
	"errors"
	"net/http"

	"idcard-system/internal/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ShowRegister(c *gin.Context) {
	sess := sessions.Default(c)
	if sess.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

func Register(c *gin.Context) {
	sess := sessions.Default(c)
	if sess.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if !checkCSRF(c) {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": csrfFailureMsg})
		return
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil
	}

	idNumber, err := svc.Register(auth.RegisterInput{
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
		FirstName:       c.PostForm("first_name"),
		LastName:        c.PostForm("last_name"),
		DateOfBirth:     c.PostForm("date_of_birth"),
		JobType:         c.PostForm("job_type"),
		Photo:           photo,
	})
	if err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": vErr.Msg})
		case errors.Is(err, auth.ErrEmailTaken):
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Email already exists. Please use a different email."})
		default:
			render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Registration failed. Please try again."})
		}
		return
	}

	render(c, http.StatusOK, "register.html", gin.H{
		"success": "Registration successful! Your ID Number is: " + idNumber +
			". Please save this number. You can now login with your email and password.",
	})
}

func ShowLogin(c *gin.Context) {
	sess := sessions.Default(c)
	if sess.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

func Login(c *gin.Context) {
	sess := sessions.Default(c)
	if sess.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if !checkCSRF(c) {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": csrfFailureMsg})
		return
	}

	user, err := svc.LoginUser(c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		// unknown email and wrong password render the same message
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid username or password."})
		return
	}

	startAuthenticatedSession(sess, func(s sessions.Session) {
		s.Set("user_id", user.ID)
		s.Set("user_name", user.FullName())
	})

	c.Redirect(http.StatusFound, "/dashboard")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
