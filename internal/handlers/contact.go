package handlers

import (
	"net/http"

	"idcard-system/internal/auth"
	"idcard-system/internal/database"
	"idcard-system/internal/models"
	"idcard-system/internal/security"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ProcessContact takes an unauthenticated contact-form submission and files
// it into the inbox. The outcome is flashed on the home page.
func ProcessContact(c *gin.Context) {
	sess := sessions.Default(c)

	flash := func(key, msg string) {
		sess.Set(key, msg)
		_ = sess.Save()
		c.Redirect(http.StatusFound, "/#contact")
	}

	if !checkCSRF(c) {
		flash("contact_error", csrfFailureMsg)
		return
	}

	firstName := security.SanitizeInput(c.PostForm("first_name"))
	lastName := security.SanitizeInput(c.PostForm("last_name"))
	phone := security.SanitizeInput(c.PostForm("phone"))
	email := security.SanitizeInput(c.PostForm("email"))
	message := security.SanitizeInput(c.PostForm("message"))

	if firstName == "" || lastName == "" || phone == "" || email == "" || message == "" {
		flash("contact_error", "All fields are required.")
		return
	}
	if !auth.ValidEmail(email) {
		flash("contact_error", "Invalid email format.")
		return
	}

	msg := models.Message{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Email:     email,
		Message:   message,
		Status:    models.MessageUnread,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		flash("contact_error", "Failed to send message. Please try again.")
		return
	}

	flash("contact_success", "Thank you for your message! We will get back to you soon.")
}
