package handlers

import (
	"net/http"
	"strconv"
	"time"

	"idcard-system/internal/auth"
	"idcard-system/internal/database"
	"idcard-system/internal/models"
	"idcard-system/internal/security"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminDashboard shows the operator landing page with headline counts.
func AdminDashboard(c *gin.Context) {
	var userCount int64
	database.DB.Model(&models.User{}).Count(&userCount)

	allMsgs, unreadMsgs, _, err := database.MessageCounts(database.DB)
	if err != nil {
		allMsgs, unreadMsgs = 0, 0
	}

	var recent []models.User
	database.DB.Order("created_at desc").Limit(5).Find(&recent)

	render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"userCount":   userCount,
		"messages":    allMsgs,
		"unread":      unreadMsgs,
		"recentUsers": recent,
	})
}

func ListUsers(c *gin.Context) {
	success, _ := c.GetQuery("success")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	search := security.SanitizeInput(c.Query("search"))

	// fresh query per finisher; reusing one chain across Count and Find
	// leaks statement state
	filtered := func() *gorm.DB {
		q := database.DB.Model(&models.User{})
		if search != "" {
			like := "%" + search + "%"
			q = q.Where(
				"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(job_type) LIKE LOWER(?) OR LOWER(id_number) LIKE LOWER(?)",
				like, like, like, like, like,
			)
		}
		return q
	}

	var total int64
	filtered().Count(&total)

	var users []models.User
	filtered().Order("created_at desc").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&users)

	totalPages := int((total + perPage - 1) / perPage)

	render(c, http.StatusOK, "admin_users.html", gin.H{
		"users":      users,
		"search":     search,
		"page":       page,
		"totalPages": totalPages,
		"total":      total,
		"success":    success,
	})
}

func ShowUser(c *gin.Context) {
	user, ok := lookupUser(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "admin_user_view.html", gin.H{
		"user":     user,
		"hasPhoto": photos.Exists(user.Photo),
	})
}

func ShowEditUser(c *gin.Context) {
	user, ok := lookupUser(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "admin_user_edit.html", gin.H{
		"user":  user,
		"error": "",
	})
}

func UpdateUser(c *gin.Context) {
	if !checkCSRF(c) {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	user, ok := lookupUser(c)
	if !ok {
		return
	}

	editErr := func(status int, msg string) {
		render(c, status, "admin_user_edit.html", gin.H{"user": user, "error": msg})
	}

	firstName := security.SanitizeInput(c.PostForm("first_name"))
	lastName := security.SanitizeInput(c.PostForm("last_name"))
	email := security.SanitizeInput(c.PostForm("email"))
	dobStr := security.SanitizeInput(c.PostForm("date_of_birth"))
	jobType := security.SanitizeInput(c.PostForm("job_type"))

	if firstName == "" || lastName == "" || email == "" || dobStr == "" || jobType == "" {
		editErr(http.StatusBadRequest, "All fields are required.")
		return
	}
	if !auth.ValidEmail(email) {
		editErr(http.StatusBadRequest, "Invalid email format.")
		return
	}
	dob, err := time.Parse("2006-01-02", dobStr)
	if err != nil {
		editErr(http.StatusBadRequest, "Invalid date of birth.")
		return
	}
	if !models.ValidJobType(jobType) {
		editErr(http.StatusBadRequest, "Please select a valid job type.")
		return
	}

	// email must stay unique, excluding the user being edited
	var count int64
	database.DB.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, user.ID).
		Count(&count)
	if count > 0 {
		editErr(http.StatusBadRequest, "Email already exists for another user.")
		return
	}

	// Optional photo replacement. The old file goes away only after the new
	// one is stored and the row updated.
	oldPhoto := user.Photo
	newPhoto := ""
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		if errs := photos.Validate(fh); len(errs) > 0 {
			editErr(http.StatusBadRequest, errs[0])
			return
		}
		newPhoto, err = photos.Save(fh)
		if err != nil {
			editErr(http.StatusInternalServerError, "Failed to upload photo. Please try again.")
			return
		}
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	user.DateOfBirth = dob
	user.JobType = models.JobType(jobType)
	if newPhoto != "" {
		user.Photo = newPhoto
	}

	if err := database.DB.Save(&user).Error; err != nil {
		if newPhoto != "" {
			_ = photos.Remove(newPhoto)
		}
		editErr(http.StatusInternalServerError, "Failed to update user. Please try again.")
		return
	}

	if newPhoto != "" && oldPhoto != "" {
		_ = photos.Remove(oldPhoto)
	}

	render(c, http.StatusOK, "admin_user_edit.html", gin.H{
		"user":    user,
		"success": "User updated successfully!",
	})
}

func DeleteUser(c *gin.Context) {
	if !checkCSRF(c) {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	user, ok := lookupUser(c)
	if !ok {
		return
	}

	// hard delete: a soft-deleted row would keep holding the unique email
	if err := database.DB.Unscoped().Delete(&user).Error; err != nil {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	// delete cascades to the stored photo
	_ = photos.Remove(user.Photo)

	c.Redirect(http.StatusFound, "/admin/users?success=User+deleted+successfully!")
}

// lookupUser resolves the :id route param; on a bad id or a missing row the
// caller is redirected back to the list.
func lookupUser(c *gin.Context) (models.User, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.Redirect(http.StatusFound, "/admin/users")
		return models.User{}, false
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.Redirect(http.StatusFound, "/admin/users")
		return models.User{}, false
	}
	return user, true
}
