package handlers

import (
	"net/http"
	"strconv"

	"idcard-system/internal/database"
	"idcard-system/internal/models"
	"idcard-system/internal/security"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListMessages(c *gin.Context) {
	success, _ := c.GetQuery("success")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	filter := c.DefaultQuery("filter", "all")
	search := security.SanitizeInput(c.Query("search"))

	if filter != "unread" && filter != "read" {
		filter = "all"
	}

	filtered := func() *gorm.DB {
		q := database.DB.Model(&models.Message{})
		switch filter {
		case "unread":
			q = q.Where("status = ?", models.MessageUnread)
		case "read":
			q = q.Where("status = ?", models.MessageRead)
		}
		if search != "" {
			like := "%" + search + "%"
			q = q.Where(
				"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(message) LIKE LOWER(?)",
				like, like, like, like,
			)
		}
		return q
	}

	var total int64
	filtered().Count(&total)

	var messages []models.Message
	filtered().Order("created_at desc").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&messages)

	allCount, unreadCount, readCount, _ := database.MessageCounts(database.DB)

	render(c, http.StatusOK, "admin_messages.html", gin.H{
		"messages":    messages,
		"filter":      filter,
		"search":      search,
		"page":        page,
		"totalPages":  int((total + perPage - 1) / perPage),
		"total":       total,
		"allCount":    allCount,
		"unreadCount": unreadCount,
		"readCount":   readCount,
		"success":     success,
	})
}

// MarkMessageRead is idempotent: re-marking a read message succeeds.
func MarkMessageRead(c *gin.Context) {
	if !checkCSRF(c) {
		c.Redirect(http.StatusFound, "/admin/messages")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.Redirect(http.StatusFound, "/admin/messages")
		return
	}

	if err := database.MarkMessageRead(database.DB, uint(id)); err != nil {
		c.Redirect(http.StatusFound, "/admin/messages")
		return
	}
	c.Redirect(http.StatusFound, "/admin/messages?success=Message+marked+as+read!")
}

func DeleteMessage(c *gin.Context) {
	if !checkCSRF(c) {
		c.Redirect(http.StatusFound, "/admin/messages")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.Redirect(http.StatusFound, "/admin/messages")
		return
	}

	if err := database.DeleteMessage(database.DB, uint(id)); err != nil {
		c.Redirect(http.StatusFound, "/admin/messages")
		return
	}
	c.Redirect(http.StatusFound, "/admin/messages?success=Message+deleted+successfully!")
}
