package database

import (
	"testing"

	"idcard-system/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func newMessage(t *testing.T, db *gorm.DB, status models.MessageStatus) models.Message {
	t.Helper()
	msg := models.Message{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0100",
		Email:     "jane@example.com",
		Message:   "Hello there",
		Status:    status,
	}
	require.NoError(t, db.Create(&msg).Error)
	return msg
}

func TestMarkMessageRead(t *testing.T) {
	db := newTestDB(t)
	msg := newMessage(t, db, models.MessageUnread)

	require.NoError(t, MarkMessageRead(db, msg.ID))

	var got models.Message
	require.NoError(t, db.First(&got, msg.ID).Error)
	assert.Equal(t, models.MessageRead, got.Status)
}

func TestMarkMessageReadIdempotent(t *testing.T) {
	db := newTestDB(t)
	msg := newMessage(t, db, models.MessageUnread)

	require.NoError(t, MarkMessageRead(db, msg.ID))
	// marking again succeeds and leaves the status read
	require.NoError(t, MarkMessageRead(db, msg.ID))

	var got models.Message
	require.NoError(t, db.First(&got, msg.ID).Error)
	assert.Equal(t, models.MessageRead, got.Status)
}

func TestMarkMessageReadMissing(t *testing.T) {
	db := newTestDB(t)

	err := MarkMessageRead(db, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMessage(t *testing.T) {
	db := newTestDB(t)
	msg := newMessage(t, db, models.MessageUnread)

	require.NoError(t, DeleteMessage(db, msg.ID))

	var count int64
	db.Model(&models.Message{}).Count(&count)
	assert.Zero(t, count)
}

func TestMessageCounts(t *testing.T) {
	db := newTestDB(t)
	newMessage(t, db, models.MessageUnread)
	newMessage(t, db, models.MessageUnread)
	newMessage(t, db, models.MessageRead)

	all, unread, read, err := MessageCounts(db)
	require.NoError(t, err)
	assert.EqualValues(t, 3, all)
	assert.EqualValues(t, 2, unread)
	assert.EqualValues(t, 1, read)
}
