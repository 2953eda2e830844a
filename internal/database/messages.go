package database

import (
	"idcard-system/internal/models"

	"gorm.io/gorm"
)

// MarkMessageRead flips a message to read. Marking an already-read message
// again is a no-op that still succeeds; an unknown id returns
// gorm.ErrRecordNotFound.
func MarkMessageRead(db *gorm.DB, id uint) error {
	tx := db.Model(&models.Message{}).
		Where("id = ?", id).
		Update("status", models.MessageRead)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteMessage(db *gorm.DB, id uint) error {
	return db.Delete(&models.Message{}, id).Error
}

// MessageCounts returns the totals shown on the inbox filter badges.
func MessageCounts(db *gorm.DB) (all, unread, read int64, err error) {
	if err = db.Model(&models.Message{}).Count(&all).Error; err != nil {
		return
	}
	if err = db.Model(&models.Message{}).Where("status = ?", models.MessageUnread).Count(&unread).Error; err != nil {
		return
	}
	err = db.Model(&models.Message{}).Where("status = ?", models.MessageRead).Count(&read).Error
	return
}
