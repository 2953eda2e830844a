package models

import "time"

type MessageStatus string

const (
	MessageUnread MessageStatus = "unread"
	MessageRead   MessageStatus = "read"
)

// Message is a contact-form submission. Status only ever moves
// unread -> read.
type Message struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	FirstName string        `gorm:"size:100;not null"`
	LastName  string        `gorm:"size:100;not null"`
	Phone     string        `gorm:"size:50;not null"`
	Email     string        `gorm:"size:255;not null"`
	Message   string        `gorm:"type:text;not null"`
	Status    MessageStatus `gorm:"type:varchar(10);not null;default:unread"`
}
