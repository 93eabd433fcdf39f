package model

import "time"

// NotificationRecord archives the message handed to the messaging app for an order.
type NotificationRecord struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	OrderID   string    `gorm:"size:64;index;not null" json:"orderId"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Link      string    `gorm:"type:text" json:"link"`
	CreatedAt time.Time `json:"created_at"`
}
