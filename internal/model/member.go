package model

import "time"

type Member struct {
	UID         string    `gorm:"primaryKey;size:128" json:"uid"`
	Email       string    `gorm:"size:256;index" json:"email"`
	DisplayName string    `gorm:"size:128" json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	PhoneNumber string    `gorm:"size:32" json:"phoneNumber"`
	ProviderID  string    `gorm:"size:32;not null" json:"providerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
