package model

import (
	"strings"
	"time"
)

type SiteInfo struct {
	Name    string `json:"name" validate:"required,max=64"`
	Logo    string `json:"logo" validate:"max=256"`
	Tagline string `json:"tagline" validate:"max=128"`
}

type ContactInfo struct {
	Phone   string `json:"phone" validate:"max=32"`
	LineID  string `json:"lineId" validate:"required,max=64"`
	LineURL string `json:"lineUrl" validate:"omitempty,url"`
	Address string `json:"address" validate:"max=256"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type Settings struct {
	Site    SiteInfo    `json:"site" validate:"required"`
	Contact ContactInfo `json:"contact" validate:"required"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Site: SiteInfo{
			Name:    "Aquarium Studio",
			Logo:    "🐟",
			Tagline: "專業水族用品",
		},
		Contact: ContactInfo{
			Phone:   "0912-345-678",
			LineID:  "@yasonok02061",
			LineURL: "https://line.me/ti/p/@yasonok02061",
			Address: "台灣水族用品店",
			Email:   "yasonok@hotmail.com",
		},
	}
}

// LineHandle is the LINE id without its leading "@".
func (s *Settings) LineHandle() string {
	return strings.TrimPrefix(strings.TrimSpace(s.Contact.LineID), "@")
}

// SettingEntry is one JSON document in the settings key-value table.
type SettingEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
