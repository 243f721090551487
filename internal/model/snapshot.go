package model

import "time"

// BoardSnapshot is the persisted row holding the serialized board document.
type BoardSnapshot struct {
	ID        string    `gorm:"primaryKey"`
	Document  []byte    `gorm:"type:jsonb;not null"`
	Version   int64     `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
