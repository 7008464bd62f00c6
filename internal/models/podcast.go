package models

import (
	"time"

	"gorm.io/gorm"
)

type Podcast struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
