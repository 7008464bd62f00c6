package models

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`
	Path           string         `gorm:"type:varchar(255);not null" json:"path"`
	Published      bool           `gorm:"not null;default:false" json:"published"`
	PublishedAt    *time.Time     `json:"published_at"`
	UserID         uint64         `gorm:"not null;index" json:"user_id"`
	OrganizationID *uint64        `gorm:"index" json:"organization_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
