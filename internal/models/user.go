package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Admin        bool           `gorm:"not null;default:false" json:"admin"`
	Pro          bool           `gorm:"not null;default:false" json:"pro"`
	SuperAdmin   bool           `gorm:"not null;default:false" json:"super_admin"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Articles      []Article            `gorm:"foreignKey:UserID" json:"-"`
	Memberships   []OrganizationMember `gorm:"foreignKey:UserID" json:"-"`
	Subscriptions []UserSubscription   `gorm:"foreignKey:SubscriberID" json:"-"`
}
