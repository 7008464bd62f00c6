package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user together with their personal organization
// and admin membership, atomically. Every account administers its own
// single-member organization from the start.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		org := &models.Organization{
			Name: user.Username,
			Slug: user.Username,
		}
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		return tx.Create(&models.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         user.ID,
			Role:           models.OrgRoleAdmin,
			JoinedAt:       time.Now(),
		}).Error
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
