package repository

import (
	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/models"
)

// GormOrganizationRepository is a GORM implementation of
// OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(id uint64) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindMember finds a specific organization member
func (r *GormOrganizationRepository) FindMember(organizationID, userID uint64) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	if err := r.db.Where("organization_id = ? AND user_id = ?", organizationID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembersByUserID lists all memberships held by a user
func (r *GormOrganizationRepository) ListMembersByUserID(userID uint64) ([]models.OrganizationMember, error) {
	var members []models.OrganizationMember
	if err := r.db.Where("user_id = ?", userID).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListAdmins lists the organization's admin memberships with users
// preloaded
func (r *GormOrganizationRepository) ListAdmins(organizationID uint64) ([]models.OrganizationMember, error) {
	var admins []models.OrganizationMember
	if err := r.db.Preload("User").
		Where("organization_id = ? AND role = ?", organizationID, models.OrgRoleAdmin).
		Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}
