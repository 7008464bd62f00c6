package repository

import (
	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/database"
	"github.com/creatorhub/dashboard-api/internal/models"
	"github.com/creatorhub/dashboard-api/internal/utils"
)

// GormFollowRepository is a GORM implementation of FollowRepository
type GormFollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &GormFollowRepository{db: db}
}

// ListFollowing lists follow edges of one followable kind for a follower
func (r *GormFollowRepository) ListFollowing(followerID uint64, kind models.FollowableType, page, perPage int) ([]models.Follow, int64, error) {
	var follows []models.Follow

	query := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followable_type = ?", followerID, kind)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("follows.created_at DESC")
	if page > 0 && perPage > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(page, perPage)))
	}

	if err := listQuery.Find(&follows).Error; err != nil {
		return nil, 0, err
	}

	return follows, total, nil
}

// CountFollowing counts followed entities per kind. Each kind is counted
// on its own; the dashboard never merges them.
func (r *GormFollowRepository) CountFollowing(followerID uint64) (map[models.FollowableType]int64, error) {
	type kindCount struct {
		FollowableType models.FollowableType
		Count          int64
	}

	var rows []kindCount
	err := r.db.Model(&models.Follow{}).
		Select("followable_type, COUNT(*) as count").
		Where("follower_id = ?", followerID).
		Group("followable_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[models.FollowableType]int64{
		models.FollowableUser:         0,
		models.FollowableTag:          0,
		models.FollowableOrganization: 0,
		models.FollowablePodcast:      0,
	}
	for _, row := range rows {
		counts[row.FollowableType] = row.Count
	}

	return counts, nil
}

// ListFollowers lists users following the given user, newest first
func (r *GormFollowRepository) ListFollowers(userID uint64, page, perPage int) ([]models.Follow, int64, error) {
	var follows []models.Follow

	query := r.db.Model(&models.Follow{}).
		Where("followable_type = ? AND followable_id = ?", models.FollowableUser, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("follows.created_at DESC")
	if page > 0 && perPage > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(page, perPage)))
	}

	if err := listQuery.Preload("Follower").Find(&follows).Error; err != nil {
		return nil, 0, err
	}

	return follows, total, nil
}
