package repository

import (
	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/database"
	"github.com/creatorhub/dashboard-api/internal/models"
	"github.com/creatorhub/dashboard-api/internal/utils"
)

// GormSubscriptionRepository is a GORM implementation of
// SubscriptionRepository
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// ListBySource lists subscriptions for one polymorphic source in stable
// creation order. Zero rows is a normal result.
func (r *GormSubscriptionRepository) ListBySource(sourceType models.SourceableType, sourceID uint64, page, perPage int) ([]models.UserSubscription, int64, error) {
	var subscriptions []models.UserSubscription

	query := r.db.Model(&models.UserSubscription{}).
		Where("sourceable_type = ? AND sourceable_id = ?", sourceType, sourceID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("user_subscriptions.created_at ASC, user_subscriptions.id ASC")
	if page > 0 && perPage > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(page, perPage)))
	}

	if err := listQuery.Find(&subscriptions).Error; err != nil {
		return nil, 0, err
	}

	return subscriptions, total, nil
}
