package repository

import (
	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/database"
	"github.com/creatorhub/dashboard-api/internal/models"
	"github.com/creatorhub/dashboard-api/internal/utils"
)

// GormArticleRepository is a GORM implementation of ArticleRepository
type GormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &GormArticleRepository{db: db}
}

// FindByID finds an article by ID
func (r *GormArticleRepository) FindByID(id uint64) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List retrieves articles with filtering and pagination, most recent first
func (r *GormArticleRepository) List(filter ArticleFilter) ([]models.Article, int64, error) {
	var articles []models.Article

	query := r.db.Model(&models.Article{})

	if filter.AuthorID != nil {
		query = query.Where("articles.user_id = ?", *filter.AuthorID)
	}
	if filter.OrganizationID != nil {
		query = query.Where("articles.organization_id = ?", *filter.OrganizationID)
	}
	if !filter.IncludeDrafts {
		query = query.Where("articles.published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("articles.created_at DESC")

	if filter.Page > 0 && filter.PerPage > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(filter.Page, filter.PerPage)))
	}

	if err := listQuery.Preload("User").Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}
