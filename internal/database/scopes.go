package database

import (
	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/utils"
)

// Paginate applies a pagination window to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.PerPage)
	}
}
