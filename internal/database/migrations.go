package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes for the dashboard's hot
// list queries.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Article list queries filter by owner or organization and sort
		// by recency
		{"articles", "idx_articles_user_created", "user_id, created_at"},
		{"articles", "idx_articles_org_created", "organization_id, created_at"},

		// Follow edges are scanned by follower+type and by followed entity
		{"follows", "idx_follows_follower_type", "follower_id, followable_type"},
		{"follows", "idx_follows_followed", "followable_type, followable_id"},

		// Subscription rosters are keyed by the polymorphic source pair
		{"user_subscriptions", "idx_user_subscriptions_source", "sourceable_type, sourceable_id"},
		{"user_subscriptions", "idx_user_subscriptions_author", "author_id"},

		// Organization members indexes
		{"organization_members", "idx_org_members_organization_id", "organization_id"},
		{"organization_members", "idx_org_members_user_id", "user_id"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
