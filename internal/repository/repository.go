package repository

import (
	"github.com/creatorhub/dashboard-api/internal/models"
)

// ArticleRepository defines the interface for article data access
type ArticleRepository interface {
	// FindByID finds an article by ID
	FindByID(id uint64) (*models.Article, error)

	// List retrieves articles with filtering and pagination
	List(filter ArticleFilter) ([]models.Article, int64, error)
}

// ArticleFilter holds filtering options for listing articles. Exactly one
// of AuthorID / OrganizationID is expected to be set; the visibility layer
// decides which and whether drafts are included.
type ArticleFilter struct {
	AuthorID       *uint64
	OrganizationID *uint64
	IncludeDrafts  bool
	Page           int
	PerPage        int
}

// FollowRepository defines the interface for follow-edge data access
type FollowRepository interface {
	// ListFollowing lists the entities of one kind a user follows
	ListFollowing(followerID uint64, kind models.FollowableType, page, perPage int) ([]models.Follow, int64, error)

	// CountFollowing counts followed entities per kind, independently
	CountFollowing(followerID uint64) (map[models.FollowableType]int64, error)

	// ListFollowers lists the inverse edge: users following the given user
	ListFollowers(userID uint64, page, perPage int) ([]models.Follow, int64, error)
}

// SubscriptionRepository defines the interface for reader-subscription
// data access
type SubscriptionRepository interface {
	// ListBySource lists subscriptions created through the given
	// polymorphic source, oldest first (stable creation order)
	ListBySource(sourceType models.SourceableType, sourceID uint64, page, perPage int) ([]models.UserSubscription, int64, error)
}

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// FindByID finds an organization by ID
	FindByID(id uint64) (*models.Organization, error)

	// FindMember finds a specific organization member
	FindMember(organizationID, userID uint64) (*models.OrganizationMember, error)

	// ListMembersByUserID lists all memberships held by a user
	ListMembersByUserID(userID uint64) ([]models.OrganizationMember, error)

	// ListAdmins lists the organization's admin memberships with users
	// preloaded
	ListAdmins(organizationID uint64) ([]models.OrganizationMember, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user and their personal organization in one
	// transaction
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}
