package dto

import (
	"time"

	"github.com/creatorhub/dashboard-api/internal/models"
	"github.com/creatorhub/dashboard-api/internal/services"
	"github.com/creatorhub/dashboard-api/internal/utils"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// PageMetaDTO represents the pagination metadata for one section window.
// Paginated tells the rendering layer whether to show a pagination
// control at all.
type PageMetaDTO struct {
	Page        int   `json:"page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	HasNextPage bool  `json:"has_next_page"`
	Paginated   bool  `json:"paginated"`
}

// ArticleRowDTO represents one article row with its delete affordance
type ArticleRowDTO struct {
	ID             uint64     `json:"id"`
	Title          string     `json:"title"`
	Path           string     `json:"path"`
	Published      bool       `json:"published"`
	PublishedAt    *time.Time `json:"published_at"`
	UserID         uint64     `json:"user_id"`
	OrganizationID *uint64    `json:"organization_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CanDelete      bool       `json:"can_delete"`
}

// DashboardResponse is the user dashboard payload
type DashboardResponse struct {
	User                  UserDTO         `json:"user"`
	Articles              []ArticleRowDTO `json:"articles"`
	Pagination            PageMetaDTO     `json:"pagination"`
	ShowVideoUploadPrompt bool            `json:"show_video_upload_prompt"`
	ShowProAnalyticsLink  bool            `json:"show_pro_analytics_link"`
}

// OrganizationDashboardResponse is the organization dashboard payload
type OrganizationDashboardResponse struct {
	OrganizationID       uint64          `json:"organization_id"`
	OrganizationName     string          `json:"organization_name"`
	CanManage            bool            `json:"can_manage"`
	Articles             []ArticleRowDTO `json:"articles"`
	Pagination           PageMetaDTO     `json:"pagination"`
	ShowProAnalyticsLink bool            `json:"show_pro_analytics_link"`
}

// FollowDTO represents one follow edge in a following listing
type FollowDTO struct {
	ID             uint64                `json:"id"`
	FollowableType models.FollowableType `json:"followable_type"`
	FollowableID   uint64                `json:"followable_id"`
	CreatedAt      time.Time             `json:"created_at"`
}

// FollowerDTO represents one follower in the followers listing
type FollowerDTO struct {
	UserID     uint64    `json:"user_id"`
	Username   string    `json:"username"`
	FollowedAt time.Time `json:"followed_at"`
}

// FollowingResponse is one of the four independent follow collections
type FollowingResponse struct {
	Kind       models.FollowableType `json:"kind"`
	Items      []FollowDTO           `json:"items"`
	Pagination PageMetaDTO           `json:"pagination"`
}

// FollowCountsResponse carries the four independent counts
type FollowCountsResponse struct {
	Users         int64 `json:"users"`
	Tags          int64 `json:"tags"`
	Organizations int64 `json:"organizations"`
	Podcasts      int64 `json:"podcasts"`
}

// FollowersResponse is the inverse-edge listing
type FollowersResponse struct {
	Followers  []FollowerDTO `json:"followers"`
	Pagination PageMetaDTO   `json:"pagination"`
}

// ProDashboardResponse is the paid-tier analytics payload
type ProDashboardResponse struct {
	OrganizationID *uint64 `json:"organization_id,omitempty"`
	FollowerCount  int64   `json:"follower_count"`
}

// SubscriptionDTO represents one reader subscription in a roster
type SubscriptionDTO struct {
	ID              uint64    `json:"id"`
	SubscriberID    uint64    `json:"subscriber_id"`
	SubscriberEmail string    `json:"subscriber_email"`
	CreatedAt       time.Time `json:"created_at"`
}

// SubscriptionsResponse is the roster for one owned source. An empty
// Subscribers slice is the explicit no-subscribers state.
type SubscriptionsResponse struct {
	SourceType  models.SourceableType `json:"source_type"`
	SourceID    uint64                `json:"source_id"`
	Subscribers []SubscriptionDTO     `json:"subscribers"`
	Pagination  PageMetaDTO           `json:"pagination"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToPageMetaDTO converts a page window to its metadata
func ToPageMetaDTO[T any](page utils.Page[T]) PageMetaDTO {
	return PageMetaDTO{
		Page:        page.Number,
		PerPage:     page.PerPage,
		Total:       page.Total,
		HasNextPage: page.HasNextPage(),
		Paginated:   page.Paginated(),
	}
}

// ToArticleRowDTO converts an article row with its affordance
func ToArticleRowDTO(row services.ArticleRow) ArticleRowDTO {
	return ArticleRowDTO{
		ID:             row.Article.ID,
		Title:          row.Article.Title,
		Path:           row.Article.Path,
		Published:      row.Article.Published,
		PublishedAt:    row.Article.PublishedAt,
		UserID:         row.Article.UserID,
		OrganizationID: row.Article.OrganizationID,
		CreatedAt:      row.Article.CreatedAt,
		CanDelete:      row.CanDelete,
	}
}

func toArticleRowDTOs(rows []services.ArticleRow) []ArticleRowDTO {
	items := make([]ArticleRowDTO, len(rows))
	for i, row := range rows {
		items[i] = ToArticleRowDTO(row)
	}
	return items
}

// ToDashboardResponse converts the user dashboard view
func ToDashboardResponse(view *services.DashboardView) DashboardResponse {
	return DashboardResponse{
		User:                  ToUserDTO(view.Owner),
		Articles:              toArticleRowDTOs(view.Articles.Items),
		Pagination:            ToPageMetaDTO(view.Articles),
		ShowVideoUploadPrompt: view.ShowVideoUploadPrompt,
		ShowProAnalyticsLink:  view.ShowProAnalyticsLink,
	}
}

// ToOrganizationDashboardResponse converts the organization dashboard view
func ToOrganizationDashboardResponse(view *services.OrganizationDashboardView) OrganizationDashboardResponse {
	return OrganizationDashboardResponse{
		OrganizationID:       view.Organization.ID,
		OrganizationName:     view.Organization.Name,
		CanManage:            view.CanManage,
		Articles:             toArticleRowDTOs(view.Articles.Items),
		Pagination:           ToPageMetaDTO(view.Articles),
		ShowProAnalyticsLink: view.ShowProAnalyticsLink,
	}
}

// ToFollowingResponse converts one follow collection
func ToFollowingResponse(view *services.FollowingView) FollowingResponse {
	items := make([]FollowDTO, len(view.Follows.Items))
	for i, follow := range view.Follows.Items {
		items[i] = FollowDTO{
			ID:             follow.ID,
			FollowableType: follow.FollowableType,
			FollowableID:   follow.FollowableID,
			CreatedAt:      follow.CreatedAt,
		}
	}
	return FollowingResponse{
		Kind:       view.Kind,
		Items:      items,
		Pagination: ToPageMetaDTO(view.Follows),
	}
}

// ToFollowCountsResponse converts the per-kind counts
func ToFollowCountsResponse(counts *services.FollowingCounts) FollowCountsResponse {
	return FollowCountsResponse{
		Users:         counts.Users,
		Tags:          counts.Tags,
		Organizations: counts.Organizations,
		Podcasts:      counts.Podcasts,
	}
}

// ToFollowersResponse converts the followers listing
func ToFollowersResponse(view *services.FollowersView) FollowersResponse {
	followers := make([]FollowerDTO, len(view.Followers.Items))
	for i, follow := range view.Followers.Items {
		followers[i] = FollowerDTO{
			UserID:     follow.FollowerID,
			Username:   follow.Follower.Username,
			FollowedAt: follow.CreatedAt,
		}
	}
	return FollowersResponse{
		Followers:  followers,
		Pagination: ToPageMetaDTO(view.Followers),
	}
}

// ToProDashboardResponse converts the pro analytics view
func ToProDashboardResponse(view *services.ProDashboardView) ProDashboardResponse {
	return ProDashboardResponse{
		OrganizationID: view.OrganizationID,
		FollowerCount:  view.FollowerCount,
	}
}

// ToSubscriptionsResponse converts the roster view
func ToSubscriptionsResponse(view *services.SubscriptionsView) SubscriptionsResponse {
	subscribers := make([]SubscriptionDTO, len(view.Subscriptions.Items))
	for i, sub := range view.Subscriptions.Items {
		subscribers[i] = SubscriptionDTO{
			ID:              sub.ID,
			SubscriberID:    sub.SubscriberID,
			SubscriberEmail: sub.SubscriberEmail,
			CreatedAt:       sub.CreatedAt,
		}
	}
	return SubscriptionsResponse{
		SourceType:  view.Source.Type,
		SourceID:    view.Source.ID,
		Subscribers: subscribers,
		Pagination:  ToPageMetaDTO(view.Subscriptions),
	}
}
