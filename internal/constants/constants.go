package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyActor  = "actor"
)

// Per-section page sizes. These are section configuration, not a global
// limit: the dashboard paginates articles, follow lists and subscription
// rosters at different sizes.
const (
	ArticlesPerPage      = 50
	FollowsPerPage       = 80
	SubscriptionsPerPage = 100
)

// Pagination bounds for request parameters
const (
	MinPage = 1
)

// Auth
const (
	SessionCookieName = "dashboard_session"
	MinPasswordLength = 8
)
