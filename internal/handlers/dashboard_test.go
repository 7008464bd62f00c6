package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/authz"
	"github.com/creatorhub/dashboard-api/internal/constants"
	"github.com/creatorhub/dashboard-api/internal/database"
	"github.com/creatorhub/dashboard-api/internal/dto"
	"github.com/creatorhub/dashboard-api/internal/models"
	"github.com/creatorhub/dashboard-api/internal/repository"
	"github.com/creatorhub/dashboard-api/internal/services"
	"github.com/creatorhub/dashboard-api/internal/sources"
)

type dashboardTestEnv struct {
	db      *gorm.DB
	handler *DashboardHandler
}

func setupDashboardTestEnv(t *testing.T) dashboardTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.OrganizationMember{},
		&models.Article{},
		&models.Tag{},
		&models.Podcast{},
		&models.Follow{},
		&models.UserSubscription{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	articleRepo := repository.NewArticleRepository(db)
	service := services.NewDashboardService(
		articleRepo,
		repository.NewFollowRepository(db),
		repository.NewSubscriptionRepository(db),
		repository.NewOrganizationRepository(db),
		repository.NewUserRepository(db),
		sources.NewLocator(articleRepo),
		authz.DefaultPolicy(),
	)
	handler := NewDashboardHandler(service)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return dashboardTestEnv{
		db:      db,
		handler: handler,
	}
}

func createDashboardTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// dashTestContext builds a request context with the resolved actor
// already set, the way LoadActor leaves it.
func dashTestContext(db *gorm.DB, method, url string, user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	if user != nil {
		var memberships []models.OrganizationMember
		db.Where("user_id = ?", user.ID).Find(&memberships)
		c.Set(constants.ContextKeyActor, authz.ActorFromUser(user, memberships))
	}

	return c, w
}

func TestGetDashboard_Unauthenticated(t *testing.T) {
	env := setupDashboardTestEnv(t)

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard", nil)

	env.handler.GetDashboard(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetDashboard_OwnArticles(t *testing.T) {
	env := setupDashboardTestEnv(t)

	user := createDashboardTestUser(t, env.db, "ada")
	require.NoError(t, env.db.Create(&models.Article{
		Title: "Draft", Path: "/draft", UserID: user.ID, Published: false,
	}).Error)

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard", user)

	env.handler.GetDashboard(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Articles, 1)
	require.False(t, response.Articles[0].Published)
	require.True(t, response.Articles[0].CanDelete)
	require.False(t, response.Pagination.Paginated)
}

func TestGetUserDashboard_RequiresSuperAdmin(t *testing.T) {
	env := setupDashboardTestEnv(t)

	createDashboardTestUser(t, env.db, "target")
	viewer := createDashboardTestUser(t, env.db, "viewer")

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/user/target", viewer)
	c.Params = gin.Params{{Key: "username", Value: "target"}}

	env.handler.GetUserDashboard(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUserDashboard_SuperAdmin(t *testing.T) {
	env := setupDashboardTestEnv(t)

	target := createDashboardTestUser(t, env.db, "target")
	require.NoError(t, env.db.Create(&models.Article{
		Title: "Public", Path: "/public", UserID: target.ID, Published: true,
	}).Error)

	admin := createDashboardTestUser(t, env.db, "root")
	require.NoError(t, env.db.Model(admin).Update("super_admin", true).Error)
	admin.SuperAdmin = true

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/user/target", admin)
	c.Params = gin.Params{{Key: "username", Value: "target"}}

	env.handler.GetUserDashboard(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "target", response.User.Username)
	require.Len(t, response.Articles, 1)
}

func TestGetOrganizationDashboard_MemberAndAdminAffordances(t *testing.T) {
	env := setupDashboardTestEnv(t)

	org := &models.Organization{Name: "Acme", Slug: "acme"}
	require.NoError(t, env.db.Create(org).Error)

	author := createDashboardTestUser(t, env.db, "author")
	admin := createDashboardTestUser(t, env.db, "orgadmin")
	member := createDashboardTestUser(t, env.db, "member")
	for _, m := range []models.OrganizationMember{
		{OrganizationID: org.ID, UserID: author.ID, Role: models.OrgRoleMember, JoinedAt: time.Now()},
		{OrganizationID: org.ID, UserID: admin.ID, Role: models.OrgRoleAdmin, JoinedAt: time.Now()},
		{OrganizationID: org.ID, UserID: member.ID, Role: models.OrgRoleMember, JoinedAt: time.Now()},
	} {
		require.NoError(t, env.db.Create(&m).Error)
	}
	require.NoError(t, env.db.Create(&models.Article{
		Title: "Org post", Path: "/org-post", UserID: author.ID, OrganizationID: &org.ID, Published: true,
	}).Error)

	// Org admin sees the delete affordance on a row authored by another
	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/organization/1", admin)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	env.handler.GetOrganizationDashboard(c)
	require.Equal(t, http.StatusOK, w.Code)

	var adminView dto.OrganizationDashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adminView))
	require.True(t, adminView.CanManage)
	require.Len(t, adminView.Articles, 1)
	require.True(t, adminView.Articles[0].CanDelete)

	// Plain member sees the same list without the affordance
	c, w = dashTestContext(env.db, http.MethodGet, "/api/dashboard/organization/1", member)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	env.handler.GetOrganizationDashboard(c)
	require.Equal(t, http.StatusOK, w.Code)

	var memberView dto.OrganizationDashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &memberView))
	require.False(t, memberView.CanManage)
	require.Len(t, memberView.Articles, 1)
	require.False(t, memberView.Articles[0].CanDelete)
}

func TestGetOrganizationDashboard_NonMember(t *testing.T) {
	env := setupDashboardTestEnv(t)

	org := &models.Organization{Name: "Acme", Slug: "acme"}
	require.NoError(t, env.db.Create(org).Error)
	outsider := createDashboardTestUser(t, env.db, "outsider")

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/organization/1", outsider)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	env.handler.GetOrganizationDashboard(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetFollowCounts_Independent(t *testing.T) {
	env := setupDashboardTestEnv(t)

	user := createDashboardTestUser(t, env.db, "follower")
	tag := &models.Tag{Name: "golang"}
	require.NoError(t, env.db.Create(tag).Error)
	org := &models.Organization{Name: "Acme", Slug: "acme"}
	require.NoError(t, env.db.Create(org).Error)

	require.NoError(t, env.db.Create(&models.Follow{
		FollowerID: user.ID, FollowableType: models.FollowableTag, FollowableID: tag.ID,
	}).Error)
	require.NoError(t, env.db.Create(&models.Follow{
		FollowerID: user.ID, FollowableType: models.FollowableOrganization, FollowableID: org.ID,
	}).Error)

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/follows", user)

	env.handler.GetFollowCounts(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.FollowCountsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(1), response.Tags)
	require.Equal(t, int64(1), response.Organizations)
	require.Equal(t, int64(0), response.Users)
	require.Equal(t, int64(0), response.Podcasts)
}

func TestGetFollowing_UnknownKind(t *testing.T) {
	env := setupDashboardTestEnv(t)

	user := createDashboardTestUser(t, env.db, "follower")

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/following/comments", user)
	c.Params = gin.Params{{Key: "kind", Value: "comments"}}

	env.handler.GetFollowing(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProDashboard(t *testing.T) {
	env := setupDashboardTestEnv(t)

	plain := createDashboardTestUser(t, env.db, "plain")
	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/pro", plain)
	env.handler.GetProDashboard(c)
	require.Equal(t, http.StatusForbidden, w.Code)

	pro := createDashboardTestUser(t, env.db, "pro")
	require.NoError(t, env.db.Model(pro).Update("pro", true).Error)
	pro.Pro = true

	c, w = dashTestContext(env.db, http.MethodGet, "/api/dashboard/pro", pro)
	env.handler.GetProDashboard(c)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetProDashboard_Unauthenticated(t *testing.T) {
	env := setupDashboardTestEnv(t)

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/pro", nil)

	env.handler.GetProDashboard(c)

	// Redirect-to-login signal, never a 403
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetSubscriptions_DisallowedType(t *testing.T) {
	env := setupDashboardTestEnv(t)

	user := createDashboardTestUser(t, env.db, "author")

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/subscriptions?source_type=user&source_id=1", user)

	env.handler.GetSubscriptions(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSubscriptions_NotOwner(t *testing.T) {
	env := setupDashboardTestEnv(t)

	author := createDashboardTestUser(t, env.db, "author")
	other := createDashboardTestUser(t, env.db, "other")
	require.NoError(t, env.db.Create(&models.Article{
		Title: "Post", Path: "/post", UserID: author.ID, Published: true,
	}).Error)

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/subscriptions?source_type=article&source_id=1", other)

	env.handler.GetSubscriptions(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetSubscriptions_EmptyRoster(t *testing.T) {
	env := setupDashboardTestEnv(t)

	author := createDashboardTestUser(t, env.db, "author")
	require.NoError(t, env.db.Create(&models.Article{
		Title: "Post", Path: "/post", UserID: author.ID, Published: true,
	}).Error)

	c, w := dashTestContext(env.db, http.MethodGet, "/api/dashboard/subscriptions?source_type=article&source_id=1", author)

	env.handler.GetSubscriptions(c)

	// No subscribers renders the explicit empty state, not an error
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.SubscriptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Subscribers)
	require.Len(t, response.Subscribers, 0)
}
