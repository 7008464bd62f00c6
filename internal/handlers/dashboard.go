package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/creatorhub/dashboard-api/internal/authz"
	"github.com/creatorhub/dashboard-api/internal/dto"
	apierrors "github.com/creatorhub/dashboard-api/internal/errors"
	"github.com/creatorhub/dashboard-api/internal/middleware"
	"github.com/creatorhub/dashboard-api/internal/models"
	"github.com/creatorhub/dashboard-api/internal/services"
	"github.com/creatorhub/dashboard-api/internal/utils"
)

// DashboardHandler exposes the dashboard sections over HTTP. It is thin
// glue: capability, visibility and pagination decisions all live in the
// dashboard service.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the actor's own dashboard.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	view, err := h.dashboardService.Dashboard(actor, "", utils.PageFromQuery(c))
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(view))
}

// GetUserDashboard returns another user's dashboard (super admin only).
func (h *DashboardHandler) GetUserDashboard(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	view, err := h.dashboardService.Dashboard(actor, c.Param("username"), utils.PageFromQuery(c))
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(view))
}

// GetOrganizationDashboard returns the organization article list.
func (h *DashboardHandler) GetOrganizationDashboard(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	orgID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid organization ID")
		return
	}

	view, err := h.dashboardService.OrganizationDashboard(actor, orgID, utils.PageFromQuery(c))
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDashboardResponse(view))
}

// GetFollowing returns one of the four follow collections, selected by
// the :kind route parameter.
func (h *DashboardHandler) GetFollowing(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	kind, ok := followableKindFromParam(c.Param("kind"))
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	view, err := h.dashboardService.Following(actor, kind, utils.PageFromQuery(c))
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFollowingResponse(view))
}

// GetFollowCounts returns the four independent per-kind follow counts.
func (h *DashboardHandler) GetFollowCounts(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	counts, err := h.dashboardService.FollowCounts(actor)
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFollowCountsResponse(counts))
}

// GetFollowers returns the actor's followers.
func (h *DashboardHandler) GetFollowers(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	view, err := h.dashboardService.Followers(actor, utils.PageFromQuery(c))
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFollowersResponse(view))
}

// GetProDashboard returns the paid-tier analytics view.
func (h *DashboardHandler) GetProDashboard(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	view, err := h.dashboardService.ProDashboard(actor, nil)
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProDashboardResponse(view))
}

// GetOrgProDashboard returns the organization-scoped pro view.
func (h *DashboardHandler) GetOrgProDashboard(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	orgID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid organization ID")
		return
	}

	view, err := h.dashboardService.ProDashboard(actor, &orgID)
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProDashboardResponse(view))
}

// GetSubscriptions returns the reader-subscription roster for a
// polymorphic source the actor owns, identified by source_type and
// source_id query parameters.
func (h *DashboardHandler) GetSubscriptions(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	sourceType := c.Query("source_type")
	if sourceType == "" {
		apierrors.BadRequest(c, "source_type is required")
		return
	}

	sourceID, err := strconv.ParseUint(c.Query("source_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid source_id")
		return
	}

	view, err := h.dashboardService.Subscriptions(actor, sourceType, sourceID, utils.PageFromQuery(c))
	if err != nil {
		respondDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionsResponse(view))
}

func followableKindFromParam(param string) (models.FollowableType, bool) {
	switch param {
	case "users":
		return models.FollowableUser, true
	case "tags":
		return models.FollowableTag, true
	case "organizations":
		return models.FollowableOrganization, true
	case "podcasts":
		return models.FollowablePodcast, true
	default:
		return "", false
	}
}

// respondDashboardError maps the decision taxonomy onto the transport:
// unauthenticated is the login redirect, forbidden a 403, not found a
// 404. Anything else is an internal failure.
func respondDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		apierrors.Unauthenticated(c, "")
	case errors.Is(err, authz.ErrForbidden):
		apierrors.Forbidden(c, "")
	case errors.Is(err, authz.ErrNotFound):
		apierrors.NotFound(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
