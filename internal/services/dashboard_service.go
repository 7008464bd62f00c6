package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/authz"
	"github.com/creatorhub/dashboard-api/internal/constants"
	"github.com/creatorhub/dashboard-api/internal/models"
	"github.com/creatorhub/dashboard-api/internal/repository"
	"github.com/creatorhub/dashboard-api/internal/sources"
	"github.com/creatorhub/dashboard-api/internal/utils"
)

// DashboardService assembles the dashboard sections: it gates each
// request through the capability resolver, shapes the visible record set
// and windows it. Every denial short-circuits before any listing runs.
type DashboardService struct {
	articleRepo      repository.ArticleRepository
	followRepo       repository.FollowRepository
	subscriptionRepo repository.SubscriptionRepository
	orgRepo          repository.OrganizationRepository
	userRepo         repository.UserRepository
	locator          *sources.Locator
	policy           authz.Policy
	now              func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	articleRepo repository.ArticleRepository,
	followRepo repository.FollowRepository,
	subscriptionRepo repository.SubscriptionRepository,
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	locator *sources.Locator,
	policy authz.Policy,
) *DashboardService {
	return &DashboardService{
		articleRepo:      articleRepo,
		followRepo:       followRepo,
		subscriptionRepo: subscriptionRepo,
		orgRepo:          orgRepo,
		userRepo:         userRepo,
		locator:          locator,
		policy:           policy,
		now:              time.Now,
	}
}

// ArticleRow is one article in a dashboard listing plus its per-row
// delete affordance.
type ArticleRow struct {
	Article   models.Article
	CanDelete bool
}

// DashboardView is the user dashboard section: the owner's articles
// (drafts included for the owner) plus the softer capabilities decided
// for this actor.
type DashboardView struct {
	Owner                 models.User
	Articles              utils.Page[ArticleRow]
	ShowVideoUploadPrompt bool
	ShowProAnalyticsLink  bool
}

// OrganizationDashboardView is the organization dashboard section.
type OrganizationDashboardView struct {
	Organization         models.Organization
	CanManage            bool
	Articles             utils.Page[ArticleRow]
	ShowProAnalyticsLink bool
}

// FollowingView is one of the four independent follow collections.
type FollowingView struct {
	Kind    models.FollowableType
	Follows utils.Page[models.Follow]
}

// FollowingCounts carries the four independent per-kind counts. They are
// never merged: following one tag and one organization is (1, 1), not 2.
type FollowingCounts struct {
	Users         int64
	Tags          int64
	Organizations int64
	Podcasts      int64
}

// FollowersView lists the inverse follow edge.
type FollowersView struct {
	Followers utils.Page[models.Follow]
}

// ProDashboardView is the paid-tier analytics section, optionally scoped
// to one organization.
type ProDashboardView struct {
	OrganizationID *uint64
	FollowerCount  int64
}

// SubscriptionsView is the reader-subscription roster for one owned
// polymorphic source. An empty roster is a valid view, not an error.
type SubscriptionsView struct {
	Source        sources.Handle
	Subscriptions utils.Page[models.UserSubscription]
}

// Dashboard assembles the dashboard for targetUsername as seen by actor.
// An empty targetUsername means the actor's own dashboard; anyone else's
// requires the super admin role, checked before the target is even
// looked up so user existence does not leak.
func (s *DashboardService) Dashboard(actor *authz.Actor, targetUsername string, page int) (*DashboardView, error) {
	if err := authz.CanViewOwnDashboard(actor); err != nil {
		return nil, err
	}

	var target *models.User
	var err error
	if targetUsername == "" || targetUsername == actor.Username {
		target, err = s.userRepo.FindByID(actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
	} else {
		if !actor.HasRole(authz.RoleSuperAdmin) {
			return nil, authz.ErrForbidden
		}
		target, err = s.userRepo.FindByUsername(targetUsername)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, authz.ErrNotFound
			}
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
	}

	if err := authz.CanViewUserDashboard(actor, target.ID); err != nil {
		return nil, err
	}

	params := utils.NewPaginationParams(page, constants.ArticlesPerPage)
	filter := repository.ArticleFilter{
		AuthorID:      &target.ID,
		IncludeDrafts: actor.ID == target.ID,
		Page:          params.Page,
		PerPage:       params.PerPage,
	}

	articles, total, err := s.articleRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	rows := make([]ArticleRow, len(articles))
	for i, article := range articles {
		rows[i] = ArticleRow{
			Article:   article,
			CanDelete: authz.CanDeleteArticle(actor, &article),
		}
	}

	showProLink, err := s.showsProAnalyticsLinkAnywhere(actor)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Owner:                 *target,
		Articles:              utils.NewPage(rows, params, total),
		ShowVideoUploadPrompt: authz.ShowsVideoUploadPrompt(actor, s.now(), s.policy),
		ShowProAnalyticsLink:  showProLink,
	}, nil
}

// OrganizationDashboard assembles the organization-scoped article list.
// Admins manage, members view, non-members are denied; a missing
// organization is not found before any capability question arises.
func (s *DashboardService) OrganizationDashboard(actor *authz.Actor, organizationID uint64, page int) (*OrganizationDashboardView, error) {
	if !actor.Authenticated() {
		return nil, authz.ErrUnauthenticated
	}

	org, err := s.orgRepo.FindByID(organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authz.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	orgCap, err := authz.ResolveOrganizationDashboard(actor, organizationID)
	if err != nil {
		return nil, err
	}

	params := utils.NewPaginationParams(page, constants.ArticlesPerPage)
	filter := repository.ArticleFilter{
		OrganizationID: &organizationID,
		IncludeDrafts:  true,
		Page:           params.Page,
		PerPage:        params.PerPage,
	}

	articles, total, err := s.articleRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization articles: %w", err)
	}

	// The delete affordance on the org dashboard follows the org role,
	// not article authorship: admins see it on every row, members on none.
	rows := make([]ArticleRow, len(articles))
	for i, article := range articles {
		rows[i] = ArticleRow{
			Article:   article,
			CanDelete: orgCap.CanManage,
		}
	}

	eligible, err := s.orgProEligible(organizationID)
	if err != nil {
		return nil, err
	}

	return &OrganizationDashboardView{
		Organization:         *org,
		CanManage:            orgCap.CanManage,
		Articles:             utils.NewPage(rows, params, total),
		ShowProAnalyticsLink: authz.ShowsProAnalyticsLink(actor, organizationID, eligible),
	}, nil
}

// Following assembles one of the four follow collections. Each kind is
// its own collection with its own count; an unknown kind is not found.
func (s *DashboardService) Following(actor *authz.Actor, kind models.FollowableType, page int) (*FollowingView, error) {
	if err := authz.CanViewOwnDashboard(actor); err != nil {
		return nil, err
	}

	switch kind {
	case models.FollowableUser, models.FollowableTag, models.FollowableOrganization, models.FollowablePodcast:
	default:
		return nil, authz.ErrNotFound
	}

	params := utils.NewPaginationParams(page, constants.FollowsPerPage)
	follows, total, err := s.followRepo.ListFollowing(actor.ID, kind, params.Page, params.PerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}

	return &FollowingView{
		Kind:    kind,
		Follows: utils.NewPage(follows, params, total),
	}, nil
}

// FollowCounts returns the four independent per-kind follow counts.
func (s *DashboardService) FollowCounts(actor *authz.Actor) (*FollowingCounts, error) {
	if err := authz.CanViewOwnDashboard(actor); err != nil {
		return nil, err
	}

	counts, err := s.followRepo.CountFollowing(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count follows: %w", err)
	}

	return &FollowingCounts{
		Users:         counts[models.FollowableUser],
		Tags:          counts[models.FollowableTag],
		Organizations: counts[models.FollowableOrganization],
		Podcasts:      counts[models.FollowablePodcast],
	}, nil
}

// Followers assembles the inverse follow edge for the actor.
func (s *DashboardService) Followers(actor *authz.Actor, page int) (*FollowersView, error) {
	if err := authz.CanViewOwnDashboard(actor); err != nil {
		return nil, err
	}

	params := utils.NewPaginationParams(page, constants.FollowsPerPage)
	followers, total, err := s.followRepo.ListFollowers(actor.ID, params.Page, params.PerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return &FollowersView{
		Followers: utils.NewPage(followers, params, total),
	}, nil
}

// ProDashboard gates the paid-tier analytics view. With an organization
// scope the actor additionally needs any membership in that organization.
func (s *DashboardService) ProDashboard(actor *authz.Actor, organizationID *uint64) (*ProDashboardView, error) {
	if organizationID != nil {
		if err := authz.CanViewOrgProDashboard(actor, *organizationID); err != nil {
			return nil, err
		}
	} else {
		if err := authz.CanViewProDashboard(actor); err != nil {
			return nil, err
		}
	}

	_, followerTotal, err := s.followRepo.ListFollowers(actor.ID, 1, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to load audience stats: %w", err)
	}

	return &ProDashboardView{
		OrganizationID: organizationID,
		FollowerCount:  followerTotal,
	}, nil
}

// Subscriptions assembles the reader-subscription roster for one owned
// source: resolve the polymorphic reference, enforce ownership, then
// list in stable creation order.
func (s *DashboardService) Subscriptions(actor *authz.Actor, sourceType string, sourceID uint64, page int) (*SubscriptionsView, error) {
	if !actor.Authenticated() {
		return nil, authz.ErrUnauthenticated
	}

	handle, err := s.locator.Locate(sourceType, sourceID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanAccessSource(actor, handle.OwnerUserID); err != nil {
		return nil, err
	}

	params := utils.NewPaginationParams(page, constants.SubscriptionsPerPage)
	subscriptions, total, err := s.subscriptionRepo.ListBySource(handle.Type, handle.ID, params.Page, params.PerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return &SubscriptionsView{
		Source:        *handle,
		Subscriptions: utils.NewPage(subscriptions, params, total),
	}, nil
}

// orgProEligible resolves the pro-eligibility linkage for one
// organization: it is eligible when any of its admins holds the pro role.
func (s *DashboardService) orgProEligible(organizationID uint64) (bool, error) {
	admins, err := s.orgRepo.ListAdmins(organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to list organization admins: %w", err)
	}
	for _, admin := range admins {
		if admin.User.Pro {
			return true, nil
		}
	}
	return false, nil
}

// showsProAnalyticsLinkAnywhere decides the pro analytics link for the
// own dashboard: pro actors qualify outright, otherwise any administered
// pro-eligible organization qualifies.
func (s *DashboardService) showsProAnalyticsLinkAnywhere(actor *authz.Actor) (bool, error) {
	if actor.HasRole(authz.RolePro) {
		return true, nil
	}
	for _, m := range actor.Memberships {
		if m.Role != models.OrgRoleAdmin {
			continue
		}
		eligible, err := s.orgProEligible(m.OrganizationID)
		if err != nil {
			return false, err
		}
		if authz.ShowsProAnalyticsLink(actor, m.OrganizationID, eligible) {
			return true, nil
		}
	}
	return false, nil
}
