package authz

import (
	"errors"
	"time"

	"github.com/creatorhub/dashboard-api/internal/models"
)

// The three terminal outcomes of a capability check. Callers map these to
// their transport: ErrUnauthenticated to a login redirect, ErrForbidden to
// a 403, ErrNotFound to a 404. A request never proceeds past any of them.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
	ErrNotFound        = errors.New("not found")
)

// Policy carries the configurable business knobs the resolver consults.
// These are deployment configuration, not law.
type Policy struct {
	// VideoUploadMinAccountAge is the minimum account age before the
	// video upload prompt is shown.
	VideoUploadMinAccountAge time.Duration
}

// DefaultPolicy returns the observed production defaults.
func DefaultPolicy() Policy {
	return Policy{
		VideoUploadMinAccountAge: 21 * 24 * time.Hour,
	}
}

// OrgCapability is the decision for an organization dashboard request.
// CanManage implies CanView.
type OrgCapability struct {
	CanView   bool
	CanManage bool
}

// CanViewOwnDashboard grants any authenticated actor their own dashboard.
func CanViewOwnDashboard(actor *Actor) error {
	if !actor.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}

// CanViewUserDashboard decides whether the actor may view the dashboard
// belonging to targetUserID. Actors always reach their own; anyone else's
// requires the super admin role.
func CanViewUserDashboard(actor *Actor, targetUserID uint64) error {
	if !actor.Authenticated() {
		return ErrUnauthenticated
	}
	if actor.ID == targetUserID {
		return nil
	}
	if !actor.HasRole(RoleSuperAdmin) {
		return ErrForbidden
	}
	return nil
}

// ResolveOrganizationDashboard decides what the actor may do on an
// organization's dashboard. Org admins view and manage, plain members
// view only, non-members are denied.
func ResolveOrganizationDashboard(actor *Actor, organizationID uint64) (OrgCapability, error) {
	if !actor.Authenticated() {
		return OrgCapability{}, ErrUnauthenticated
	}
	m, ok := actor.MembershipIn(organizationID)
	if !ok {
		return OrgCapability{}, ErrForbidden
	}
	return OrgCapability{
		CanView:   true,
		CanManage: m.Role == models.OrgRoleAdmin,
	}, nil
}

// CanViewProDashboard requires the pro role. The unauthenticated case is
// reported distinctly so the caller can redirect to login instead of
// rendering an authorization error.
func CanViewProDashboard(actor *Actor) error {
	if !actor.Authenticated() {
		return ErrUnauthenticated
	}
	if !actor.HasRole(RolePro) {
		return ErrForbidden
	}
	return nil
}

// CanViewOrgProDashboard gates the organization-scoped pro dashboard:
// the actor needs the pro role and any membership in the organization.
func CanViewOrgProDashboard(actor *Actor, organizationID uint64) error {
	if err := CanViewProDashboard(actor); err != nil {
		return err
	}
	if _, ok := actor.MembershipIn(organizationID); !ok {
		return ErrForbidden
	}
	return nil
}

// ShowsProAnalyticsLink decides visibility of the pro analytics link for
// one organization context: the actor is pro themselves, or administers
// the organization and the organization is pro-eligible. Eligibility is
// resolved by the caller per organization.
func ShowsProAnalyticsLink(actor *Actor, organizationID uint64, orgProEligible bool) bool {
	if !actor.Authenticated() {
		return false
	}
	if actor.HasRole(RolePro) {
		return true
	}
	return actor.IsOrgAdmin(organizationID) && orgProEligible
}

// ShowsVideoUploadPrompt is granted only to non-recent accounts: the
// account must be at least the policy's minimum age at the time of the
// request.
func ShowsVideoUploadPrompt(actor *Actor, now time.Time, policy Policy) bool {
	if !actor.Authenticated() {
		return false
	}
	return now.Sub(actor.CreatedAt) >= policy.VideoUploadMinAccountAge
}

// CanDeleteArticle decides the per-row delete affordance: the article's
// owner, an admin of the article's organization, or a super admin.
func CanDeleteArticle(actor *Actor, article *models.Article) bool {
	if !actor.Authenticated() {
		return false
	}
	if actor.ID == article.UserID {
		return true
	}
	if article.OrganizationID != nil && actor.IsOrgAdmin(*article.OrganizationID) {
		return true
	}
	return actor.HasRole(RoleSuperAdmin)
}

// CanAccessSource layers the ownership check over a located polymorphic
// source: only the source's owner (or a super admin) proceeds.
func CanAccessSource(actor *Actor, ownerUserID uint64) error {
	if !actor.Authenticated() {
		return ErrUnauthenticated
	}
	if actor.ID == ownerUserID || actor.HasRole(RoleSuperAdmin) {
		return nil
	}
	return ErrForbidden
}
