package authz

import (
	"time"

	"github.com/creatorhub/dashboard-api/internal/models"
)

// Role is a platform-wide capability tag on a user. Roles are additive:
// an actor can hold any combination of them at once.
type Role string

const (
	RoleAdmin      Role = "admin"
	RolePro        Role = "pro"
	RoleSuperAdmin Role = "super_admin"
)

// RoleSet is the set of platform roles an actor holds.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether the role is in the set.
func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// Membership is an actor's role within one organization.
type Membership struct {
	OrganizationID uint64
	Role           models.OrganizationRole
}

// Actor is the resolved identity the capability resolver decides over:
// who is asking, which platform roles they hold, which organizations they
// belong to and with what role, and how old the account is. A nil *Actor
// means the request is unauthenticated.
type Actor struct {
	ID          uint64
	Username    string
	Roles       RoleSet
	Memberships []Membership
	CreatedAt   time.Time
}

// ActorFromUser materializes an Actor from a user row and its
// organization memberships.
func ActorFromUser(user *models.User, memberships []models.OrganizationMember) *Actor {
	roles := make(RoleSet)
	if user.Admin {
		roles[RoleAdmin] = struct{}{}
	}
	if user.Pro {
		roles[RolePro] = struct{}{}
	}
	if user.SuperAdmin {
		roles[RoleSuperAdmin] = struct{}{}
	}

	ms := make([]Membership, len(memberships))
	for i, m := range memberships {
		ms[i] = Membership{
			OrganizationID: m.OrganizationID,
			Role:           m.Role,
		}
	}

	return &Actor{
		ID:          user.ID,
		Username:    user.Username,
		Roles:       roles,
		Memberships: ms,
		CreatedAt:   user.CreatedAt,
	}
}

// Authenticated reports whether the actor is a resolved, logged-in user.
func (a *Actor) Authenticated() bool {
	return a != nil && a.ID != 0
}

// HasRole reports whether the actor holds the platform role.
func (a *Actor) HasRole(r Role) bool {
	if a == nil {
		return false
	}
	return a.Roles.Has(r)
}

// MembershipIn returns the actor's membership in the organization, if any.
func (a *Actor) MembershipIn(organizationID uint64) (Membership, bool) {
	if a == nil {
		return Membership{}, false
	}
	for _, m := range a.Memberships {
		if m.OrganizationID == organizationID {
			return m, true
		}
	}
	return Membership{}, false
}

// IsOrgAdmin reports whether the actor administers the organization.
func (a *Actor) IsOrgAdmin(organizationID uint64) bool {
	m, ok := a.MembershipIn(organizationID)
	return ok && m.Role == models.OrgRoleAdmin
}
