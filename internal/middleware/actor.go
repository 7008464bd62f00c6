package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/creatorhub/dashboard-api/internal/authz"
	"github.com/creatorhub/dashboard-api/internal/constants"
	"github.com/creatorhub/dashboard-api/internal/database"
	apierrors "github.com/creatorhub/dashboard-api/internal/errors"
	"github.com/creatorhub/dashboard-api/internal/models"
)

// LoadActor materializes the authenticated user's roles and organization
// memberships into an authz.Actor and stores it in the gin context. Runs
// after RequireAuth.
func LoadActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil {
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}

		var memberships []models.OrganizationMember
		if err := database.GetDB().
			Where("user_id = ?", userID).
			Find(&memberships).Error; err != nil {
			apierrors.InternalError(c, "Failed to load memberships")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActor, authz.ActorFromUser(&user, memberships))
		c.Next()
	}
}

// GetActor retrieves the resolved actor from context
func GetActor(c *gin.Context) (*authz.Actor, bool) {
	value, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return nil, false
	}
	actor, ok := value.(*authz.Actor)
	return actor, ok
}
