package models

import "time"

// FollowableType tags the entity kind on the followed side of a follow
// edge. Only the four listed kinds are valid; anything else is rejected
// before it reaches the database.
type FollowableType string

const (
	FollowableUser         FollowableType = "user"
	FollowableTag          FollowableType = "tag"
	FollowableOrganization FollowableType = "organization"
	FollowablePodcast      FollowableType = "podcast"
)

// Follow is a generic follow edge from a user to a followable entity.
// It records interest, not ownership.
type Follow struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	FollowerID     uint64         `gorm:"not null;index:idx_follows_follower" json:"follower_id"`
	FollowableType FollowableType `gorm:"type:varchar(30);not null;index:idx_follows_followable" json:"followable_type"`
	FollowableID   uint64         `gorm:"not null;index:idx_follows_followable" json:"followable_id"`
	CreatedAt      time.Time      `json:"created_at"`

	// Relations
	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
}
