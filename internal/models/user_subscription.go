package models

import "time"

// SourceableType tags the polymorphic source a reader subscribed through.
// The set of valid tags is owned by the sources package allow-list.
type SourceableType string

const (
	SourceableArticle SourceableType = "article"
)

// UserSubscription records a reader subscribing to an author through a
// specific source (currently an article's embedded subscription prompt).
// AuthorID is fixed at creation time to the owner of the source and is
// what later authorizes "may this actor see the roster".
type UserSubscription struct {
	ID              uint64         `gorm:"primarykey" json:"id"`
	SubscriberID    uint64         `gorm:"not null;index" json:"subscriber_id"`
	SubscriberEmail string         `gorm:"type:varchar(255);not null" json:"subscriber_email"`
	AuthorID        uint64         `gorm:"not null;index" json:"author_id"`
	SourceableType  SourceableType `gorm:"type:varchar(30);not null;index:idx_subscriptions_source" json:"sourceable_type"`
	SourceableID    uint64         `gorm:"not null;index:idx_subscriptions_source" json:"sourceable_id"`
	CreatedAt       time.Time      `json:"created_at"`

	// Relations
	Subscriber User `gorm:"foreignKey:SubscriberID" json:"subscriber,omitempty"`
}
