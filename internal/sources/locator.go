package sources

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/authz"
	"github.com/creatorhub/dashboard-api/internal/models"
	"github.com/creatorhub/dashboard-api/internal/repository"
)

// Handle is a resolved polymorphic source: the allow-listed kind, the
// record id and the user who owns it. Ownership enforcement is the
// caller's job (authz.CanAccessSource).
type Handle struct {
	Type        models.SourceableType
	ID          uint64
	OwnerUserID uint64
}

type lookupFunc func(id uint64) (*Handle, error)

// Locator resolves (source_type, source_id) pairs against an explicit
// allow-list table of type tag -> lookup function. Types outside the
// table and missing records both surface as authz.ErrNotFound: callers
// cannot tell a disallowed type from an absent row, so the schema does
// not leak.
type Locator struct {
	lookups map[models.SourceableType]lookupFunc
}

// NewLocator builds the locator with the subscribable entity kinds
// registered.
func NewLocator(articles repository.ArticleRepository) *Locator {
	l := &Locator{lookups: make(map[models.SourceableType]lookupFunc)}

	l.lookups[models.SourceableArticle] = func(id uint64) (*Handle, error) {
		article, err := articles.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, authz.ErrNotFound
			}
			return nil, err
		}
		return &Handle{
			Type:        models.SourceableArticle,
			ID:          article.ID,
			OwnerUserID: article.UserID,
		}, nil
	}

	return l
}

// Locate resolves a source reference. The type tag is matched
// case-insensitively; anything not on the allow-list is not found.
func (l *Locator) Locate(sourceType string, sourceID uint64) (*Handle, error) {
	lookup, ok := l.lookups[models.SourceableType(strings.ToLower(sourceType))]
	if !ok {
		return nil, authz.ErrNotFound
	}
	return lookup(sourceID)
}
