package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/creatorhub/dashboard-api/internal/authz"
	"github.com/creatorhub/dashboard-api/internal/models"
	"github.com/creatorhub/dashboard-api/internal/repository"
)

// stubArticleRepository serves a fixed set of articles by ID.
type stubArticleRepository struct {
	articles map[uint64]*models.Article
}

func (s *stubArticleRepository) FindByID(id uint64) (*models.Article, error) {
	article, ok := s.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return article, nil
}

func (s *stubArticleRepository) List(filter repository.ArticleFilter) ([]models.Article, int64, error) {
	return nil, 0, nil
}

func newTestLocator() *Locator {
	return NewLocator(&stubArticleRepository{
		articles: map[uint64]*models.Article{
			7: {ID: 7, UserID: 42, Title: "Subscribable"},
		},
	})
}

func TestLocate_ExistingArticle(t *testing.T) {
	locator := newTestLocator()

	handle, err := locator.Locate("article", 7)
	assert.NoError(t, err)
	assert.Equal(t, models.SourceableArticle, handle.Type)
	assert.Equal(t, uint64(7), handle.ID)
	assert.Equal(t, uint64(42), handle.OwnerUserID)
}

func TestLocate_TypeTagIsCaseInsensitive(t *testing.T) {
	locator := newTestLocator()

	handle, err := locator.Locate("Article", 7)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), handle.OwnerUserID)
}

func TestLocate_MissingRecord(t *testing.T) {
	locator := newTestLocator()

	_, err := locator.Locate("article", 999)
	assert.ErrorIs(t, err, authz.ErrNotFound)
}

func TestLocate_DisallowedType(t *testing.T) {
	locator := newTestLocator()

	// A type outside the allow-list is indistinguishable from a missing
	// record
	_, err := locator.Locate("user", 7)
	assert.ErrorIs(t, err, authz.ErrNotFound)

	_, err = locator.Locate("organization_member", 1)
	assert.ErrorIs(t, err, authz.ErrNotFound)
}
