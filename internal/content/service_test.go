package content_test

import (
	"fmt"
	"testing"

	"agencysite/internal/content"
	"agencysite/internal/content/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := mocks.NewMockSource(ctrl)
	svc := content.NewLookup(src)

	projects := []content.Record{
		content.Project{ID: "p1"}, content.Project{ID: "p2"}, content.Project{ID: "p3"},
	}

	t.Run("empty category means all", func(t *testing.T) {
		src.EXPECT().FilterByCategory(content.KindProject, content.AllCategories).Return(projects, nil)

		page, err := svc.List(content.ListQuery{Kind: content.KindProject})
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("limit and cursor", func(t *testing.T) {
		src.EXPECT().FilterByCategory(content.KindProject, "Web").Return(projects, nil).Times(2)

		page, err := svc.List(content.ListQuery{Kind: content.KindProject, Category: "Web", Limit: 2})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.NotEmpty(t, page.NextCursor)

		page, err = svc.List(content.ListQuery{Kind: content.KindProject, Category: "Web", Limit: 2, Cursor: page.NextCursor})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "p3", page.Items[0].RecordID())
	})

	t.Run("oversized limit is capped", func(t *testing.T) {
		many := make([]content.Record, 150)
		for i := range many {
			many[i] = content.Project{ID: fmt.Sprintf("p%d", i)}
		}
		src.EXPECT().FilterByCategory(content.KindProject, content.AllCategories).Return(many, nil)

		page, err := svc.List(content.ListQuery{Kind: content.KindProject, Limit: 500})
		require.NoError(t, err)
		assert.Len(t, page.Items, content.MaxPageSize)
		assert.NotEmpty(t, page.NextCursor)
	})

	t.Run("bad cursor never reaches source", func(t *testing.T) {
		_, err := svc.List(content.ListQuery{Kind: content.KindProject, Cursor: "%%%"})
		assert.ErrorIs(t, err, content.ErrInvalidCursor)
	})
}

func TestLookup_Related(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := mocks.NewMockSource(ctrl)
	svc := content.NewLookup(src)

	t.Run("uses anchor category", func(t *testing.T) {
		anchor := content.Article{ID: "b1", Category: "SEO"}
		src.EXPECT().Resolve(content.KindArticle, "b1").Return(anchor, nil)
		src.EXPECT().FindRelated(content.KindArticle, "b1", "SEO", 3).
			Return([]content.Record{content.Article{ID: "b2"}}, nil)

		got, err := svc.Related(content.KindArticle, "b1", 3)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("missing anchor", func(t *testing.T) {
		src.EXPECT().Resolve(content.KindArticle, "zz").Return(nil, content.ErrNotFound)

		_, err := svc.Related(content.KindArticle, "zz", 3)
		assert.ErrorIs(t, err, content.ErrNotFound)
	})
}
