package blog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lukustore/lukustore-backend/internal/media"
	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

func newBlogFixture(t *testing.T) Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)
	return svc
}

func articleInput(title string) CreateArticleInput {
	return CreateArticleInput{
		Title:   title,
		Summary: "summary",
		Content: "content",
		Author:  "DJ Luku",
	}
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	svc := newBlogFixture(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, articleInput("Behind the Mix: Amapiano Nights"))
	require.NoError(t, err)
	require.NotNil(t, article.Slug)
	require.Equal(t, "behind-the-mix-amapiano-nights", *article.Slug)

	loaded, err := svc.GetBySlug(ctx, "behind-the-mix-amapiano-nights")
	require.NoError(t, err)
	require.Equal(t, article.ID, loaded.ID)
}

func TestCreateDuplicateTitleConflicts(t *testing.T) {
	svc := newBlogFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, articleInput("Same Title"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, articleInput("Same Title"))
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestUpdateRetitleMovesSlug(t *testing.T) {
	svc := newBlogFixture(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, articleInput("Old Title"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, article.ID, articleInput("New Title"))
	require.NoError(t, err)
	require.Equal(t, "new-title", *updated.Slug)

	_, err = svc.GetBySlug(ctx, "old-title")
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListNewestFirst(t *testing.T) {
	svc := newBlogFixture(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := svc.Create(ctx, articleInput(title))
		require.NoError(t, err)
	}

	articles, err := svc.List(ctx, pagination.Params{Limit: 2, Page: 1})
	require.NoError(t, err)
	require.Len(t, articles, 2)
	require.Equal(t, "Third", articles[0].Title)
	require.Equal(t, "Second", articles[1].Title)

	rest, err := svc.List(ctx, pagination.Params{Limit: 2, Page: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.Equal(t, "First", rest[0].Title)
}

func TestDeleteMissingArticle(t *testing.T) {
	svc := newBlogFixture(t)

	err := svc.Delete(context.Background(), 9999)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCreateFillsPlaceholderImage(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	svc, err := NewService(NewRepository(gdb), WithPlaceholders(media.NewRegistry(gdb)))
	require.NoError(t, err)
	ctx := context.Background()

	article, err := svc.Create(ctx, articleInput("No Cover Supplied"))
	require.NoError(t, err)
	require.NotNil(t, article.Image)
	require.Equal(t, "blog/blog.jpg", *article.Image)

	custom := "blog/custom.jpg"
	input := articleInput("Cover Supplied")
	input.Image = &custom
	article, err = svc.Create(ctx, input)
	require.NoError(t, err)
	require.Equal(t, custom, *article.Image)
}
