package mixes

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lukustore/lukustore-backend/internal/media"
	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

func newMixesFixture(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)
	return svc, gdb
}

func mixInput(title string, released time.Time) MixInput {
	return MixInput{
		Title:       title,
		MixArtist:   "DJ Luku",
		Genre:       "Amapiano",
		ReleaseDate: released,
	}
}

func TestCreateMixStartsCountersAtZero(t *testing.T) {
	svc, _ := newMixesFixture(t)
	ctx := context.Background()

	mix, err := svc.CreateMix(ctx, mixInput("Sundown Session", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.Zero(t, mix.PlayCount)
	require.Zero(t, mix.FavoriteCount)
	require.Zero(t, mix.DownloadCount)
}

func TestBumpCounterIncrements(t *testing.T) {
	svc, _ := newMixesFixture(t)
	ctx := context.Background()

	mix, err := svc.CreateMix(ctx, mixInput("Sundown Session", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	require.NoError(t, svc.BumpCounter(ctx, mix.ID, CounterPlay))
	require.NoError(t, svc.BumpCounter(ctx, mix.ID, CounterPlay))
	require.NoError(t, svc.BumpCounter(ctx, mix.ID, CounterFavorite))

	reloaded, err := svc.GetMix(ctx, mix.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, reloaded.PlayCount)
	require.EqualValues(t, 1, reloaded.FavoriteCount)
	require.EqualValues(t, 0, reloaded.DownloadCount)
}

func TestBumpCounterRepeatedPlaysAccumulate(t *testing.T) {
	svc, _ := newMixesFixture(t)
	ctx := context.Background()

	mix, err := svc.CreateMix(ctx, mixInput("Sundown Session", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	const plays = 20
	for i := 0; i < plays; i++ {
		require.NoError(t, svc.BumpCounter(ctx, mix.ID, CounterPlay))
	}

	reloaded, err := svc.GetMix(ctx, mix.ID)
	require.NoError(t, err)
	require.EqualValues(t, plays, reloaded.PlayCount)
}

func TestBumpCounterValidation(t *testing.T) {
	svc, _ := newMixesFixture(t)
	ctx := context.Background()

	err := svc.BumpCounter(ctx, 1, Counter("listen_count"))
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	err = svc.BumpCounter(ctx, 9999, CounterPlay)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListMixesNewestReleaseFirst(t *testing.T) {
	svc, _ := newMixesFixture(t)
	ctx := context.Background()

	_, err := svc.CreateMix(ctx, mixInput("Older", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = svc.CreateMix(ctx, mixInput("Newer", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	mixes, err := svc.ListMixes(ctx, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, mixes, 2)
	require.Equal(t, "Newer", mixes[0].Title)
}

func TestVideosRoundTrip(t *testing.T) {
	svc, _ := newMixesFixture(t)
	ctx := context.Background()

	video, err := svc.CreateVideo(ctx, VideoInput{Title: "Boiler Room Set", VideoFile: "videos/boiler-room.mp4"})
	require.NoError(t, err)

	videos, err := svc.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)

	require.NoError(t, svc.DeleteVideo(ctx, video.ID))
	videos, err = svc.ListVideos(ctx)
	require.NoError(t, err)
	require.Empty(t, videos)
}

func TestCreateMixFillsPlaceholderCover(t *testing.T) {
	_, gdb := newMixesFixture(t)
	svc, err := NewService(NewRepository(gdb), WithPlaceholders(media.NewRegistry(gdb)))
	require.NoError(t, err)
	ctx := context.Background()

	mix, err := svc.CreateMix(ctx, mixInput("No Artwork", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.NotNil(t, mix.Image)
	require.Equal(t, "mix/mix-cover.jpg", *mix.Image)

	cover := "mix/own-art.jpg"
	input := mixInput("Own Artwork", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	input.Image = &cover
	mix, err = svc.CreateMix(ctx, input)
	require.NoError(t, err)
	require.Equal(t, cover, *mix.Image)
}
