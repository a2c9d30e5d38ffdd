package service

import (
	"context"
	"testing"
	"time"

	"linkmark-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowBoundaries(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.March, 8, 10, 30, 0, 0, time.UTC), sevenDaysAgo(now))
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), startOfDayUTC(now))
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), startOfYearUTC(now))
}

func TestStartOfDayUsesUTCDate(t *testing.T) {
	// 01:30 on the 16th in UTC+3 is still the 15th in UTC.
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, time.March, 16, 1, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), startOfDayUTC(now))
}

func TestGlobalStatsRollingWindowExcludesBoundary(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc := &statsService{
		uowFactory: newFakeFactory(store),
		now:        func() time.Time { return now },
	}

	boundary := sevenDaysAgo(now)
	inside := boundary.Add(time.Second)
	older := boundary.Add(-time.Hour)

	for _, read := range []time.Time{boundary, inside, older} {
		r := read
		b := &entity.Bookmark{
			Id:        uuid.New(),
			UserId:    uuid.New(),
			Url:       "https://example.com/" + uuid.NewString(),
			Timestamp: now,
			Read:      &r,
		}
		store.bookmarks[b.Id] = b
	}
	// unread bookmarks never count
	unread := &entity.Bookmark{Id: uuid.New(), UserId: uuid.New(), Url: "https://example.com/u", Timestamp: now}
	store.bookmarks[unread.Id] = unread

	res, err := svc.Global(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalRead)
	// a read at exactly now-7d falls outside the rolling window
	assert.Equal(t, int64(1), res.TotalReadLast7Days)
}

func TestPersonalStatsCalendarWindowsIncludeBoundary(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)
	svc := &statsService{
		uowFactory: newFakeFactory(store),
		now:        func() time.Time { return now },
	}

	userId := uuid.New()
	midnight := startOfDayUTC(now)
	newYear := startOfYearUTC(now)
	lastYear := newYear.Add(-time.Hour)

	for _, read := range []time.Time{midnight, newYear, lastYear} {
		r := read
		b := &entity.Bookmark{
			Id:        uuid.New(),
			UserId:    userId,
			Url:       "https://example.com/" + uuid.NewString(),
			Timestamp: now,
			Read:      &r,
		}
		store.bookmarks[b.Id] = b
	}
	// another user's reads stay out of personal stats
	otherRead := now
	other := &entity.Bookmark{Id: uuid.New(), UserId: uuid.New(), Url: "https://example.com/o", Timestamp: now, Read: &otherRead}
	store.bookmarks[other.Id] = other

	res, err := svc.Personal(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.UserRead)
	assert.Equal(t, int64(1), res.UserReadToday)
	assert.Equal(t, int64(2), res.UserReadYear)
}
