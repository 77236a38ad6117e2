package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booker/internal/httperr"
)

var day = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func newRedisRepo(t *testing.T) (*SessionRedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionRedisRepository(client, time.Minute), mr
}

func repos(t *testing.T) map[string]schedule.Repository {
	redisRepo, _ := newRedisRepo(t)
	return map[string]schedule.Repository{
		"memory": NewSessionMemoryRepository(),
		"redis":  redisRepo,
	}
}

func TestSessionRepository_Contract(t *testing.T) {
	for name, repo := range repos(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := schedule.NewState(day, day)
			require.NoError(t, repo.Create(ctx, s))

			got, err := repo.Get(ctx, s.ID)
			require.NoError(t, err)
			assert.Equal(t, s.ID, got.ID)
			assert.Zero(t, got.BookedTimes.Len())

			updated, err := repo.Update(ctx, s.ID, func(st *schedule.State) error {
				st.Book("09:30")
				st.AdminInput = "14:00"
				return nil
			})
			require.NoError(t, err)
			assert.True(t, updated.BookedTimes.Has("09:30"))

			got, err = repo.Get(ctx, s.ID)
			require.NoError(t, err)
			assert.True(t, got.BookedTimes.Has("09:30"))
			assert.Equal(t, "14:00", got.AdminInput)

			require.NoError(t, repo.Delete(ctx, s.ID))
			_, err = repo.Get(ctx, s.ID)
			assert.True(t, httperr.IsBusiness(err, "session_not_found"))
		})
	}
}

func TestSessionRepository_UpdateErrorDiscardsChanges(t *testing.T) {
	for name, repo := range repos(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := schedule.NewState(day, day)
			require.NoError(t, repo.Create(ctx, s))

			boom := errors.New("boom")
			_, err := repo.Update(ctx, s.ID, func(st *schedule.State) error {
				st.Book("10:00")
				return boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := repo.Get(ctx, s.ID)
			require.NoError(t, err)
			assert.False(t, got.BookedTimes.Has("10:00"))
		})
	}
}

func TestSessionRepository_UpdateUnknown(t *testing.T) {
	for name, repo := range repos(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Update(context.Background(), "missing", func(*schedule.State) error { return nil })
			assert.True(t, httperr.IsBusiness(err, "session_not_found"))
		})
	}
}

func TestSessionMemoryRepository_ConcurrentUpdates(t *testing.T) {
	repo := NewSessionMemoryRepository()
	ctx := context.Background()
	s := schedule.NewState(day, day)
	require.NoError(t, repo.Create(ctx, s))

	slots := schedule.GenerateSlots(schedule.DefaultWorkingHours, nil)
	var wg sync.WaitGroup
	for _, slot := range slots {
		wg.Add(1)
		go func(tm string) {
			defer wg.Done()
			repo.Update(ctx, s.ID, func(st *schedule.State) error {
				st.Book(tm)
				return nil
			})
		}(slot.Time)
	}
	wg.Wait()

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, len(slots), got.BookedTimes.Len())
}

func TestSessionMemoryRepository_Sweep(t *testing.T) {
	repo := NewSessionMemoryRepository()
	ctx := context.Background()

	old := schedule.NewState(day, day)
	fresh := schedule.NewState(day, day.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, fresh))

	removed, err := repo.Sweep(ctx, day.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []string{old.ID}, removed)
	assert.Equal(t, 1, repo.Len())
}

func TestSessionRedisRepository_Expires(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()
	s := schedule.NewState(day, day)
	require.NoError(t, repo.Create(ctx, s))

	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, s.ID)
	assert.True(t, httperr.IsBusiness(err, "session_not_found"))

	removed, err := repo.Sweep(ctx, time.Now())
	assert.NoError(t, err)
	assert.Empty(t, removed)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
