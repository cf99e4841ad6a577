package dailystatus_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-academy/internal/attendance"
	"go-academy/internal/dailystatus"
	dailystatuserrors "go-academy/internal/dailystatus/errors"
	dailystatusMock "go-academy/internal/dailystatus/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return "", dailystatus.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func TestRedisKVStore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	kv := dailystatus.NewRedisKVStore(db)
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		mock.ExpectGet("k1").RedisNil()
		_, err := kv.Get(ctx, "k1")
		assert.ErrorIs(t, err, dailystatus.ErrCacheMiss)
	})

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet("k2").SetVal("v2")
		v, err := kv.Get(ctx, "k2")
		require.NoError(t, err)
		assert.Equal(t, "v2", v)
	})

	t.Run("backend error", func(t *testing.T) {
		mock.ExpectGet("k3").SetErr(errors.New("connection reset"))
		_, err := kv.Get(ctx, "k3")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, dailystatus.ErrCacheMiss)
	})

	t.Run("set", func(t *testing.T) {
		mock.ExpectSet("k4", "v4", time.Minute).SetVal("OK")
		assert.NoError(t, kv.Set(ctx, "k4", "v4", time.Minute))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardCache_PutGet(t *testing.T) {
	kv := newFakeKV()
	cache := dailystatus.NewBoardCache(kv, time.Hour, zap.NewNop())
	ctx := context.Background()

	_, err := cache.Get(ctx, tenantID, day1)
	assert.ErrorIs(t, err, dailystatuserrors.ErrSnapshotNotFound)

	alice := uuid.New()
	board := dailystatus.BoardResponse{
		Date:          day1,
		TotalStudents: 1,
		Summary:       map[attendance.Status]int{attendance.StatusPresent: 1},
		Students: []attendance.DailyStatusResponse{{
			StudentID:     alice.String(),
			CurrentStatus: attendance.StatusPresent,
			StatusLabel:   attendance.StatusPresent.Label(),
		}},
	}
	require.NoError(t, cache.Put(ctx, tenantID, board))

	key := dailystatus.BoardKey(tenantID, day1)
	assert.Equal(t, "attendance:board:"+tenantID+":"+day1, key)
	assert.Equal(t, time.Hour, kv.ttls[key])

	got, err := cache.Get(ctx, tenantID, day1)
	require.NoError(t, err)
	assert.Equal(t, board.Students, got.Students)
	assert.Equal(t, 1, got.Summary[attendance.StatusPresent])
	assert.NotEmpty(t, got.GeneratedAt)

	t.Run("corrupt entry", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, dailystatus.BoardKey(tenantID, day2), "{", time.Hour))
		_, err := cache.Get(ctx, tenantID, day2)
		assert.Error(t, err)
	})
}

func TestBoardRefresher_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := dailystatusMock.NewMockEventSource(ctrl)
	roster := dailystatusMock.NewMockRoster(ctrl)
	kv := newFakeKV()
	cache := dailystatus.NewBoardCache(kv, 0, zap.NewNop())
	refresher := dailystatus.NewBoardRefresher(source, roster, cache, seoul)
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()

	t.Run("writes the aggregated board", func(t *testing.T) {
		roster.EXPECT().ListStudentIDs(gomock.Any(), tenantID).Return([]uuid.UUID{alice, bob}, nil)
		source.EXPECT().FetchEvents(gomock.Any(), tenantID, day1).Return([]attendance.Event{
			event(alice, attendance.StatusPresent, at(day1, "08:58")),
			event(alice, attendance.StatusLeft, at(day1, "17:00")),
		}, nil)

		require.NoError(t, refresher.Refresh(ctx, tenantID, day1))

		key := dailystatus.BoardKey(tenantID, day1)
		assert.Equal(t, dailystatus.DefaultBoardCacheTTL, kv.ttls[key])

		var board dailystatus.BoardResponse
		require.NoError(t, json.Unmarshal([]byte(kv.data[key]), &board))
		assert.Equal(t, 2, board.TotalStudents)
		assert.Equal(t, 1, board.Summary[attendance.StatusLeft])
		assert.Equal(t, 1, board.Summary[attendance.StatusAbsent])
	})

	t.Run("fetch failure is returned and nothing is cached", func(t *testing.T) {
		roster.EXPECT().ListStudentIDs(gomock.Any(), tenantID).Return([]uuid.UUID{alice}, nil)
		source.EXPECT().FetchEvents(gomock.Any(), tenantID, day2).Return(nil, errors.New("timeout"))

		assert.Error(t, refresher.Refresh(ctx, tenantID, day2))
		_, ok := kv.data[dailystatus.BoardKey(tenantID, day2)]
		assert.False(t, ok)
	})
}

func TestMapSnapshot(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	statuses := dailystatus.BuildStatusMap([]attendance.Event{
		event(b, attendance.StatusLate, at(day1, "09:40")),
	}, []uuid.UUID{b, a})

	resp := dailystatus.MapSnapshot(dailystatus.Snapshot{DayKey: day1, Version: 7, Statuses: statuses}, seoul)

	assert.Equal(t, day1, resp.Date)
	assert.Equal(t, uint64(7), resp.Version)
	require.Len(t, resp.Students, 2)
	assert.Equal(t, a.String(), resp.Students[0].StudentID)
	assert.Equal(t, "미등원", resp.Students[0].StatusLabel)
	assert.Equal(t, b.String(), resp.Students[1].StudentID)
	require.NotNil(t, resp.Students[1].FirstCheckInTime)
	assert.Equal(t, "09:40", *resp.Students[1].FirstCheckInTime)
	require.NotNil(t, resp.Students[1].LastUpdate)
	assert.Equal(t, "2025-03-04T09:40:00+09:00", *resp.Students[1].LastUpdate)
}
