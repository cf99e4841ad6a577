package dailystatus_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-academy/internal/attendance"
	attendanceerrors "go-academy/internal/attendance/errors"
	"go-academy/internal/dailystatus"
	dailystatuserrors "go-academy/internal/dailystatus/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	day1 = "2025-03-04"
	day2 = "2025-03-05"
)

var tenantID = uuid.NewString()

func at(day, clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", day+" "+clock, seoul)
	if err != nil {
		panic(err)
	}
	return t
}

func newSession(store *fakeStore, clk *fakeClock) *dailystatus.Session {
	return dailystatus.NewSession(tenantID, store, store, clk,
		dailystatus.WithSessionLogger(zap.NewNop()),
		dailystatus.WithFetchTimeout(2*time.Second),
	)
}

func waitEntered(t *testing.T, store *fakeStore, day string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-store.entered:
			if got == day {
				return
			}
		case <-deadline:
			t.Fatalf("fetch for %s never started", day)
		}
	}
}

func TestSession_StartLoadsToday(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	store := newFakeStore(alice, bob)
	store.seed(day1,
		event(alice, attendance.StatusPresent, at(day1, "08:55")),
		event(alice, attendance.StatusOut, at(day1, "12:00")),
	)
	clk := newFakeClock(at(day1, "13:00"))

	s := newSession(store, clk)
	defer s.Dispose()
	s.Start(context.Background())

	assert.Equal(t, day1, s.DayKey())

	m := s.StatusMap()
	require.Len(t, m, 2)
	assert.Equal(t, attendance.StatusOut, m[alice].CurrentStatus)
	require.NotNil(t, m[alice].FirstCheckInTime)
	assert.Equal(t, "08:55", m[alice].FirstCheckInTime.String())
	assert.Nil(t, m[alice].LastCheckOutTime)
	assert.Len(t, m[alice].History, 2)

	assert.Equal(t, attendance.StatusAbsent, m[bob].CurrentStatus)
	assert.Empty(t, m[bob].History)
	assert.Nil(t, m[bob].LastUpdate)
	assert.False(t, s.Snapshot().Degraded)
}

func TestSession_LoadDayFetchFailureDegrades(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	store := newFakeStore(alice, bob)
	store.seed(day1, event(alice, attendance.StatusPresent, at(day1, "09:00")))
	store.setFetchErr(errors.New("connection refused"))
	clk := newFakeClock(at(day1, "10:00"))

	s := newSession(store, clk)
	defer s.Dispose()
	s.LoadDay(context.Background(), day1)

	snap := s.Snapshot()
	assert.True(t, snap.Degraded)
	require.Len(t, snap.Statuses, 2)
	for _, st := range snap.Statuses {
		assert.Equal(t, attendance.StatusAbsent, st.CurrentStatus)
		assert.Empty(t, st.History)
	}

	t.Run("next successful load clears the flag", func(t *testing.T) {
		store.setFetchErr(nil)
		s.LoadDay(context.Background(), day1)

		snap := s.Snapshot()
		assert.False(t, snap.Degraded)
		assert.Equal(t, attendance.StatusPresent, snap.Statuses[alice].CurrentStatus)
	})
}

func TestSession_RecordStatusChange(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	clk := newFakeClock(at(day1, "08:50"))

	s := newSession(store, clk)
	defer s.Dispose()
	s.Start(context.Background())

	var mu sync.Mutex
	var versions []uint64
	unsubscribe := s.OnStatusMapChanged(func(snap dailystatus.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		versions = append(versions, snap.Version)
	})
	defer unsubscribe()

	steps := []struct {
		clock  string
		status attendance.Status
	}{
		{"08:50", attendance.StatusPresent},
		{"12:10", attendance.StatusOut},
		{"13:05", attendance.StatusReturned},
		{"17:30", attendance.StatusLeft},
	}
	for _, step := range steps {
		clk.set(at(day1, step.clock))
		e, err := s.RecordStatusChange(context.Background(), alice, step.status, nil)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, day1, e.DayKey())
	}

	st := s.StatusMap()[alice]
	assert.Equal(t, attendance.StatusLeft, st.CurrentStatus)
	require.NotNil(t, st.FirstCheckInTime)
	assert.Equal(t, "08:50", st.FirstCheckInTime.String())
	require.NotNil(t, st.LastCheckOutTime)
	assert.Equal(t, "17:30", st.LastCheckOutTime.String())
	assert.Len(t, st.History, 4)
	assert.Len(t, store.appendedOn(day1), 4)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, versions, 4)
	for i := 1; i < len(versions); i++ {
		assert.Greater(t, versions[i], versions[i-1])
	}
}

func TestSession_RecordStatusChange_StampsTimes(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	clk := newFakeClock(at(day1, "09:12"))
	s := newSession(store, clk)
	defer s.Dispose()
	s.Start(context.Background())

	late, err := s.RecordStatusChange(context.Background(), alice, attendance.StatusLate, nil)
	require.NoError(t, err)
	require.NotNil(t, late.CheckInTime)
	assert.Equal(t, "09:12", late.CheckInTime.String())
	assert.Nil(t, late.CheckOutTime)

	clk.set(at(day1, "11:00"))
	out, err := s.RecordStatusChange(context.Background(), alice, attendance.StatusOut, nil)
	require.NoError(t, err)
	assert.Nil(t, out.CheckInTime)
	require.NotNil(t, out.CheckOutTime)
	assert.Equal(t, "11:00", out.CheckOutTime.String())

	clk.set(at(day1, "15:40"))
	note := "병원"
	early, err := s.RecordStatusChange(context.Background(), alice, attendance.StatusEarlyLeave, &note)
	require.NoError(t, err)
	require.NotNil(t, early.CheckOutTime)
	assert.Equal(t, "15:40", early.CheckOutTime.String())
	require.NotNil(t, early.Notes)
	assert.Equal(t, note, *early.Notes)
}

func TestSession_RecordStatusChange_PersistFailureLeavesMapUntouched(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	store.seed(day1, event(alice, attendance.StatusPresent, at(day1, "09:00")))
	clk := newFakeClock(at(day1, "12:00"))

	s := newSession(store, clk)
	defer s.Dispose()
	s.Start(context.Background())

	before := s.StatusMap()
	notified := false
	defer s.OnStatusMapChanged(func(dailystatus.Snapshot) { notified = true })()

	t.Run("store failure", func(t *testing.T) {
		store.setAppendErr(errors.New("deadlock detected"))

		_, err := s.RecordStatusChange(context.Background(), alice, attendance.StatusOut, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, dailystatuserrors.ErrPersistFailed))
		assert.Contains(t, err.Error(), "deadlock detected")

		assert.Equal(t, before, s.StatusMap())
		assert.False(t, notified)
	})

	t.Run("client error passes through", func(t *testing.T) {
		store.setAppendErr(attendanceerrors.ErrStudentNotFound)

		_, err := s.RecordStatusChange(context.Background(), uuid.New(), attendance.StatusPresent, nil)
		assert.True(t, errors.Is(err, attendanceerrors.ErrStudentNotFound))
		assert.False(t, errors.Is(err, dailystatuserrors.ErrPersistFailed))

		assert.Equal(t, before, s.StatusMap())
		assert.False(t, notified)
	})
}

func TestSession_RecordDeviceStatusChange(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	clk := newFakeClock(at(day1, "08:45"))
	s := newSession(store, clk)
	defer s.Dispose()
	s.Start(context.Background())

	e, err := s.RecordDeviceStatusChange(context.Background(), alice, attendance.StatusPresent, nil, "gate-2")
	require.NoError(t, err)
	require.NotNil(t, e.SourceRecordID)
	assert.Equal(t, "gate-2", *e.SourceRecordID)

	st := s.StatusMap()[alice]
	require.Len(t, st.History, 1)
	require.NotNil(t, st.History[0].SourceRecordID)
	assert.Equal(t, "gate-2", *st.History[0].SourceRecordID)

	_, err = s.RecordDeviceStatusChange(context.Background(), alice, attendance.StatusLeft, nil, "")
	assert.ErrorIs(t, err, dailystatuserrors.ErrInvalidDeviceID)
	assert.Len(t, store.appendedOn(day1), 1)
}

func TestSession_RecordStatusChange_RejectsUnknownStatus(t *testing.T) {
	store := newFakeStore()
	s := newSession(store, newFakeClock(at(day1, "09:00")))
	defer s.Dispose()

	_, err := s.RecordStatusChange(context.Background(), uuid.New(), attendance.Status("vacation"), nil)
	assert.ErrorIs(t, err, dailystatuserrors.ErrInvalidStatus)
	assert.Empty(t, store.appendedOn(day1))
}

func TestSession_RolloverIsolatesDays(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	store.seed(day1,
		event(alice, attendance.StatusPresent, at(day1, "09:00")),
		event(alice, attendance.StatusLeft, at(day1, "18:00")),
	)
	clk := newFakeClock(at(day1, "23:59"))

	s := newSession(store, clk)
	defer s.Dispose()
	s.Start(context.Background())
	require.Equal(t, attendance.StatusLeft, s.StatusMap()[alice].CurrentStatus)

	var mu sync.Mutex
	var seen []dailystatus.Snapshot
	defer s.OnStatusMapChanged(func(snap dailystatus.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, snap)
	})()

	release := store.gate(day2)
	store.drainEntered()

	done := make(chan struct{})
	go func() {
		defer close(done)
		clk.midnight(at(day2, "00:00"))
	}()
	waitEntered(t, store, day2)

	// While the new day is loading nothing from the previous day is visible.
	assert.Equal(t, day2, s.DayKey())
	assert.Empty(t, s.StatusMap())

	close(release)
	<-done

	m := s.StatusMap()
	require.Len(t, m, 1)
	assert.Equal(t, attendance.StatusAbsent, m[alice].CurrentStatus)
	assert.Empty(t, m[alice].History)
	assert.Nil(t, m[alice].FirstCheckInTime)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.Empty(t, seen[0].Statuses)
	assert.Equal(t, day2, seen[0].DayKey)
	assert.Equal(t, day2, seen[1].DayKey)
	assert.Len(t, seen[1].Statuses, 1)
}

func TestSession_StaleLoadIsDiscarded(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	store.seed(day1, event(alice, attendance.StatusPresent, at(day1, "09:00")))
	store.seed(day2, event(alice, attendance.StatusLate, at(day2, "09:20")))
	clk := newFakeClock(at(day2, "10:00"))

	s := newSession(store, clk)
	defer s.Dispose()

	release := store.gate(day1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.LoadDay(context.Background(), day1)
	}()
	waitEntered(t, store, day1)

	s.LoadDay(context.Background(), day2)
	require.Equal(t, attendance.StatusLate, s.StatusMap()[alice].CurrentStatus)

	close(release)
	<-done

	assert.Equal(t, day2, s.DayKey())
	assert.Equal(t, attendance.StatusLate, s.StatusMap()[alice].CurrentStatus)
}

func TestSession_RolloverDiscardsPreviousDayLoad(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	store.seed(day1, event(alice, attendance.StatusPresent, at(day1, "09:00")))
	clk := newFakeClock(at(day1, "23:59"))

	s := newSession(store, clk)
	defer s.Dispose()

	releaseDay1 := store.gate(day1)
	releaseDay2 := store.gate(day2)

	started := make(chan struct{})
	go func() {
		defer close(started)
		s.Start(context.Background())
	}()
	waitEntered(t, store, day1)

	// The day1 load completes after the board was cleared but before the day2 fetch starts.
	var released atomic.Bool
	defer s.OnStatusMapChanged(func(snap dailystatus.Snapshot) {
		if snap.DayKey == day2 && released.CompareAndSwap(false, true) {
			close(releaseDay1)
			<-started
		}
	})()

	rolled := make(chan struct{})
	go func() {
		defer close(rolled)
		clk.midnight(at(day2, "00:00"))
	}()
	waitEntered(t, store, day2)

	assert.True(t, released.Load())
	assert.Equal(t, day2, s.DayKey())
	assert.Empty(t, s.StatusMap())

	close(releaseDay2)
	<-rolled

	st := s.StatusMap()[alice]
	assert.Equal(t, attendance.StatusAbsent, st.CurrentStatus)
	assert.Empty(t, st.History)
}

func TestSession_RecordDuringLoadIsKept(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	clk := newFakeClock(at(day1, "08:55"))

	s := newSession(store, clk)
	defer s.Dispose()
	s.Start(context.Background())

	store.setReadFirst(true)
	release := store.gate(day1)
	store.drainEntered()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.LoadDay(context.Background(), day1)
	}()
	waitEntered(t, store, day1)

	e, err := s.RecordStatusChange(context.Background(), alice, attendance.StatusPresent, nil)
	require.NoError(t, err)
	require.Equal(t, attendance.StatusPresent, s.StatusMap()[alice].CurrentStatus)

	close(release)
	<-done

	st := s.StatusMap()[alice]
	assert.Equal(t, attendance.StatusPresent, st.CurrentStatus)
	require.Len(t, st.History, 1)
	assert.Equal(t, e.ID, st.History[0].ID)
	assert.Len(t, store.appendedOn(day1), 1)

	t.Run("next load reads it once", func(t *testing.T) {
		store.setReadFirst(false)
		s.LoadDay(context.Background(), day1)

		st := s.StatusMap()[alice]
		assert.Equal(t, attendance.StatusPresent, st.CurrentStatus)
		assert.Len(t, st.History, 1)
	})
}

func TestSession_RecordAfterRolloverDoesNotTouchNewDay(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	clk := newFakeClock(at(day1, "23:59"))

	s := newSession(store, clk)
	defer s.Dispose()
	s.Start(context.Background())

	store.mu.Lock()
	store.onAppend = func() {
		store.mu.Lock()
		store.onAppend = nil
		store.mu.Unlock()
		clk.midnight(at(day2, "00:00"))
	}
	store.mu.Unlock()

	e, err := s.RecordStatusChange(context.Background(), alice, attendance.StatusLeft, nil)
	require.NoError(t, err)
	assert.Equal(t, day1, e.DayKey())
	assert.Len(t, store.appendedOn(day1), 1)

	assert.Equal(t, day2, s.DayKey())
	st := s.StatusMap()[alice]
	assert.Equal(t, attendance.StatusAbsent, st.CurrentStatus)
	assert.Empty(t, st.History)
}

func TestSession_ListenersGetCopies(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	clk := newFakeClock(at(day1, "09:00"))
	s := newSession(store, clk)
	defer s.Dispose()
	s.Start(context.Background())

	calls := 0
	unsubscribe := s.OnStatusMapChanged(func(snap dailystatus.Snapshot) {
		calls++
		delete(snap.Statuses, alice)
	})
	other := 0
	defer s.OnStatusMapChanged(func(snap dailystatus.Snapshot) {
		other++
		assert.Contains(t, snap.Statuses, alice)
	})()

	_, err := s.RecordStatusChange(context.Background(), alice, attendance.StatusPresent, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, other)
	assert.Contains(t, s.StatusMap(), alice)

	m := s.StatusMap()
	m[alice] = attendance.AbsentStatus(alice)
	assert.Equal(t, attendance.StatusPresent, s.StatusMap()[alice].CurrentStatus)

	unsubscribe()
	unsubscribe()
	clk.set(at(day1, "12:00"))
	_, err = s.RecordStatusChange(context.Background(), alice, attendance.StatusOut, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestSession_Dispose(t *testing.T) {
	alice := uuid.New()
	store := newFakeStore(alice)
	clk := newFakeClock(at(day1, "09:00"))
	s := newSession(store, clk)
	s.Start(context.Background())

	notified := false
	s.OnStatusMapChanged(func(dailystatus.Snapshot) { notified = true })

	s.Dispose()
	s.Dispose()

	assert.True(t, clk.isCancelled())
	select {
	case <-s.Done():
	default:
		t.Fatal("Done not closed after Dispose")
	}

	_, err := s.RecordStatusChange(context.Background(), alice, attendance.StatusPresent, nil)
	assert.ErrorIs(t, err, dailystatuserrors.ErrSessionClosed)

	s.LoadDay(context.Background(), day2)
	assert.Equal(t, day1, s.DayKey())
	assert.False(t, notified)
}
