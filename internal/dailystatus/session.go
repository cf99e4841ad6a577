package dailystatus

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-academy/internal/attendance"
	dailystatuserrors "go-academy/internal/dailystatus/errors"
	"go-academy/internal/shared/apperror"
	"go-academy/internal/shared/clock"
	"go-academy/internal/shared/contextutil"
	"go-academy/internal/shared/timeofday"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultFetchTimeout = 10 * time.Second

// Listener receives a deep copy of the board after every change.
type Listener func(Snapshot)

type SessionOption func(*Session)

func WithFetchTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

func WithSessionLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger.Named("dailystatus.session")
		}
	}
}

// Session owns the live attendance board of one tenant for the selected civil day.
//
// The map is only replaced or mutated under mu, and only after the I/O that produced the
// new value has finished. Each LoadDay and Rollover takes a generation number; a load that
// completes after a newer one started, or for a day that is no longer selected, is dropped.
// Events recorded while a load is in flight are replayed onto its result.
type Session struct {
	tenantID     string
	source       EventSource
	roster       Roster
	clock        DayClock
	fetchTimeout time.Duration
	logger       *zap.Logger

	baseCtx    context.Context
	cancelBase context.CancelFunc

	mu             sync.RWMutex
	dayKey         string
	generation     uint64
	version        uint64
	degraded       bool
	statuses       map[uuid.UUID]attendance.StudentDailyStatus
	recorded       []attendance.Event
	listeners      map[uint64]Listener
	nextListener   uint64
	cancelRollover clock.CancelFunc
	started        bool
	disposed       bool
}

func NewSession(tenantID string, source EventSource, roster Roster, clk DayClock, opts ...SessionOption) *Session {
	baseCtx, cancel := context.WithCancel(context.Background())
	s := &Session{
		tenantID:     tenantID,
		source:       source,
		roster:       roster,
		clock:        clk,
		fetchTimeout: DefaultFetchTimeout,
		logger:       zap.L().Named("dailystatus.session"),
		baseCtx:      baseCtx,
		cancelBase:   cancel,
		statuses:     make(map[uuid.UUID]attendance.StudentDailyStatus),
		listeners:    make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("tenant_id", tenantID))
	return s
}

func (s *Session) TenantID() string {
	return s.tenantID
}

// Start arms the midnight rollover and loads today. Calling it twice is a no-op.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.disposed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.cancelRollover = s.clock.ScheduleNextRollover(s.Rollover)
	s.mu.Unlock()

	s.LoadDay(ctx, s.clock.Today())
}

// Dispose stops the rollover timer and drops all listeners. Pending loads finish but are discarded.
func (s *Session) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	cancel := s.cancelRollover
	s.cancelRollover = nil
	s.listeners = make(map[uint64]Listener)
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.cancelBase()
	s.logger.Debug("session disposed")
}

// LoadDay selects dayKey and replaces the board with a fresh aggregation. A failed fetch
// leaves every known roster student absent; it is logged and never returned.
func (s *Session) LoadDay(ctx context.Context, dayKey string) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.generation++
	gen := s.generation
	s.dayKey = dayKey
	s.recorded = nil
	s.mu.Unlock()

	logger := contextutil.GetLogger(ctx, s.logger).With(zap.String("date", dayKey))

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	ids, rosterErr := s.roster.ListStudentIDs(fetchCtx, s.tenantID)
	if rosterErr != nil {
		logger.Warn("roster fetch failed, board limited to students with events", zap.Error(rosterErr))
		ids = nil
	}

	events, fetchErr := s.source.FetchEvents(fetchCtx, s.tenantID, dayKey)
	var statuses map[uuid.UUID]attendance.StudentDailyStatus
	if fetchErr != nil {
		logger.Warn("attendance fetch failed, showing roster as absent", zap.Error(fetchErr))
		statuses = BuildStatusMap(nil, ids)
	} else {
		statuses = BuildStatusMap(events, ids)
	}

	s.mu.Lock()
	if gen != s.generation || dayKey != s.dayKey || s.disposed {
		s.mu.Unlock()
		logger.Debug("discarding stale day load", zap.Uint64("generation", gen))
		return
	}
	replayed := 0
	for _, e := range s.recorded {
		if foldEvent(statuses, e) {
			replayed++
		}
	}
	s.statuses = statuses
	s.degraded = fetchErr != nil
	snap, listeners := s.publishLocked()
	s.mu.Unlock()

	logger.Info("attendance day loaded",
		zap.Int("students", len(statuses)),
		zap.Int("events", len(events)),
		zap.Int("replayed", replayed),
		zap.Bool("degraded", fetchErr != nil),
	)
	notify(listeners, snap)
}

// Rollover empties the board for the new day before loading it, so nothing from the
// previous day is visible in between.
func (s *Session) Rollover(dayKey string) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.generation++
	s.dayKey = dayKey
	s.statuses = make(map[uuid.UUID]attendance.StudentDailyStatus)
	s.recorded = nil
	s.degraded = false
	snap, listeners := s.publishLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	s.LoadDay(s.baseCtx, dayKey)
}

// RecordStatusChange persists a status change for today and, once the store has accepted
// it, folds it into that student's entry. On any failure the board is left as it was.
func (s *Session) RecordStatusChange(ctx context.Context, studentID uuid.UUID, status attendance.Status, note *string) (attendance.Event, error) {
	return s.record(ctx, studentID, status, note, nil)
}

// RecordDeviceStatusChange records a change captured by a kiosk. deviceID is stored as the
// event's source record.
func (s *Session) RecordDeviceStatusChange(ctx context.Context, studentID uuid.UUID, status attendance.Status, note *string, deviceID string) (attendance.Event, error) {
	if deviceID == "" {
		return attendance.Event{}, dailystatuserrors.ErrInvalidDeviceID
	}
	return s.record(ctx, studentID, status, note, &deviceID)
}

func (s *Session) record(ctx context.Context, studentID uuid.UUID, status attendance.Status, note, source *string) (attendance.Event, error) {
	if !status.Valid() {
		return attendance.Event{}, dailystatuserrors.ErrInvalidStatus
	}
	if studentID == uuid.Nil {
		return attendance.Event{}, dailystatuserrors.ErrInvalidStudentID
	}

	s.mu.RLock()
	disposed := s.disposed
	s.mu.RUnlock()
	if disposed {
		return attendance.Event{}, dailystatuserrors.ErrSessionClosed
	}

	logger := contextutil.GetLogger(ctx, s.logger)

	now := s.clock.Now()
	dayKey := s.clock.DayKey(now)
	date, err := attendance.DateColumn(dayKey)
	if err != nil {
		return attendance.Event{}, apperror.WithCause(dailystatuserrors.ErrPersistFailed, err)
	}

	e := attendance.Event{
		StudentID:      studentID,
		Status:         status,
		OccurredAt:     now,
		AttendanceDate: date,
		Notes:          note,
		SourceRecordID: source,
	}
	if tid, err := uuid.Parse(s.tenantID); err == nil {
		e.TenantID = tid
	}
	stamp := timeofday.From(now)
	if status.StampsCheckIn() {
		e.CheckInTime = timeofday.Ptr(stamp)
	}
	if status.StampsCheckOut() {
		e.CheckOutTime = timeofday.Ptr(stamp)
	}

	res, err := s.source.AppendEvent(ctx, s.tenantID, e)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
			return attendance.Event{}, err
		}
		logger.Error("attendance persist failed, board unchanged",
			zap.String("student_id", studentID.String()),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return attendance.Event{}, apperror.WithCause(dailystatuserrors.ErrPersistFailed, err)
	}
	e.ID = res.ID
	if !res.OccurredAt.IsZero() {
		e.OccurredAt = res.OccurredAt
	}

	s.mu.Lock()
	if s.disposed || s.dayKey != dayKey {
		current := s.dayKey
		s.mu.Unlock()
		logger.Debug("recorded event is not for the selected day, board unchanged",
			zap.String("event_date", dayKey),
			zap.String("selected_date", current),
		)
		return e, nil
	}

	if !foldEvent(s.statuses, e) {
		s.mu.Unlock()
		return e, nil
	}
	s.recorded = append(s.recorded, cloneEvent(e))
	snap, listeners := s.publishLocked()
	s.mu.Unlock()

	logger.Info("attendance status recorded",
		zap.String("student_id", studentID.String()),
		zap.String("status", string(status)),
		zap.String("event_id", e.ID.String()),
	)
	notify(listeners, snap)
	return e, nil
}

// Done is closed once the session is disposed.
func (s *Session) Done() <-chan struct{} {
	return s.baseCtx.Done()
}

func (s *Session) DayKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dayKey
}

// StatusMap returns a deep copy; callers may modify it freely.
func (s *Session) StatusMap() map[uuid.UUID]attendance.StudentDailyStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStatusMap(s.statuses)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// OnStatusMapChanged registers fn for every later change. The returned func unsubscribes
// and is safe to call more than once.
func (s *Session) OnStatusMapChanged(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return func() {}
	}
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		TenantID: s.tenantID,
		DayKey:   s.dayKey,
		Version:  s.version,
		Degraded: s.degraded,
		Statuses: cloneStatusMap(s.statuses),
	}
}

// publishLocked bumps the version and returns what must be delivered once mu is released.
func (s *Session) publishLocked() (Snapshot, []Listener) {
	s.version++
	if len(s.listeners) == 0 {
		return Snapshot{}, nil
	}
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return s.snapshotLocked(), listeners
}

// foldEvent appends e to its student's history in m and re-aggregates that student.
// It reports false when m already holds an event with the same ID.
func foldEvent(m map[uuid.UUID]attendance.StudentDailyStatus, e attendance.Event) bool {
	prev := m[e.StudentID]
	history := make([]attendance.Event, 0, len(prev.History)+1)
	for _, h := range prev.History {
		if h.ID == e.ID {
			return false
		}
		history = append(history, h)
	}
	history = append(history, cloneEvent(e))
	m[e.StudentID] = attendance.AggregateStudent(e.StudentID, history)
	return true
}

// notify gives every listener its own copy.
func notify(listeners []Listener, snap Snapshot) {
	for i, l := range listeners {
		c := snap
		if i < len(listeners)-1 {
			c.Statuses = cloneStatusMap(snap.Statuses)
		}
		l(c)
	}
}
