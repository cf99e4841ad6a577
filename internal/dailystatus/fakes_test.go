package dailystatus_test

import (
	"context"
	"sync"
	"time"

	"go-academy/internal/attendance"
	"go-academy/internal/shared/clock"
	"go-academy/internal/shared/timeofday"

	"github.com/google/uuid"
)

var seoul = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		panic(err)
	}
	return loc
}()

type fakeClock struct {
	mu        sync.Mutex
	now       time.Time
	callback  func(string)
	cancelled bool
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.In(seoul)
}

func (c *fakeClock) Today() string {
	return c.DayKey(c.Now())
}

func (c *fakeClock) DayKey(t time.Time) string {
	return t.In(seoul).Format(clock.DayKeyLayout)
}

func (c *fakeClock) ScheduleNextRollover(callback func(string)) clock.CancelFunc {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callback = callback
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.cancelled = true
	}
}

func (c *fakeClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// midnight moves the clock to t and fires the rollover callback as the timer would.
func (c *fakeClock) midnight(t time.Time) {
	c.set(t)
	c.mu.Lock()
	cb, cancelled := c.callback, c.cancelled
	c.mu.Unlock()
	if cb != nil && !cancelled {
		cb(c.Today())
	}
}

func (c *fakeClock) isCancelled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancelled
}

// fakeStore is an in-memory EventSource and Roster. FetchEvents for a gated day blocks
// until the gate is closed. With readFirst set it reads the rows before blocking, the way
// a query sees only what was committed when it started.
type fakeStore struct {
	mu          sync.Mutex
	roster      []uuid.UUID
	rosterErr   error
	events      map[string][]attendance.Event
	fetchErr    error
	appendErr   error
	gates       map[string]chan struct{}
	entered     chan string
	onAppend    func()
	readFirst   bool
	rosterCalls int
}

func newFakeStore(roster ...uuid.UUID) *fakeStore {
	return &fakeStore{
		roster:  roster,
		events:  make(map[string][]attendance.Event),
		gates:   make(map[string]chan struct{}),
		entered: make(chan string, 16),
	}
}

func (f *fakeStore) gate(day string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[day] = ch
	return ch
}

func (f *fakeStore) seed(day string, events ...attendance.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[day] = append(f.events[day], events...)
}

func (f *fakeStore) setAppendErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appendErr = err
}

func (f *fakeStore) setFetchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchErr = err
}

func (f *fakeStore) ListStudentIDs(ctx context.Context, tenantID string) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rosterCalls++
	if f.rosterErr != nil {
		return nil, f.rosterErr
	}
	return append([]uuid.UUID(nil), f.roster...), nil
}

func (f *fakeStore) FetchEvents(ctx context.Context, tenantID, dayKey string) ([]attendance.Event, error) {
	f.mu.Lock()
	gate := f.gates[dayKey]
	readFirst := f.readFirst
	rows := append([]attendance.Event(nil), f.events[dayKey]...)
	f.mu.Unlock()

	select {
	case f.entered <- dayKey:
	default:
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if readFirst {
		return rows, nil
	}
	return append([]attendance.Event(nil), f.events[dayKey]...), nil
}

func (f *fakeStore) setReadFirst(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readFirst = v
}

func (f *fakeStore) AppendEvent(ctx context.Context, tenantID string, e attendance.Event) (attendance.AppendResult, error) {
	f.mu.Lock()
	hook := f.onAppend
	f.mu.Unlock()
	if hook != nil {
		hook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return attendance.AppendResult{}, f.appendErr
	}
	e.ID = uuid.New()
	f.events[e.DayKey()] = append(f.events[e.DayKey()], e)
	return attendance.AppendResult{ID: e.ID, OccurredAt: e.OccurredAt}, nil
}

func (f *fakeStore) appendedOn(day string) []attendance.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]attendance.Event(nil), f.events[day]...)
}

func (f *fakeStore) drainEntered() {
	for {
		select {
		case <-f.entered:
		default:
			return
		}
	}
}

func event(studentID uuid.UUID, status attendance.Status, at time.Time) attendance.Event {
	at = at.In(seoul)
	date, _ := attendance.DateColumn(at.Format(clock.DayKeyLayout))
	e := attendance.Event{
		ID:             uuid.New(),
		StudentID:      studentID,
		Status:         status,
		OccurredAt:     at,
		AttendanceDate: date,
	}
	stamp := timeofday.From(at)
	if status.StampsCheckIn() {
		e.CheckInTime = timeofday.Ptr(stamp)
	}
	if status.StampsCheckOut() {
		e.CheckOutTime = timeofday.Ptr(stamp)
	}
	return e
}
