package clock

import (
	"sync"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"
)

const (
	DefaultTimezone = "Asia/Seoul"
	DayKeyLayout    = "2006-01-02"

	// Upper bound for a single rollover wait. Monotonic timers do not advance while the
	// host is suspended, so the day is re-checked against the wall clock at least this often.
	defaultMaxWait = time.Hour
)

type CancelFunc func()

type Timer interface {
	Stop() bool
}

type AfterFunc func(d time.Duration, f func()) Timer

type Option func(*Clock)

func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

func WithAfterFunc(fn AfterFunc) Option {
	return func(c *Clock) { c.afterFunc = fn }
}

func WithMaxWait(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.maxWait = d
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Clock) {
		if logger != nil {
			c.logger = logger.Named("clock")
		}
	}
}

// Clock is the single source of truth for "which day is it" in the academy's civil timezone.
type Clock struct {
	loc       *time.Location
	now       func() time.Time
	afterFunc AfterFunc
	maxWait   time.Duration
	logger    *zap.Logger
}

func New(loc *time.Location, opts ...Option) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	c := &Clock{
		loc: loc,
		now: time.Now,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		maxWait: defaultMaxWait,
		logger:  zap.L().Named("clock"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load resolves an IANA zone name; an empty name means DefaultTimezone.
func Load(name string, opts ...Option) (*Clock, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return New(loc, opts...), nil
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Today() string {
	return c.DayKey(c.now())
}

func (c *Clock) DayKey(t time.Time) string {
	return t.In(c.loc).Format(DayKeyLayout)
}

// StartOfDay returns civil midnight of the given day key.
func (c *Clock) StartOfDay(dayKey string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, dayKey, c.loc)
}

func (c *Clock) UntilNextMidnight() time.Duration {
	now := c.Now()
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, c.loc)
	return next.Sub(now)
}

// ScheduleNextRollover calls callback with the new day key once per civil day, starting at the
// next midnight. The returned CancelFunc stops it and may be called more than once.
func (c *Clock) ScheduleNextRollover(callback func(dayKey string)) CancelFunc {
	r := &rollover{
		clock:    c,
		callback: callback,
		lastDay:  c.Today(),
	}
	r.arm()
	return r.cancel
}

type rollover struct {
	mu       sync.Mutex
	clock    *Clock
	callback func(dayKey string)
	lastDay  string
	timer    Timer
	stopped  bool
}

func (r *rollover) arm() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}

	wait := r.clock.UntilNextMidnight()
	if wait > r.clock.maxWait {
		wait = r.clock.maxWait
	}
	r.timer = r.clock.afterFunc(wait, r.fire)
}

func (r *rollover) fire() {
	today := r.clock.Today()

	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	changed := today != r.lastDay
	previous := r.lastDay
	r.lastDay = today
	r.mu.Unlock()

	if changed {
		r.clock.logger.Info("day rollover",
			zap.String("from", previous),
			zap.String("to", today),
		)
		r.callback(today)
	} else {
		r.clock.logger.Debug("rollover timer fired before midnight, re-arming",
			zap.String("day", today),
		)
	}

	r.arm()
}

func (r *rollover) cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
	}
}
