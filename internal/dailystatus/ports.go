package dailystatus

import (
	"context"
	"time"

	"go-academy/internal/attendance"
	"go-academy/internal/shared/clock"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=mock/ports_mock.go -package=mock

// EventSource is the store of record for attendance events. attendance.Service satisfies it.
type EventSource interface {
	FetchEvents(ctx context.Context, tenantID, dayKey string) ([]attendance.Event, error)
	AppendEvent(ctx context.Context, tenantID string, e attendance.Event) (attendance.AppendResult, error)
}

// Roster lists the active students of a tenant.
type Roster interface {
	ListStudentIDs(ctx context.Context, tenantID string) ([]uuid.UUID, error)
}

// DayClock answers "which day is it" in the academy's civil zone. *clock.Clock satisfies it.
type DayClock interface {
	Now() time.Time
	Today() string
	DayKey(t time.Time) string
	ScheduleNextRollover(callback func(dayKey string)) clock.CancelFunc
}
