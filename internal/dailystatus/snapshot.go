package dailystatus

import (
	"context"

	"go-academy/internal/attendance"

	"github.com/google/uuid"
)

// Snapshot is a deep copy of one tenant's board at a point in time. Version increases with
// every change applied by a Session, so listeners can drop out-of-order deliveries.
type Snapshot struct {
	TenantID string
	DayKey   string
	Version  uint64
	Degraded bool
	Statuses map[uuid.UUID]attendance.StudentDailyStatus
}

// BuildStatusMap aggregates a day's events and fills every roster student without events
// with an absent status.
func BuildStatusMap(events []attendance.Event, roster []uuid.UUID) map[uuid.UUID]attendance.StudentDailyStatus {
	out := attendance.Aggregate(events)
	for _, id := range roster {
		if _, ok := out[id]; !ok {
			out[id] = attendance.AbsentStatus(id)
		}
	}
	return out
}

// Compute builds a board for any day straight from the store. Unlike Session.LoadDay it
// reports fetch failures to the caller.
func Compute(ctx context.Context, source EventSource, roster Roster, tenantID, dayKey string) (Snapshot, error) {
	ids, err := roster.ListStudentIDs(ctx, tenantID)
	if err != nil {
		return Snapshot{}, err
	}
	events, err := source.FetchEvents(ctx, tenantID, dayKey)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		TenantID: tenantID,
		DayKey:   dayKey,
		Statuses: BuildStatusMap(events, ids),
	}, nil
}

func cloneStatusMap(in map[uuid.UUID]attendance.StudentDailyStatus) map[uuid.UUID]attendance.StudentDailyStatus {
	out := make(map[uuid.UUID]attendance.StudentDailyStatus, len(in))
	for id, st := range in {
		out[id] = cloneStatus(st)
	}
	return out
}

func cloneStatus(st attendance.StudentDailyStatus) attendance.StudentDailyStatus {
	out := st
	if st.FirstCheckInTime != nil {
		v := *st.FirstCheckInTime
		out.FirstCheckInTime = &v
	}
	if st.LastCheckOutTime != nil {
		v := *st.LastCheckOutTime
		out.LastCheckOutTime = &v
	}
	if st.LastUpdate != nil {
		v := *st.LastUpdate
		out.LastUpdate = &v
	}
	out.History = make([]attendance.Event, len(st.History))
	for i, e := range st.History {
		out.History[i] = cloneEvent(e)
	}
	return out
}

func cloneEvent(e attendance.Event) attendance.Event {
	out := e
	if e.LectureID != nil {
		v := *e.LectureID
		out.LectureID = &v
	}
	if e.CheckInTime != nil {
		v := *e.CheckInTime
		out.CheckInTime = &v
	}
	if e.CheckOutTime != nil {
		v := *e.CheckOutTime
		out.CheckOutTime = &v
	}
	if e.Notes != nil {
		v := *e.Notes
		out.Notes = &v
	}
	if e.SourceRecordID != nil {
		v := *e.SourceRecordID
		out.SourceRecordID = &v
	}
	if e.Student != nil {
		v := *e.Student
		if e.Student.StudentNumber != nil {
			n := *e.Student.StudentNumber
			v.StudentNumber = &n
		}
		out.Student = &v
	}
	return out
}
