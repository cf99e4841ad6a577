package attendance

import (
	"sort"
	"time"

	"go-academy/internal/shared/timeofday"

	"github.com/google/uuid"
)

// StudentDailyStatus is the derived view of one student's day. It is rebuilt from events
// on every aggregation and never mutated in place.
type StudentDailyStatus struct {
	StudentID        uuid.UUID
	CurrentStatus    Status
	FirstCheckInTime *timeofday.TimeOfDay
	LastCheckOutTime *timeofday.TimeOfDay
	LastUpdate       *time.Time
	History          []Event
}

// AbsentStatus is the status of a student with no events today.
func AbsentStatus(studentID uuid.UUID) StudentDailyStatus {
	return StudentDailyStatus{
		StudentID:     studentID,
		CurrentStatus: StatusAbsent,
		History:       []Event{},
	}
}

// Aggregate groups one day's events by student and reduces each group. The input slice is
// not modified and its order does not matter beyond breaking ties between equal timestamps.
func Aggregate(events []Event) map[uuid.UUID]StudentDailyStatus {
	groups := make(map[uuid.UUID][]Event)
	for _, e := range events {
		groups[e.StudentID] = append(groups[e.StudentID], e)
	}

	out := make(map[uuid.UUID]StudentDailyStatus, len(groups))
	for id, group := range groups {
		out[id] = AggregateStudent(id, group)
	}
	return out
}

func AggregateStudent(studentID uuid.UUID, events []Event) StudentDailyStatus {
	if len(events) == 0 {
		return AbsentStatus(studentID)
	}

	history := sortedByOccurrence(events)
	last := history[len(history)-1]
	lastUpdate := last.OccurredAt

	st := StudentDailyStatus{
		StudentID:     studentID,
		CurrentStatus: last.Status,
		LastUpdate:    &lastUpdate,
		History:       history,
	}
	if e, ok := firstArrival(history); ok {
		st.FirstCheckInTime = copyTime(e.CheckInTime)
	}
	if e, ok := lastDeparture(history); ok {
		st.LastCheckOutTime = copyTime(e.CheckOutTime)
	}
	return st
}

func sortedByOccurrence(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out
}

// firstArrival expects history in ascending order. Arrivals without a check-in time are skipped.
func firstArrival(history []Event) (Event, bool) {
	for _, e := range history {
		if e.Status.IsArrival() && e.CheckInTime != nil {
			return e, true
		}
	}
	return Event{}, false
}

// lastDeparture expects history in ascending order and scans it from the end.
func lastDeparture(history []Event) (Event, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		e := history[i]
		if e.Status.IsDeparture() && e.CheckOutTime != nil {
			return e, true
		}
	}
	return Event{}, false
}

func copyTime(t *timeofday.TimeOfDay) *timeofday.TimeOfDay {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
