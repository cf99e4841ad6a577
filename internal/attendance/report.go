package attendance

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// MonthlyDay is the board cell for one student and one day of the month.
type MonthlyDay struct {
	In     *string `json:"in"`
	Out    *string `json:"out"`
	Status *Status `json:"status"`
}

type MonthlyStudent struct {
	StudentID     string             `json:"student_id"`
	StudentName   string             `json:"student_name"`
	StudentNumber *string            `json:"student_number,omitempty"`
	Daily         map[int]MonthlyDay `json:"daily"`
	TotalDays     int                `json:"total_days"`
}

type StudentStats struct {
	StudentID      string  `json:"student_id"`
	StudentName    string  `json:"student_name"`
	StudentNumber  *string `json:"student_number,omitempty"`
	PresentDays    int     `json:"present_days"`
	LateDays       int     `json:"late_days"`
	EarlyLeaveDays int     `json:"early_leave_days"`
	AbsentDays     int     `json:"absent_days"`
	TotalDays      int     `json:"total_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type OverallStats struct {
	TotalStudents   int `json:"total_students"`
	TotalPresent    int `json:"total_present"`
	TotalLate       int `json:"total_late"`
	TotalEarlyLeave int `json:"total_early_leave"`
	TotalAbsent     int `json:"total_absent"`
}

// groupByDay splits events by day key, each group sorted by occurrence.
func groupByDay(events []Event) map[string][]Event {
	raw := make(map[string][]Event)
	for _, e := range events {
		raw[e.DayKey()] = append(raw[e.DayKey()], e)
	}
	for k, v := range raw {
		raw[k] = sortedByOccurrence(v)
	}
	return raw
}

func groupByStudent(events []Event) map[uuid.UUID][]Event {
	out := make(map[uuid.UUID][]Event)
	for _, e := range events {
		out[e.StudentID] = append(out[e.StudentID], e)
	}
	return out
}

// BuildMonthly produces one row per student. Each day shows the first arrival and the last
// departure; the status is the departure's when there is one.
func BuildMonthly(students []StudentRef, events []Event) []MonthlyStudent {
	byStudent := groupByStudent(events)
	out := make([]MonthlyStudent, 0, len(students))

	for _, s := range students {
		days := groupByDay(byStudent[s.ID])
		row := MonthlyStudent{
			StudentID:     s.ID.String(),
			StudentName:   s.Name,
			StudentNumber: s.StudentNumber,
			Daily:         make(map[int]MonthlyDay, len(days)),
			TotalDays:     len(days),
		}

		for _, history := range days {
			var cell MonthlyDay
			arrival, hasArrival := firstArrival(history)
			departure, hasDeparture := lastDeparture(history)
			if hasArrival {
				in := arrival.CheckInTime.String()
				cell.In = &in
				st := arrival.Status
				cell.Status = &st
			}
			if hasDeparture {
				out := departure.CheckOutTime.String()
				cell.Out = &out
				st := departure.Status
				cell.Status = &st
			}
			row.Daily[history[0].AttendanceDate.Day()] = cell
		}
		out = append(out, row)
	}
	return out
}

// BuildStats counts days, not events, so a student who steps out and returns is still
// present once. A day is late when its first arrival was late and early-leave when its
// last departure was an early leave.
func BuildStats(students []StudentRef, events []Event) ([]StudentStats, OverallStats) {
	byStudent := groupByStudent(events)
	stats := make([]StudentStats, 0, len(students))
	var overall OverallStats

	for _, s := range students {
		row := StudentStats{
			StudentID:     s.ID.String(),
			StudentName:   s.Name,
			StudentNumber: s.StudentNumber,
		}

		for _, history := range groupByDay(byStudent[s.ID]) {
			row.TotalDays++
			status := AggregateStudent(s.ID, history)
			if arrival, ok := firstArrival(history); ok {
				row.PresentDays++
				if arrival.Status == StatusLate {
					row.LateDays++
				}
			}
			if departure, ok := lastDeparture(history); ok && departure.Status == StatusEarlyLeave {
				row.EarlyLeaveDays++
			}
			if status.CurrentStatus == StatusAbsent {
				row.AbsentDays++
			}
		}
		if row.TotalDays > 0 {
			rate := float64(row.PresentDays) / float64(row.TotalDays) * 100
			row.AttendanceRate = math.Round(rate*10) / 10
		}

		overall.TotalStudents++
		overall.TotalPresent += row.PresentDays
		overall.TotalLate += row.LateDays
		overall.TotalEarlyLeave += row.EarlyLeaveDays
		overall.TotalAbsent += row.AbsentDays
		stats = append(stats, row)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].StudentName < stats[j].StudentName
	})
	return stats, overall
}
