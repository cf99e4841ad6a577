package dailystatus

import (
	"sort"
	"time"

	"go-academy/internal/attendance"
)

type BoardQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type RecordStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes" binding:"omitempty,max=500"`
}

type KioskRecordRequest struct {
	StudentID string  `json:"student_id" binding:"required,uuid"`
	Status    string  `json:"status" binding:"required"`
	DeviceID  string  `json:"device_id" binding:"required,max=100"`
	Comment   *string `json:"comment" binding:"omitempty,max=500"`
}

type BoardResponse struct {
	Date          string                           `json:"date"`
	Version       uint64                           `json:"version"`
	Degraded      bool                             `json:"degraded"`
	TotalStudents int                              `json:"total_students"`
	Summary       map[attendance.Status]int        `json:"summary"`
	Students      []attendance.DailyStatusResponse `json:"students"`
	GeneratedAt   string                           `json:"generated_at,omitempty"`
}

type RecordStatusResponse struct {
	Event   attendance.EventResponse        `json:"event"`
	Student *attendance.DailyStatusResponse `json:"student,omitempty"`
}

// MapSnapshot renders a board with students ordered by ID so repeated renders are stable.
func MapSnapshot(s Snapshot, loc *time.Location) BoardResponse {
	if loc == nil {
		loc = time.UTC
	}
	resp := BoardResponse{
		Date:          s.DayKey,
		Version:       s.Version,
		Degraded:      s.Degraded,
		TotalStudents: len(s.Statuses),
		Summary:       make(map[attendance.Status]int),
		Students:      make([]attendance.DailyStatusResponse, 0, len(s.Statuses)),
	}
	for _, st := range s.Statuses {
		resp.Summary[st.CurrentStatus]++
		resp.Students = append(resp.Students, attendance.MapDailyStatus(st, loc))
	}
	sort.Slice(resp.Students, func(i, j int) bool {
		return resp.Students[i].StudentID < resp.Students[j].StudentID
	})
	return resp
}
