package attendance

import (
	"time"

	"go-academy/internal/shared/timeofday"
)

type DailyQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type MonthlyQuery struct {
	YearMonth string `form:"year_month" binding:"required,datetime=2006-01"`
}

type StatsQuery struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
	LectureID string `form:"lecture_id" binding:"omitempty,uuid"`
}

type KioskLookupRequest struct {
	AttendanceNumber string `json:"attendance_number" binding:"required,numeric,len=4"`
}

type DeviceRecordsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type KioskStudentResponse struct {
	StudentID        string `json:"student_id"`
	Name             string `json:"name"`
	AttendanceNumber string `json:"attendance_number"`
}

type HistoryQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type EventResponse struct {
	ID             string  `json:"id"`
	TenantID       string  `json:"tenant_id"`
	StudentID      string  `json:"student_id"`
	StudentName    string  `json:"student_name,omitempty"`
	LectureID      *string `json:"lecture_id,omitempty"`
	AttendanceDate string  `json:"attendance_date"`
	Status         Status  `json:"status"`
	StatusLabel    string  `json:"status_label"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	SourceRecordID *string `json:"source_record_id,omitempty"`
	OccurredAt     string  `json:"occurred_at"`
}

type DailyStatusResponse struct {
	StudentID        string          `json:"student_id"`
	CurrentStatus    Status          `json:"current_status"`
	StatusLabel      string          `json:"status_label"`
	FirstCheckInTime *string         `json:"first_check_in_time"`
	LastCheckOutTime *string         `json:"last_check_out_time"`
	LastUpdate       *string         `json:"last_update"`
	History          []EventResponse `json:"history"`
}

type MonthlyResponse struct {
	YearMonth     string           `json:"year_month"`
	Students      []MonthlyStudent `json:"students"`
	TotalStudents int              `json:"total_students"`
}

type StatsPeriod struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	StudentID *string `json:"student_id,omitempty"`
	LectureID *string `json:"lecture_id,omitempty"`
}

type StatsResponse struct {
	StudentStats []StudentStats `json:"student_stats"`
	Overall      OverallStats   `json:"overall_stats"`
	Period       StatsPeriod    `json:"period"`
}

type StudentHistoryResponse struct {
	StudentID   string          `json:"student_id"`
	StudentName string          `json:"student_name"`
	Attendance  []EventResponse `json:"attendance"`
}

func formatTime(t *timeofday.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	v := t.String()
	return &v
}

func MapEvent(e Event) EventResponse {
	resp := EventResponse{
		ID:             e.ID.String(),
		TenantID:       e.TenantID.String(),
		StudentID:      e.StudentID.String(),
		AttendanceDate: e.DayKey(),
		Status:         e.Status,
		StatusLabel:    e.Status.Label(),
		CheckInTime:    formatTime(e.CheckInTime),
		CheckOutTime:   formatTime(e.CheckOutTime),
		Notes:          e.Notes,
		SourceRecordID: e.SourceRecordID,
		OccurredAt:     e.OccurredAt.Format(time.RFC3339),
	}
	if e.Student != nil {
		resp.StudentName = e.Student.Name
	}
	if e.LectureID != nil {
		v := e.LectureID.String()
		resp.LectureID = &v
	}
	return resp
}

func MapEvents(events []Event) []EventResponse {
	res := make([]EventResponse, len(events))
	for i, e := range events {
		res[i] = MapEvent(e)
	}
	return res
}

// MapDailyStatus renders LastUpdate in loc so boards show the academy's wall clock.
func MapDailyStatus(s StudentDailyStatus, loc *time.Location) DailyStatusResponse {
	resp := DailyStatusResponse{
		StudentID:        s.StudentID.String(),
		CurrentStatus:    s.CurrentStatus,
		StatusLabel:      s.CurrentStatus.Label(),
		FirstCheckInTime: formatTime(s.FirstCheckInTime),
		LastCheckOutTime: formatTime(s.LastCheckOutTime),
		History:          MapEvents(s.History),
	}
	if s.LastUpdate != nil {
		v := s.LastUpdate.In(loc).Format(time.RFC3339)
		resp.LastUpdate = &v
	}
	return resp
}
