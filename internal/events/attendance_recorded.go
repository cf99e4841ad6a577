package events

import "time"

const AttendanceRecordedTopic = "academy.attendance.recorded.v1"

const AttendanceRecordedEventType = "attendance_recorded"

type AttendanceRecordedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	TenantID       string    `json:"tenant_id"`
	StudentID      string    `json:"student_id"`
	EventID        string    `json:"event_id"`
	Status         string    `json:"status"`
	AttendanceDate string    `json:"attendance_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}
