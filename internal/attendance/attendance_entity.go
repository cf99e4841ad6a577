package attendance

import (
	"time"

	"go-academy/internal/shared/timeofday"

	"github.com/google/uuid"
)

// Event is one append-only attendance row. Rows are never updated or deleted here.
type Event struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;primaryKey"`
	TenantID       uuid.UUID            `gorm:"column:tenant_id;type:uuid;not null;index:idx_attendance_tenant_date"`
	StudentID      uuid.UUID            `gorm:"column:student_id;type:uuid;not null;index"`
	LectureID      *uuid.UUID           `gorm:"column:lecture_id;type:uuid"`
	AttendanceDate time.Time            `gorm:"column:attendance_date;type:date;not null;index:idx_attendance_tenant_date"`
	Status         Status               `gorm:"column:status;type:varchar(20);not null"`
	OccurredAt     time.Time            `gorm:"column:created_at;not null"`
	CheckInTime    *timeofday.TimeOfDay `gorm:"column:check_in_time;type:time"`
	CheckOutTime   *timeofday.TimeOfDay `gorm:"column:check_out_time;type:time"`
	Notes          *string              `gorm:"column:notes;type:text"`
	// SourceRecordID is the kiosk device that captured the event; nil for staff entries.
	SourceRecordID *string              `gorm:"column:source_record_id;type:varchar(100)"`
	Student        *StudentRef          `gorm:"foreignKey:StudentID;references:ID"`
}

func (Event) TableName() string {
	return "attendance"
}

// DayKey renders AttendanceDate as YYYY-MM-DD. The column is a civil date, so no zone conversion applies.
func (e Event) DayKey() string {
	return e.AttendanceDate.Format("2006-01-02")
}

type StudentRef struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID `gorm:"column:tenant_id;type:uuid"`
	Name             string    `gorm:"column:name"`
	StudentNumber    *string   `gorm:"column:student_number"`
	AttendanceNumber *string   `gorm:"column:attendance_number"`
	IsActive         bool      `gorm:"column:is_active"`
}

func (StudentRef) TableName() string {
	return "students"
}

type AppendResult struct {
	ID         uuid.UUID
	OccurredAt time.Time
}

// DateColumn converts a day key to the value stored in the date column.
func DateColumn(dayKey string) (time.Time, error) {
	return time.Parse("2006-01-02", dayKey)
}
