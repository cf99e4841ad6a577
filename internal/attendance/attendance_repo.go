package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-academy/internal/shared/connection"
	"go-academy/internal/tenant"

	"gorm.io/gorm"
)

type RangeFilter struct {
	StudentID string
	LectureID string
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Event) error
	FindByTenantAndDate(ctx context.Context, tenantID string, date time.Time) ([]Event, error)
	FindByTenantAndRange(ctx context.Context, tenantID string, start, end time.Time, filter RangeFilter) ([]Event, error)
	FindByStudent(ctx context.Context, tenantID, studentID string, start, end *time.Time) ([]Event, error)
	FindStudents(ctx context.Context, tenantID string, activeOnly bool, studentID string) ([]StudentRef, error)
	FindStudent(ctx context.Context, tenantID, studentID string) (*StudentRef, error)
	FindStudentByAttendanceNumber(ctx context.Context, tenantID, number string) (*StudentRef, error)
	FindRecentBySource(ctx context.Context, tenantID, studentID string, limit int) ([]Event, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.conn(ctx).Omit("Student").Create(e).Error
}

// FindByTenantAndDate returns the day in insertion order. Event IDs are time-ordered, so
// they break ties between equal created_at values.
func (r *repository) FindByTenantAndDate(ctx context.Context, tenantID string, date time.Time) ([]Event, error) {
	var rows []Event
	err := r.conn(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		Preload("Student").
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByTenantAndRange(ctx context.Context, tenantID string, start, end time.Time, filter RangeFilter) ([]Event, error) {
	q := r.conn(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("attendance_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02"))
	if filter.StudentID != "" {
		q = q.Where("student_id = ?", filter.StudentID)
	}
	if filter.LectureID != "" {
		q = q.Where("lecture_id = ?", filter.LectureID)
	}

	var rows []Event
	err := q.Order("attendance_date ASC, created_at ASC, id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStudent(ctx context.Context, tenantID, studentID string, start, end *time.Time) ([]Event, error) {
	q := r.conn(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("student_id = ?", studentID)
	if start != nil && end != nil {
		q = q.Where("attendance_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	var rows []Event
	err := q.Order("attendance_date DESC, created_at DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindStudents(ctx context.Context, tenantID string, activeOnly bool, studentID string) ([]StudentRef, error) {
	q := r.conn(ctx).Scopes(tenant.Scope(tenantID))
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if studentID != "" {
		q = q.Where("id = ?", studentID)
	}

	var rows []StudentRef
	err := q.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindStudent(ctx context.Context, tenantID, studentID string) (*StudentRef, error) {
	var s StudentRef
	err := r.conn(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("id = ?", studentID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindStudentByAttendanceNumber matches active students only.
func (r *repository) FindStudentByAttendanceNumber(ctx context.Context, tenantID, number string) (*StudentRef, error) {
	var s StudentRef
	err := r.conn(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("attendance_number = ?", number).
		Where("is_active = ?", true).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindRecentBySource returns the student's kiosk-captured events, newest first.
func (r *repository) FindRecentBySource(ctx context.Context, tenantID, studentID string, limit int) ([]Event, error) {
	var rows []Event
	err := r.conn(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("student_id = ?", studentID).
		Where("source_record_id IS NOT NULL").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
