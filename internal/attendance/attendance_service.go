package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	attendanceerrors "go-academy/internal/attendance/errors"
	"go-academy/internal/events"
	"go-academy/internal/messaging/kafka"
	"go-academy/internal/shared/clock"
	"go-academy/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	FetchEvents(ctx context.Context, tenantID, dayKey string) ([]Event, error)
	AppendEvent(ctx context.Context, tenantID string, e Event) (AppendResult, error)
	ListStudentIDs(ctx context.Context, tenantID string) ([]uuid.UUID, error)
	GetDaily(ctx context.Context, tenantID, dayKey string) ([]EventResponse, error)
	GetMonthly(ctx context.Context, tenantID string, q MonthlyQuery) (MonthlyResponse, error)
	GetStats(ctx context.Context, tenantID string, q StatsQuery) (StatsResponse, error)
	GetStudentHistory(ctx context.Context, tenantID, studentID string, q HistoryQuery) (StudentHistoryResponse, error)
	LookupByAttendanceNumber(ctx context.Context, tenantID, number string) (KioskStudentResponse, error)
	GetDeviceRecords(ctx context.Context, tenantID, studentID string, limit int) ([]EventResponse, error)
}

const defaultDeviceRecordLimit = 10

var attendanceNumberPattern = regexp.MustCompile(`^[0-9]{4}$`)

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	clock  *clock.Clock
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, clk *clock.Clock, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, clk, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	clk *clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if clk == nil {
		clk = clock.New(nil)
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		clock:  clk,
		logger: l,
	}
}

func parseTenant(tenantID string) (uuid.UUID, error) {
	id, err := uuid.Parse(tenantID)
	if err != nil {
		return uuid.Nil, attendanceerrors.ErrInvalidTenantID
	}
	return id, nil
}

func parseDay(dayKey string) (time.Time, error) {
	d, err := DateColumn(dayKey)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDate
	}
	return d, nil
}

func (s *service) FetchEvents(ctx context.Context, tenantID, dayKey string) ([]Event, error) {
	if _, err := parseTenant(tenantID); err != nil {
		return nil, err
	}
	date, err := parseDay(dayKey)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByTenantAndDate(ctx, tenantID, date)
	if err != nil {
		s.logger.Error("fetch attendance events failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("tenant_id", tenantID),
			zap.String("date", dayKey),
			zap.Error(err),
		)
		return nil, err
	}
	return rows, nil
}

// AppendEvent inserts the event and its outbox message in one transaction. A zero
// OccurredAt is set to now and a zero AttendanceDate is derived from OccurredAt.
func (s *service) AppendEvent(ctx context.Context, tenantID string, e Event) (AppendResult, error) {
	rid := contextutil.GetRequestID(ctx)

	tid, err := parseTenant(tenantID)
	if err != nil {
		return AppendResult{}, err
	}
	if e.StudentID == uuid.Nil {
		return AppendResult{}, attendanceerrors.ErrInvalidStudentID
	}
	if !e.Status.Valid() {
		return AppendResult{}, attendanceerrors.ErrInvalidStatus
	}

	if e.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return AppendResult{}, err
		}
		e.ID = id
	}
	e.TenantID = tid
	if e.OccurredAt.IsZero() {
		e.OccurredAt = s.clock.Now()
	}
	if e.AttendanceDate.IsZero() {
		e.AttendanceDate, _ = DateColumn(s.clock.DayKey(e.OccurredAt))
	}
	e.Student = nil

	s.logger.Debug("append attendance event requested",
		zap.String("request_id", rid),
		zap.String("tenant_id", tenantID),
		zap.String("student_id", e.StudentID.String()),
		zap.String("status", string(e.Status)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("append attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AppendResult{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, &e); err != nil {
		s.logger.Error("append attendance persist failed",
			zap.String("request_id", rid),
			zap.String("student_id", e.StudentID.String()),
			zap.Error(err),
		)
		return AppendResult{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.AttendanceRecordedEvent{
			EventType:      events.AttendanceRecordedEventType,
			RequestID:      rid,
			TenantID:       tenantID,
			StudentID:      e.StudentID.String(),
			EventID:        e.ID.String(),
			Status:         string(e.Status),
			AttendanceDate: e.DayKey(),
			OccurredAt:     e.OccurredAt.UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return AppendResult{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "attendance",
			AggregateID:   e.StudentID.String(),
			EventType:     event.EventType,
			Topic:         events.AttendanceRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("append attendance outbox persist failed",
				zap.String("event_id", e.ID.String()),
				zap.Error(err),
			)
			return AppendResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return AppendResult{}, err
	}

	s.logger.Info("append attendance success",
		zap.String("request_id", rid),
		zap.String("event_id", e.ID.String()),
		zap.String("status", string(e.Status)),
	)
	return AppendResult{ID: e.ID, OccurredAt: e.OccurredAt}, nil
}

func (s *service) ListStudentIDs(ctx context.Context, tenantID string) ([]uuid.UUID, error) {
	if _, err := parseTenant(tenantID); err != nil {
		return nil, err
	}
	students, err := s.repo.FindStudents(ctx, tenantID, true, "")
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(students))
	for i, st := range students {
		ids[i] = st.ID
	}
	return ids, nil
}

func (s *service) GetDaily(ctx context.Context, tenantID, dayKey string) ([]EventResponse, error) {
	if dayKey == "" {
		dayKey = s.clock.Today()
	}
	rows, err := s.FetchEvents(ctx, tenantID, dayKey)
	if err != nil {
		return nil, err
	}
	newest := make([]Event, len(rows))
	for i, e := range rows {
		newest[len(rows)-1-i] = e
	}
	return MapEvents(newest), nil
}

func (s *service) GetMonthly(ctx context.Context, tenantID string, q MonthlyQuery) (MonthlyResponse, error) {
	if _, err := parseTenant(tenantID); err != nil {
		return MonthlyResponse{}, err
	}
	start, err := time.Parse("2006-01", q.YearMonth)
	if err != nil {
		return MonthlyResponse{}, attendanceerrors.ErrInvalidYearMonth
	}
	end := start.AddDate(0, 1, -1)

	students, err := s.repo.FindStudents(ctx, tenantID, true, "")
	if err != nil {
		return MonthlyResponse{}, err
	}
	rows, err := s.repo.FindByTenantAndRange(ctx, tenantID, start, end, RangeFilter{})
	if err != nil {
		return MonthlyResponse{}, err
	}

	return MonthlyResponse{
		YearMonth:     q.YearMonth,
		Students:      BuildMonthly(students, rows),
		TotalStudents: len(students),
	}, nil
}

func (s *service) GetStats(ctx context.Context, tenantID string, q StatsQuery) (StatsResponse, error) {
	if _, err := parseTenant(tenantID); err != nil {
		return StatsResponse{}, err
	}
	start, err := parseDay(q.StartDate)
	if err != nil {
		return StatsResponse{}, err
	}
	end, err := parseDay(q.EndDate)
	if err != nil {
		return StatsResponse{}, err
	}
	if start.After(end) {
		return StatsResponse{}, attendanceerrors.ErrInvalidDateRange
	}
	if q.StudentID != "" {
		if _, err := uuid.Parse(q.StudentID); err != nil {
			return StatsResponse{}, attendanceerrors.ErrInvalidStudentID
		}
	}
	if q.LectureID != "" {
		if _, err := uuid.Parse(q.LectureID); err != nil {
			return StatsResponse{}, attendanceerrors.ErrInvalidLectureID
		}
	}

	students, err := s.repo.FindStudents(ctx, tenantID, false, q.StudentID)
	if err != nil {
		return StatsResponse{}, err
	}
	rows, err := s.repo.FindByTenantAndRange(ctx, tenantID, start, end, RangeFilter{
		StudentID: q.StudentID,
		LectureID: q.LectureID,
	})
	if err != nil {
		return StatsResponse{}, err
	}

	stats, overall := BuildStats(students, rows)
	period := StatsPeriod{StartDate: q.StartDate, EndDate: q.EndDate}
	if q.StudentID != "" {
		period.StudentID = &q.StudentID
	}
	if q.LectureID != "" {
		period.LectureID = &q.LectureID
	}
	return StatsResponse{StudentStats: stats, Overall: overall, Period: period}, nil
}

func (s *service) GetStudentHistory(ctx context.Context, tenantID, studentID string, q HistoryQuery) (StudentHistoryResponse, error) {
	if _, err := parseTenant(tenantID); err != nil {
		return StudentHistoryResponse{}, err
	}
	if _, err := uuid.Parse(studentID); err != nil {
		return StudentHistoryResponse{}, attendanceerrors.ErrInvalidStudentID
	}

	var start, end *time.Time
	if q.StartDate != "" && q.EndDate != "" {
		sd, err := parseDay(q.StartDate)
		if err != nil {
			return StudentHistoryResponse{}, err
		}
		ed, err := parseDay(q.EndDate)
		if err != nil {
			return StudentHistoryResponse{}, err
		}
		if sd.After(ed) {
			return StudentHistoryResponse{}, attendanceerrors.ErrInvalidDateRange
		}
		start, end = &sd, &ed
	}

	student, err := s.repo.FindStudent(ctx, tenantID, studentID)
	if err != nil {
		return StudentHistoryResponse{}, mapRepositoryError(err)
	}
	rows, err := s.repo.FindByStudent(ctx, tenantID, studentID, start, end)
	if err != nil {
		return StudentHistoryResponse{}, err
	}

	return StudentHistoryResponse{
		StudentID:   student.ID.String(),
		StudentName: student.Name,
		Attendance:  MapEvents(rows),
	}, nil
}

// LookupByAttendanceNumber resolves the 4-digit number a student types at the kiosk.
func (s *service) LookupByAttendanceNumber(ctx context.Context, tenantID, number string) (KioskStudentResponse, error) {
	if _, err := parseTenant(tenantID); err != nil {
		return KioskStudentResponse{}, err
	}
	if !attendanceNumberPattern.MatchString(number) {
		return KioskStudentResponse{}, attendanceerrors.ErrInvalidAttendanceNumber
	}

	student, err := s.repo.FindStudentByAttendanceNumber(ctx, tenantID, number)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KioskStudentResponse{}, attendanceerrors.ErrAttendanceNumberNotFound
	}
	if err != nil {
		s.logger.Error("lookup attendance number failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
		return KioskStudentResponse{}, err
	}

	return KioskStudentResponse{
		StudentID:        student.ID.String(),
		Name:             student.Name,
		AttendanceNumber: number,
	}, nil
}

func (s *service) GetDeviceRecords(ctx context.Context, tenantID, studentID string, limit int) ([]EventResponse, error) {
	if _, err := parseTenant(tenantID); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(studentID); err != nil {
		return nil, attendanceerrors.ErrInvalidStudentID
	}
	if limit <= 0 {
		limit = defaultDeviceRecordLimit
	}

	rows, err := s.repo.FindRecentBySource(ctx, tenantID, studentID, limit)
	if err != nil {
		return nil, err
	}
	return MapEvents(rows), nil
}
