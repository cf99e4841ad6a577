package attendance

import (
	"errors"

	attendanceerrors "go-academy/internal/attendance/errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgForeignKeyViolation  = "23503"
	mysqlNoReferencedRow   = 1452
	fkAttendanceStudentRef = "fk_attendance_student"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrStudentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		if pgErr.ConstraintName == "" || pgErr.ConstraintName == fkAttendanceStudentRef {
			return attendanceerrors.ErrStudentNotFound
		}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlNoReferencedRow {
		return attendanceerrors.ErrStudentNotFound
	}

	return err
}
