package attendance

import (
	"errors"
	"testing"

	attendanceerrors "go-academy/internal/attendance/errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "record not found", in: gorm.ErrRecordNotFound, want: attendanceerrors.ErrStudentNotFound},
		{name: "postgres foreign key", in: &pgconn.PgError{Code: "23503", ConstraintName: "fk_attendance_student"}, want: attendanceerrors.ErrStudentNotFound},
		{name: "postgres other foreign key", in: &pgconn.PgError{Code: "23503", ConstraintName: "fk_attendance_lecture"}},
		{name: "mysql foreign key", in: &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, want: attendanceerrors.ErrStudentNotFound},
		{name: "passthrough", in: boom, want: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapRepositoryError(tt.in)
			if tt.want == nil && tt.in != nil {
				assert.Equal(t, tt.in, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
