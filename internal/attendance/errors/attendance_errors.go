package attendanceerrors

import (
	"go-academy/internal/shared/apperror"
	"net/http"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
	ErrInvalidTenantID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid tenant ID",
		http.StatusBadRequest,
	)
	ErrInvalidStudentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid student ID",
		http.StatusBadRequest,
	)
	ErrInvalidLectureID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid lecture ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidYearMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid year_month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must not be after end_date",
		http.StatusBadRequest,
	)
	ErrInvalidAttendanceNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Attendance number must be 4 digits",
		http.StatusBadRequest,
	)
	ErrAttendanceNumberNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance number is not registered",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown attendance status",
		http.StatusBadRequest,
	)
)
