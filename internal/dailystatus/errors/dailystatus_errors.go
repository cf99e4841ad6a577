package dailystatuserrors

import (
	"go-academy/internal/shared/apperror"
	"net/http"
)

var (
	ErrPersistFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Attendance could not be saved, please retry",
		http.StatusServiceUnavailable,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown attendance status",
		http.StatusBadRequest,
	)
	ErrInvalidStudentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid student ID",
		http.StatusBadRequest,
	)
	ErrInvalidDeviceID = apperror.New(
		apperror.CodeInvalidInput,
		"Device ID is required",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrSessionClosed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Attendance board is shutting down",
		http.StatusServiceUnavailable,
	)
	ErrSnapshotNotFound = apperror.New(
		apperror.CodeNotFound,
		"No cached attendance board for this date",
		http.StatusNotFound,
	)
)
