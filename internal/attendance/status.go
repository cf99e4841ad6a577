package attendance

import "strings"

type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusReturned   Status = "returned"
	StatusOut        Status = "out"
	StatusEarlyLeave Status = "early_leave"
	StatusLeft       Status = "left"
	StatusAbsent     Status = "absent"
)

type StatusInfo struct {
	Code       Status
	Label      string
	CheckedIn  bool
	CheckedOut bool
}

// statusTable is the closed attendance vocabulary. Labels are the ones printed on the board.
var statusTable = []StatusInfo{
	{Code: StatusPresent, Label: "등원", CheckedIn: true},
	{Code: StatusLate, Label: "지각", CheckedIn: true},
	{Code: StatusReturned, Label: "복귀", CheckedIn: true},
	{Code: StatusOut, Label: "외출"},
	{Code: StatusEarlyLeave, Label: "조퇴", CheckedOut: true},
	{Code: StatusLeft, Label: "하원", CheckedOut: true},
	{Code: StatusAbsent, Label: "미등원"},
}

var statusIndex = func() map[Status]StatusInfo {
	m := make(map[Status]StatusInfo, len(statusTable))
	for _, info := range statusTable {
		m[info.Code] = info
	}
	return m
}()

// Statuses returns the vocabulary in display order.
func Statuses() []StatusInfo {
	out := make([]StatusInfo, len(statusTable))
	copy(out, statusTable)
	return out
}

// ParseStatus normalizes case and surrounding whitespace; ok is false for codes outside the vocabulary.
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

func (s Status) Valid() bool {
	_, ok := statusIndex[s]
	return ok
}

// Label falls back to the raw code for statuses outside the vocabulary.
func (s Status) Label() string {
	if info, ok := statusIndex[s]; ok {
		return info.Label
	}
	return string(s)
}

func (s Status) IsCheckedIn() bool {
	return statusIndex[s].CheckedIn
}

func (s Status) IsCheckedOut() bool {
	return statusIndex[s].CheckedOut
}

// IsArrival reports whether s counts toward the first check-in of the day.
func (s Status) IsArrival() bool {
	return s == StatusPresent || s == StatusLate
}

// IsDeparture reports whether s counts toward the last check-out of the day.
func (s Status) IsDeparture() bool {
	return s == StatusLeft || s == StatusEarlyLeave
}

func (s Status) StampsCheckIn() bool {
	return s == StatusPresent || s == StatusLate || s == StatusReturned
}

func (s Status) StampsCheckOut() bool {
	return s == StatusLeft || s == StatusOut || s == StatusEarlyLeave
}
