package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for schedule operations.
var (
	ErrInvalidDay      = errors.New("invalid day of week")
	ErrInvalidTime     = errors.New("invalid time of day")
	ErrEditorNotFound  = errors.New("schedule editor not found")
	ErrUnsupportedRole = errors.New("role has no weekly schedule")
	ErrUpstream        = errors.New("section service unavailable")
	ErrNoCandidate     = errors.New("no candidate slot to add")
)

// InvalidRangeError reports a slot whose start is not strictly before its end.
type InvalidRangeError struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("start %s must be before end %s", e.Start, e.End)
}

// ConflictError reports a candidate slot overlapping a slot already in the same set.
type ConflictError struct {
	Candidate   TimeSlot
	Conflicting TimeSlot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s overlaps existing slot %s", e.Candidate, e.Conflicting)
}

// InvalidSlotError reports a slot with an unknown day or out-of-range times.
type InvalidSlotError struct {
	Slot TimeSlot
}

func (e *InvalidSlotError) Error() string {
	return "invalid slot " + e.Slot.String()
}

// SubmissionErrorCode classifies a failure returned by the section service on save.
type SubmissionErrorCode string

const (
	SubmissionScheduleConflict SubmissionErrorCode = "SCHEDULE_CONFLICT"
	SubmissionValidation       SubmissionErrorCode = "VALIDATION_ERROR"
	SubmissionUnknown          SubmissionErrorCode = "UNKNOWN"
)

// ParseSubmissionErrorCode maps a code sent by the section service. Unknown codes map to SubmissionUnknown.
func ParseSubmissionErrorCode(s string) SubmissionErrorCode {
	switch SubmissionErrorCode(strings.ToUpper(strings.TrimSpace(s))) {
	case SubmissionScheduleConflict:
		return SubmissionScheduleConflict
	case SubmissionValidation:
		return SubmissionValidation
	default:
		return SubmissionUnknown
	}
}

// SubmissionError is a save rejected by the section service. A SCHEDULE_CONFLICT here is a
// cross-section conflict detected server-side and is never the same as a ConflictError.
type SubmissionError struct {
	Code    SubmissionErrorCode
	Status  int
	Message string
}

func (e *SubmissionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("submission rejected (%s)", e.Code)
	}
	return fmt.Sprintf("submission rejected (%s): %s", e.Code, e.Message)
}

// IsSubmissionConflict reports whether err is a server-side scheduling conflict.
func IsSubmissionConflict(err error) bool {
	var se *SubmissionError
	return errors.As(err, &se) && se.Code == SubmissionScheduleConflict
}
