package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSubmissionErrorCode(t *testing.T) {
	tests := []struct {
		in   string
		want SubmissionErrorCode
	}{
		{"SCHEDULE_CONFLICT", SubmissionScheduleConflict},
		{" schedule_conflict ", SubmissionScheduleConflict},
		{"VALIDATION_ERROR", SubmissionValidation},
		{"SOMETHING_ELSE", SubmissionUnknown},
		{"", SubmissionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSubmissionErrorCode(tt.in))
		})
	}
}

func TestIsSubmissionConflict(t *testing.T) {
	conflict := &SubmissionError{Code: SubmissionScheduleConflict, Status: 409, Message: "cruce de horario"}
	assert.True(t, IsSubmissionConflict(conflict))
	assert.True(t, IsSubmissionConflict(fmt.Errorf("submit section 7: %w", conflict)))
	assert.False(t, IsSubmissionConflict(&SubmissionError{Code: SubmissionValidation}))
	assert.False(t, IsSubmissionConflict(&ConflictError{}))
	assert.False(t, IsSubmissionConflict(nil))

	assert.Equal(t, "submission rejected (SCHEDULE_CONFLICT): cruce de horario", conflict.Error())
	assert.Equal(t, "submission rejected (UNKNOWN)", (&SubmissionError{Code: SubmissionUnknown}).Error())
}

func TestErrorMessages(t *testing.T) {
	rangeErr := &InvalidRangeError{Start: at(10, 0), End: at(9, 0)}
	assert.Equal(t, "start 10:00:00 must be before end 09:00:00", rangeErr.Error())

	conflictErr := &ConflictError{
		Candidate:   TimeSlot{Monday, at(8, 30), at(9, 30)},
		Conflicting: TimeSlot{Monday, at(8, 0), at(9, 0)},
	}
	assert.Equal(t, "slot MONDAY 08:30:00-09:30:00 overlaps existing slot MONDAY 08:00:00-09:00:00", conflictErr.Error())
}
