package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) TimeOfDay { return MustTimeOfDay(h, m) }

func slot(t *testing.T, day DayOfWeek, start, end TimeOfDay) TimeSlot {
	t.Helper()
	s, err := NewTimeSlot(day, start, end)
	require.NoError(t, err)
	return s
}

func TestParseDayOfWeek(t *testing.T) {
	tests := []struct {
		in      string
		want    DayOfWeek
		wantErr bool
	}{
		{"MONDAY", Monday, false},
		{"saturday", Saturday, false},
		{" Wednesday ", Wednesday, false},
		{"SUNDAY", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDayOfWeek(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestDayOfWeek_Order(t *testing.T) {
	require.Len(t, OperatingDays, 6)
	for i := 1; i < len(OperatingDays); i++ {
		assert.Less(t, OperatingDays[i-1], OperatingDays[i])
	}
	assert.False(t, DayOfWeek(0).Valid())
	assert.False(t, DayOfWeek(7).Valid())
	assert.Equal(t, "FRIDAY", Friday.String())
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"00:01", 1, false},
		{"08:30", 510, false},
		{"08:30:00", 510, false},
		{"23:59:00", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"08:30:15", 0, true},
		{"8:30", 0, true},
		{"08-30", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
		{"+8:00", 0, true},
		{"-1:00", 0, true},
		{"08:+5", 0, true},
		{"08:00:+0", 0, true},
		{"08:00:-0", 0, true},
		{"0x:10", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "00:00:00", at(0, 0).String())
	assert.Equal(t, "07:05:00", at(7, 5).String())
	assert.Equal(t, "23:59:00", at(23, 59).String())
	assert.Equal(t, 23, at(23, 59).Hour())
	assert.Equal(t, 59, at(23, 59).Minute())
	assert.False(t, NoTime.Valid())
}

func TestNewTimeSlot(t *testing.T) {
	tests := []struct {
		name      string
		day       DayOfWeek
		start     TimeOfDay
		end       TimeOfDay
		wantRange bool
		wantErr   error
	}{
		{name: "valid", day: Monday, start: at(8, 0), end: at(9, 0)},
		{name: "midnight start", day: Tuesday, start: at(0, 0), end: at(0, 30)},
		{name: "ends at last minute", day: Saturday, start: at(23, 0), end: at(23, 59)},
		{name: "zero length", day: Monday, start: at(8, 0), end: at(8, 0), wantRange: true},
		{name: "inverted", day: Monday, start: at(10, 0), end: at(9, 0), wantRange: true},
		{name: "invalid day", day: 0, start: at(8, 0), end: at(9, 0), wantErr: ErrInvalidDay},
		{name: "missing start", day: Monday, start: NoTime, end: at(9, 0), wantErr: ErrInvalidTime},
		{name: "end out of range", day: Monday, start: at(8, 0), end: MinutesPerDay, wantErr: ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewTimeSlot(tt.day, tt.start, tt.end)
			switch {
			case tt.wantRange:
				var rangeErr *InvalidRangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Equal(t, tt.start, rangeErr.Start)
				assert.Equal(t, tt.end, rangeErr.End)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.True(t, s.Valid())
				assert.Equal(t, TimeSlot{Day: tt.day, Start: tt.start, End: tt.end}, s)
			}
		})
	}
}

func TestParseTimeSlot(t *testing.T) {
	s, err := ParseTimeSlot("monday", "08:00", "09:30:00")
	require.NoError(t, err)
	assert.Equal(t, TimeSlot{Day: Monday, Start: at(8, 0), End: at(9, 30)}, s)
	assert.Equal(t, 90, s.Duration())

	_, err = ParseTimeSlot("MONDAY", "09:00", "08:00")
	var rangeErr *InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)

	_, err = ParseTimeSlot("FUNDAY", "08:00", "09:00")
	require.ErrorIs(t, err, ErrInvalidDay)

	_, err = ParseTimeSlot("MONDAY", "8", "09:00")
	require.ErrorIs(t, err, ErrInvalidTime)
}

func TestTimeSlot_Equality(t *testing.T) {
	a := slot(t, Monday, at(8, 0), at(9, 0))
	b := slot(t, Monday, at(8, 0), at(9, 0))
	c := slot(t, Monday, at(8, 0), at(9, 30))
	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestCompareAndSort(t *testing.T) {
	monLate := slot(t, Monday, at(10, 0), at(11, 0))
	monEarly := slot(t, Monday, at(8, 0), at(9, 0))
	monEarlyLong := slot(t, Monday, at(8, 0), at(10, 0))
	tue := slot(t, Tuesday, at(7, 0), at(8, 0))

	assert.Negative(t, Compare(monEarly, monLate))
	assert.Negative(t, Compare(monEarly, monEarlyLong))
	assert.Negative(t, Compare(monLate, tue))
	assert.Zero(t, Compare(tue, tue))

	in := []TimeSlot{tue, monLate, monEarlyLong, monEarly}
	got := SortTimeSlots(in)
	assert.Equal(t, []TimeSlot{monEarly, monEarlyLong, monLate, tue}, got)
	assert.Equal(t, tue, in[0], "input must not be reordered")
}
