package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// DayOfWeek is one of the six operating days. The zero value is not a valid day.
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// OperatingDays lists the valid days in display order.
var OperatingDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var dayNames = map[DayOfWeek]string{
	Monday:    "MONDAY",
	Tuesday:   "TUESDAY",
	Wednesday: "WEDNESDAY",
	Thursday:  "THURSDAY",
	Friday:    "FRIDAY",
	Saturday:  "SATURDAY",
}

// Valid reports whether d is one of the operating days.
func (d DayOfWeek) Valid() bool {
	return d >= Monday && d <= Saturday
}

// String returns the upper-case English name used on the wire.
func (d DayOfWeek) String() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DayOfWeek(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d DayOfWeek) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDay, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DayOfWeek) UnmarshalText(text []byte) error {
	parsed, err := ParseDayOfWeek(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDayOfWeek parses an English weekday name, case-insensitively.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for day, n := range dayNames {
		if n == name {
			return day, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

// MinutesPerDay bounds TimeOfDay values.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute precision, stored as minutes since midnight.
type TimeOfDay int

// NoTime marks a missing time in data that did not go through ParseTimeOfDay.
const NoTime TimeOfDay = -1

// NewTimeOfDay returns the time for hour:minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return NoTime, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay is NewTimeOfDay for constants and tests. It panics on invalid input.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS". Seconds, when present, must be zero.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return NoTime, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 || !isDigit(p[0]) || !isDigit(p[1]) {
			return NoTime, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		nums[i] = int(p[0]-'0')*10 + int(p[1]-'0')
	}
	if len(nums) == 3 && nums[2] != 0 {
		return NoTime, fmt.Errorf("%w: %q has non-zero seconds", ErrInvalidTime, s)
	}
	t, err := NewTimeOfDay(nums[0], nums[1])
	if err != nil {
		return NoTime, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Valid reports whether t lies within a day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String formats t as zero-padded "HH:MM:SS".
func (t TimeOfDay) String() string {
	if !t.Valid() {
		return "--:--:--"
	}
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute())
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidTime, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TimeSlot is one weekly recurring interval [Start, End) on Day.
// Build it with NewTimeSlot; a literal bypasses validation and is only checked by Valid.
type TimeSlot struct {
	Day   DayOfWeek
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeSlot validates and returns a slot. Start must be strictly before End.
func NewTimeSlot(day DayOfWeek, start, end TimeOfDay) (TimeSlot, error) {
	if !day.Valid() {
		return TimeSlot{}, fmt.Errorf("%w: %d", ErrInvalidDay, int(day))
	}
	if !start.Valid() {
		return TimeSlot{}, fmt.Errorf("%w: start %d", ErrInvalidTime, int(start))
	}
	if !end.Valid() {
		return TimeSlot{}, fmt.Errorf("%w: end %d", ErrInvalidTime, int(end))
	}
	if start >= end {
		return TimeSlot{}, &InvalidRangeError{Start: start, End: end}
	}
	return TimeSlot{Day: day, Start: start, End: end}, nil
}

// ParseTimeSlot builds a slot from raw day and time strings as typed by a user.
func ParseTimeSlot(day, start, end string) (TimeSlot, error) {
	d, err := ParseDayOfWeek(day)
	if err != nil {
		return TimeSlot{}, err
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("start: %w", err)
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("end: %w", err)
	}
	return NewTimeSlot(d, s, e)
}

// Valid reports whether the slot satisfies every TimeSlot invariant.
func (s TimeSlot) Valid() bool {
	return s.Day.Valid() && s.Start.Valid() && s.End.Valid() && s.Start < s.End
}

// Duration returns the slot length in minutes.
func (s TimeSlot) Duration() int {
	return int(s.End - s.Start)
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", s.Day, s.Start, s.End)
}

// Compare orders slots by day, then start, then end.
func Compare(a, b TimeSlot) int {
	if c := cmp.Compare(a.Day, b.Day); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}

// SortTimeSlots returns a sorted copy of slots; the input is left untouched.
func SortTimeSlots(slots []TimeSlot) []TimeSlot {
	out := slices.Clone(slots)
	slices.SortStableFunc(out, Compare)
	return out
}
