package domain

import (
	"slices"
)

// ScheduleSet is the ordered, non-overlapping slot collection of one section.
// Methods never modify the receiver; Append and Remove return new sets.
type ScheduleSet []TimeSlot

// NewScheduleSet validates slots as a whole, e.g. after a bulk import.
func NewScheduleSet(slots ...TimeSlot) (ScheduleSet, error) {
	set := ScheduleSet(slices.Clone(slots))
	for _, s := range set {
		if !s.Valid() {
			if s.Start.Valid() && s.End.Valid() && s.Start >= s.End {
				return nil, &InvalidRangeError{Start: s.Start, End: s.End}
			}
			return nil, &InvalidSlotError{Slot: s}
		}
	}
	if i, j, found := FirstOverlap(set); found {
		return nil, &ConflictError{Candidate: set[j], Conflicting: set[i]}
	}
	return set, nil
}

// Len returns the number of slots.
func (s ScheduleSet) Len() int { return len(s) }

// Slots returns a copy of the slots in insertion order.
func (s ScheduleSet) Slots() []TimeSlot { return slices.Clone([]TimeSlot(s)) }

// Append returns a new set with slot added last. It fails with ConflictError when slot
// overlaps an existing one; the receiver is never modified.
func (s ScheduleSet) Append(slot TimeSlot) (ScheduleSet, error) {
	if conflicting, found := FindConflict(slot, s); found {
		return s, &ConflictError{Candidate: slot, Conflicting: conflicting}
	}
	out := make(ScheduleSet, len(s), len(s)+1)
	copy(out, s)
	return append(out, slot), nil
}

// Remove returns a new set without the slot at index. Out-of-range indexes return s unchanged.
func (s ScheduleSet) Remove(index int) ScheduleSet {
	if index < 0 || index >= len(s) {
		return s
	}
	out := make(ScheduleSet, 0, len(s)-1)
	out = append(out, s[:index]...)
	return append(out, s[index+1:]...)
}

// Contains reports whether an equal slot is in the set.
func (s ScheduleSet) Contains(slot TimeSlot) bool {
	return slices.Contains(s, slot)
}

// Sorted returns the slots ordered by day, start and end for stable listing.
func (s ScheduleSet) Sorted() ScheduleSet {
	return ScheduleSet(SortTimeSlots(s))
}

// Equal reports element-wise equality in order.
func (s ScheduleSet) Equal(other ScheduleSet) bool {
	return slices.Equal(s, other)
}
