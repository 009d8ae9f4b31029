package domain

// Overlaps reports whether two slots share any minute. Intervals are half-open, so a
// slot ending at 10:00 and one starting at 10:00 do not overlap.
func Overlaps(a, b TimeSlot) bool {
	if a.Day != b.Day {
		return false
	}
	return a.Start < b.End && b.Start < a.End
}

// FindConflict returns the first slot of existing, in insertion order, that overlaps candidate.
func FindConflict(candidate TimeSlot, existing ScheduleSet) (TimeSlot, bool) {
	for _, slot := range existing {
		if Overlaps(candidate, slot) {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// HasAnyOverlap reports whether any unordered pair of slots in set overlaps.
func HasAnyOverlap(set ScheduleSet) bool {
	_, _, found := FirstOverlap(set)
	return found
}

// FirstOverlap returns the indexes (i < j) of the first overlapping pair in set.
func FirstOverlap(set ScheduleSet) (int, int, bool) {
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			if Overlaps(set[i], set[j]) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// OverlappingPairs lists every overlapping pair (i < j) in set.
func OverlappingPairs(set ScheduleSet) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			if Overlaps(set[i], set[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
