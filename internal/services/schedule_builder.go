package services

import (
	"fmt"

	"sectionschedule/internal/domain"
)

// ScheduleBuilder accumulates the slots of one section while it is being edited.
// It only checks overlaps inside its own set; the section service remains the authority
// for conflicts across a teacher's sections.
// A builder belongs to a single editing session and is not safe for concurrent use.
type ScheduleBuilder struct {
	set       domain.ScheduleSet
	candidate *domain.Candidate
}

// NewScheduleBuilder returns an empty builder.
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{}
}

// Load replaces the current set with an existing schedule, e.g. when editing a saved section.
func (b *ScheduleBuilder) Load(set domain.ScheduleSet) error {
	validated, err := domain.NewScheduleSet(set...)
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}
	b.set = validated
	b.candidate = nil
	return nil
}

// AddSlot validates the slot and appends it. On InvalidRangeError or ConflictError the
// set is left exactly as it was.
func (b *ScheduleBuilder) AddSlot(day domain.DayOfWeek, start, end domain.TimeOfDay) (domain.ScheduleSet, error) {
	slot, err := domain.NewTimeSlot(day, start, end)
	if err != nil {
		return b.set, err
	}
	next, err := b.set.Append(slot)
	if err != nil {
		return b.set, err
	}
	b.set = next
	return b.set, nil
}

// RemoveSlot drops the slot at index; an invalid index is a no-op.
func (b *ScheduleBuilder) RemoveSlot(index int) domain.ScheduleSet {
	b.set = b.set.Remove(index)
	return b.set
}

// Reset empties the set and clears the candidate.
func (b *ScheduleBuilder) Reset() domain.ScheduleSet {
	b.set = domain.ScheduleSet{}
	b.candidate = nil
	return b.set
}

// SetCandidate stores the slot being typed. Values must be well-formed; the range is
// only checked when the candidate is committed.
func (b *ScheduleBuilder) SetCandidate(c domain.Candidate) error {
	if !c.Day.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidDay, int(c.Day))
	}
	if !c.Start.Valid() || !c.End.Valid() {
		return fmt.Errorf("%w: candidate %d-%d", domain.ErrInvalidTime, int(c.Start), int(c.End))
	}
	b.candidate = &c
	return nil
}

// Candidate returns the pending candidate, if any.
func (b *ScheduleBuilder) Candidate() (domain.Candidate, bool) {
	if b.candidate == nil {
		return domain.Candidate{}, false
	}
	return *b.candidate, true
}

// CommitCandidate adds the pending candidate. The candidate is cleared only when the add succeeds.
func (b *ScheduleBuilder) CommitCandidate() (domain.ScheduleSet, error) {
	if b.candidate == nil {
		return b.set, domain.ErrNoCandidate
	}
	c := *b.candidate
	set, err := b.AddSlot(c.Day, c.Start, c.End)
	if err != nil {
		return set, err
	}
	b.candidate = nil
	return set, nil
}

// Snapshot returns the current set. Sets are never mutated in place, so the snapshot
// stays stable while the builder keeps changing.
func (b *ScheduleBuilder) Snapshot() domain.ScheduleSet {
	if b.set == nil {
		return domain.ScheduleSet{}
	}
	return b.set
}
