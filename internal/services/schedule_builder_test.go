package services

import (
	"testing"

	"sectionschedule/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(h, m int) domain.TimeOfDay { return domain.MustTimeOfDay(h, m) }

func TestScheduleBuilder_AddSlot(t *testing.T) {
	first := domain.TimeSlot{Day: domain.Monday, Start: tod(8, 0), End: tod(9, 0)}

	tests := []struct {
		name         string
		day          domain.DayOfWeek
		start, end   domain.TimeOfDay
		wantLen      int
		wantConflict bool
		wantRange    bool
	}{
		{name: "overlapping half hour", day: domain.Monday, start: tod(8, 30), end: tod(9, 30), wantLen: 1, wantConflict: true},
		{name: "touching boundary", day: domain.Monday, start: tod(9, 0), end: tod(10, 0), wantLen: 2},
		{name: "different day", day: domain.Tuesday, start: tod(8, 0), end: tod(9, 0), wantLen: 2},
		{name: "identical slot", day: domain.Monday, start: tod(8, 0), end: tod(9, 0), wantLen: 1, wantConflict: true},
		{name: "inverted range", day: domain.Monday, start: tod(11, 0), end: tod(10, 0), wantLen: 1, wantRange: true},
		{name: "zero length", day: domain.Monday, start: tod(11, 0), end: tod(11, 0), wantLen: 1, wantRange: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewScheduleBuilder()
			set, err := b.AddSlot(first.Day, first.Start, first.End)
			require.NoError(t, err)
			require.Equal(t, 1, set.Len())

			set, err = b.AddSlot(tt.day, tt.start, tt.end)
			switch {
			case tt.wantConflict:
				var conflictErr *domain.ConflictError
				require.ErrorAs(t, err, &conflictErr)
				assert.Equal(t, first, conflictErr.Conflicting)
			case tt.wantRange:
				var rangeErr *domain.InvalidRangeError
				require.ErrorAs(t, err, &rangeErr)
			default:
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantLen, set.Len())
			assert.Equal(t, tt.wantLen, b.Snapshot().Len())
			assert.False(t, domain.HasAnyOverlap(b.Snapshot()))
		})
	}
}

func TestScheduleBuilder_FailedAddIsIdempotent(t *testing.T) {
	b := NewScheduleBuilder()
	_, err := b.AddSlot(domain.Monday, tod(8, 0), tod(9, 0))
	require.NoError(t, err)
	before := b.Snapshot()

	for range 3 {
		_, err := b.AddSlot(domain.Monday, tod(8, 30), tod(9, 30))
		require.Error(t, err)
		assert.True(t, b.Snapshot().Equal(before))
	}
}

func TestScheduleBuilder_SnapshotIsStable(t *testing.T) {
	b := NewScheduleBuilder()
	_, err := b.AddSlot(domain.Monday, tod(8, 0), tod(9, 0))
	require.NoError(t, err)
	snap := b.Snapshot()

	_, err = b.AddSlot(domain.Tuesday, tod(8, 0), tod(9, 0))
	require.NoError(t, err)
	b.RemoveSlot(0)

	require.Equal(t, 1, snap.Len())
	assert.Equal(t, domain.Monday, snap[0].Day)
}

func TestScheduleBuilder_RemoveAndReset(t *testing.T) {
	b := NewScheduleBuilder()
	_, _ = b.AddSlot(domain.Monday, tod(8, 0), tod(9, 0))
	_, _ = b.AddSlot(domain.Wednesday, tod(8, 0), tod(9, 0))

	set := b.RemoveSlot(7)
	assert.Equal(t, 2, set.Len())

	set = b.RemoveSlot(0)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, domain.Wednesday, set[0].Day)

	require.NoError(t, b.SetCandidate(domain.Candidate{Day: domain.Friday, Start: tod(8, 0), End: tod(9, 0)}))
	set = b.Reset()
	assert.Zero(t, set.Len())
	assert.NotNil(t, set)
	_, ok := b.Candidate()
	assert.False(t, ok)
}

func TestScheduleBuilder_Load(t *testing.T) {
	b := NewScheduleBuilder()
	saved := domain.ScheduleSet{
		{Day: domain.Monday, Start: tod(8, 0), End: tod(9, 0)},
		{Day: domain.Monday, Start: tod(9, 0), End: tod(10, 0)},
	}
	require.NoError(t, b.Load(saved))
	assert.True(t, b.Snapshot().Equal(saved))

	err := b.Load(domain.ScheduleSet{
		{Day: domain.Monday, Start: tod(8, 0), End: tod(9, 0)},
		{Day: domain.Monday, Start: tod(8, 30), End: tod(10, 0)},
	})
	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.True(t, b.Snapshot().Equal(saved), "failed load keeps the previous set")
}

func TestScheduleBuilder_Candidate(t *testing.T) {
	b := NewScheduleBuilder()

	_, err := b.CommitCandidate()
	require.ErrorIs(t, err, domain.ErrNoCandidate)

	require.ErrorIs(t, b.SetCandidate(domain.Candidate{Day: 0, Start: tod(8, 0), End: tod(9, 0)}), domain.ErrInvalidDay)
	require.ErrorIs(t, b.SetCandidate(domain.Candidate{Day: domain.Monday, Start: domain.NoTime, End: tod(9, 0)}), domain.ErrInvalidTime)

	// An inverted candidate can be stored while typing but not committed.
	inverted := domain.Candidate{Day: domain.Monday, Start: tod(10, 0), End: tod(9, 0)}
	require.NoError(t, b.SetCandidate(inverted))
	_, err = b.CommitCandidate()
	var rangeErr *domain.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	got, ok := b.Candidate()
	require.True(t, ok, "candidate survives a failed commit")
	assert.Equal(t, inverted, got)

	require.NoError(t, b.SetCandidate(domain.Candidate{Day: domain.Monday, Start: tod(8, 0), End: tod(9, 0)}))
	set, err := b.CommitCandidate()
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	_, ok = b.Candidate()
	assert.False(t, ok)
}

func TestScheduleBuilder_NewSnapshotIsEmpty(t *testing.T) {
	snap := NewScheduleBuilder().Snapshot()
	assert.NotNil(t, snap)
	assert.Zero(t, snap.Len())
}
