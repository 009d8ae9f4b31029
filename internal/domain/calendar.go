package domain

import "context"

// DayColumn holds the events of one day in entity-list order.
type DayColumn struct {
	Day    DayOfWeek       `json:"day"`
	Events []CalendarEvent `json:"events"`
}

// GridRow is a labelled hour line of the weekly grid.
type GridRow struct {
	Time   TimeOfDay `json:"time"`
	Offset float64   `json:"offset"`
}

// WeekGrid is a full render of a week: day columns, hour rows and the total grid height.
// swagger:model WeekGrid
type WeekGrid struct {
	Columns []DayColumn `json:"columns"`
	Rows    []GridRow   `json:"rows"`
	Height  float64     `json:"height"`
	Skipped int         `json:"skipped"`
}

// CalendarService builds weekly grids for callers and for ad-hoc entity lists.
type CalendarService interface {
	WeekFor(ctx context.Context, identity Identity) (WeekGrid, error)
	LayoutEntities(entities []ScheduledEntity) WeekGrid
}

// Candidate is the slot being typed in an editor before it is added.
type Candidate struct {
	Day   DayOfWeek `json:"day"`
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Editor is a snapshot of one editing session.
// swagger:model Editor
type Editor struct {
	ID        string      `json:"id"`
	SectionID string      `json:"section_id"`
	Slots     ScheduleSet `json:"slots"`
	Candidate *Candidate  `json:"candidate,omitempty"`
}

// EditorService manages schedule editing sessions.
type EditorService interface {
	Open(sectionID string, seed ScheduleSet) (Editor, error)
	Get(editorID string) (Editor, error)
	AddSlot(editorID string, day DayOfWeek, start, end TimeOfDay) (Editor, error)
	RemoveSlot(editorID string, index int) (Editor, error)
	Reset(editorID string) (Editor, error)
	SetCandidate(editorID string, candidate Candidate) (Editor, error)
	CommitCandidate(editorID string) (Editor, error)
	Cancel(editorID string) error
	Submit(ctx context.Context, identity Identity, editorID string) (Editor, error)
}
