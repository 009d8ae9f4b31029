package domain

// DisplayMeta carries what the caller wants shown on a calendar event. Layout never reads it.
type DisplayMeta struct {
	Title      string `json:"title"`
	Code       string `json:"code,omitempty"`
	Room       string `json:"room,omitempty"`
	Instructor string `json:"instructor,omitempty"`
}

// ScheduledEntity is one section (or enrollment-wrapped section) to place on the weekly calendar.
// swagger:model ScheduledEntity
type ScheduledEntity struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Slots ScheduleSet `json:"slots"`
	Meta  DisplayMeta `json:"meta"`
}

// NewScheduledEntity returns an entity for the given id, label and slots.
func NewScheduledEntity(id, label string, slots ScheduleSet, meta DisplayMeta) ScheduledEntity {
	return ScheduledEntity{ID: id, Label: label, Slots: slots, Meta: meta}
}

// CalendarEvent is the positioned rendering of one slot of one entity. It is derived on
// every layout pass and never stored.
// swagger:model CalendarEvent
type CalendarEvent struct {
	EntityID  string      `json:"entity_id"`
	Label     string      `json:"label"`
	Day       DayOfWeek   `json:"day"`
	Start     TimeOfDay   `json:"start"`
	End       TimeOfDay   `json:"end"`
	TopOffset float64     `json:"top_offset"`
	Height    float64     `json:"height"`
	Color     string      `json:"color"`
	Meta      DisplayMeta `json:"meta"`
}
