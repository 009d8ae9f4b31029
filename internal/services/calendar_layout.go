package services

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"sectionschedule/internal/domain"
)

// DefaultPalette is the fixed set of event colors. Different entities may share a color
// when their keys collide modulo the palette size.
var DefaultPalette = []string{
	"#4F46E5", // indigo
	"#0EA5E9", // sky
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#14B8A6", // teal
}

// LayoutConfig positions the visible window of the weekly grid.
// With ClipToWindow unset, slots outside [DayStart, DayEnd) keep their natural offsets
// (negative, or past the grid height) and clipping is left to the renderer.
type LayoutConfig struct {
	DayStart      domain.TimeOfDay
	DayEnd        domain.TimeOfDay
	PixelsPerHour float64
	Days          []domain.DayOfWeek
	ClipToWindow  bool
}

// DefaultLayoutConfig shows 07:00 to 22:00 at 60px per hour, Monday to Saturday.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		DayStart:      domain.MustTimeOfDay(7, 0),
		DayEnd:        domain.MustTimeOfDay(22, 0),
		PixelsPerHour: 60,
		Days:          slices.Clone(domain.OperatingDays),
	}
}

// Validate checks the window and scale.
func (c LayoutConfig) Validate() error {
	if !c.DayStart.Valid() || !c.DayEnd.Valid() {
		return fmt.Errorf("%w: day window %d-%d", domain.ErrInvalidTime, int(c.DayStart), int(c.DayEnd))
	}
	if c.DayStart >= c.DayEnd {
		return &domain.InvalidRangeError{Start: c.DayStart, End: c.DayEnd}
	}
	if c.PixelsPerHour <= 0 {
		return errors.New("pixels per hour must be positive")
	}
	if len(c.Days) == 0 {
		return fmt.Errorf("%w: no days configured", domain.ErrInvalidDay)
	}
	for _, d := range c.Days {
		if !d.Valid() {
			return fmt.Errorf("%w: %d", domain.ErrInvalidDay, int(d))
		}
	}
	return nil
}

// LayoutEngine turns scheduled entities into positioned calendar events.
// It holds only configuration, so one engine can serve concurrent renders.
type LayoutEngine struct {
	cfg     LayoutConfig
	days    []domain.DayOfWeek
	visible map[domain.DayOfWeek]bool
	palette []string
}

// NewLayoutEngine validates cfg and returns an engine using DefaultPalette.
func NewLayoutEngine(cfg LayoutConfig) (*LayoutEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout config: %w", err)
	}
	days := slices.Clone(cfg.Days)
	slices.Sort(days)
	days = slices.Compact(days)
	visible := make(map[domain.DayOfWeek]bool, len(days))
	for _, d := range days {
		visible[d] = true
	}
	return &LayoutEngine{
		cfg:     cfg,
		days:    days,
		visible: visible,
		palette: DefaultPalette,
	}, nil
}

// Config returns the engine's configuration.
func (e *LayoutEngine) Config() LayoutConfig {
	return e.cfg
}

// Layout places every valid slot of every entity, in entity order then slot order.
// Malformed slots and slots on days the engine does not show are left out.
func (e *LayoutEngine) Layout(entities []domain.ScheduledEntity) []domain.CalendarEvent {
	events, _ := e.layout(entities)
	return events
}

// Grid lays out entities and groups the events into day columns with hour rows.
func (e *LayoutEngine) Grid(entities []domain.ScheduledEntity) domain.WeekGrid {
	events, skipped := e.layout(entities)
	return domain.WeekGrid{
		Columns: e.Columns(events),
		Rows:    e.Rows(),
		Height:  e.offset(e.cfg.DayEnd),
		Skipped: skipped,
	}
}

// Columns groups events by day in display order, keeping their relative order.
// Events on days the engine does not show are dropped.
func (e *LayoutEngine) Columns(events []domain.CalendarEvent) []domain.DayColumn {
	columns := make([]domain.DayColumn, len(e.days))
	index := make(map[domain.DayOfWeek]int, len(e.days))
	for i, d := range e.days {
		columns[i] = domain.DayColumn{Day: d, Events: []domain.CalendarEvent{}}
		index[d] = i
	}
	for _, ev := range events {
		i, ok := index[ev.Day]
		if !ok {
			continue
		}
		columns[i].Events = append(columns[i].Events, ev)
	}
	return columns
}

// Rows returns one line per full hour inside the visible window.
func (e *LayoutEngine) Rows() []domain.GridRow {
	first := (int(e.cfg.DayStart) + 59) / 60
	last := int(e.cfg.DayEnd) / 60
	rows := make([]domain.GridRow, 0, last-first+1)
	for h := first; h <= last; h++ {
		t := domain.TimeOfDay(h * 60)
		rows = append(rows, domain.GridRow{Time: t, Offset: e.offset(t)})
	}
	return rows
}

// Color returns the palette entry for an entity id. Numeric ids use their value modulo
// the palette size; other ids are hashed first.
func (e *LayoutEngine) Color(entityID string) string {
	return e.palette[colorIndex(entityID, len(e.palette))]
}

func (e *LayoutEngine) layout(entities []domain.ScheduledEntity) ([]domain.CalendarEvent, int) {
	events := []domain.CalendarEvent{}
	skipped := 0
	for _, entity := range entities {
		color := e.Color(entity.ID)
		for _, slot := range entity.Slots {
			start, end, ok := e.place(slot)
			if !ok {
				skipped++
				continue
			}
			events = append(events, domain.CalendarEvent{
				EntityID:  entity.ID,
				Label:     entity.Label,
				Day:       slot.Day,
				Start:     start,
				End:       end,
				TopOffset: e.offset(start),
				Height:    float64(end-start) / 60 * e.cfg.PixelsPerHour,
				Color:     color,
				Meta:      entity.Meta,
			})
		}
	}
	return events, skipped
}

// place returns the times an event is drawn with. Only with ClipToWindow are they
// narrowed to the window, and slots entirely outside it dropped.
func (e *LayoutEngine) place(slot domain.TimeSlot) (start, end domain.TimeOfDay, ok bool) {
	if !e.visible[slot.Day] || !slot.Valid() {
		return 0, 0, false
	}
	if !e.cfg.ClipToWindow {
		return slot.Start, slot.End, true
	}
	if slot.End <= e.cfg.DayStart || slot.Start >= e.cfg.DayEnd {
		return 0, 0, false
	}
	return max(slot.Start, e.cfg.DayStart), min(slot.End, e.cfg.DayEnd), true
}

func (e *LayoutEngine) offset(t domain.TimeOfDay) float64 {
	return float64(t-e.cfg.DayStart) / 60 * e.cfg.PixelsPerHour
}

func colorIndex(entityID string, size int) int {
	if size <= 0 {
		return 0
	}
	if n, err := strconv.ParseInt(entityID, 10, 64); err == nil {
		r := n % int64(size)
		if r < 0 {
			r += int64(size)
		}
		return int(r)
	}
	return int(xxhash.Sum64String(entityID) % uint64(size))
}
