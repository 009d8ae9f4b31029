package domain

import (
	"encoding/json"
	"fmt"
)

// TimeSlotWire is the JSON shape of a slot exchanged with the section service.
// Times are pointers so that a missing or null field is distinguishable from midnight.
type TimeSlotWire struct {
	DiaSemana  string  `json:"diaSemana"`
	HoraInicio *string `json:"horaInicio"`
	HoraFin    *string `json:"horaFin"`
}

// ToWire converts a slot to its wire shape.
func ToWire(s TimeSlot) TimeSlotWire {
	start, end := s.Start.String(), s.End.String()
	return TimeSlotWire{DiaSemana: s.Day.String(), HoraInicio: &start, HoraFin: &end}
}

// ToWireList converts every slot of set, keeping order.
func ToWireList(set ScheduleSet) []TimeSlotWire {
	out := make([]TimeSlotWire, 0, len(set))
	for _, s := range set {
		out = append(out, ToWire(s))
	}
	return out
}

// TimeSlot validates the wire value and converts it.
func (w TimeSlotWire) TimeSlot() (TimeSlot, error) {
	if w.HoraInicio == nil {
		return TimeSlot{}, fmt.Errorf("%w: horaInicio is missing", ErrInvalidTime)
	}
	if w.HoraFin == nil {
		return TimeSlot{}, fmt.Errorf("%w: horaFin is missing", ErrInvalidTime)
	}
	return ParseTimeSlot(w.DiaSemana, *w.HoraInicio, *w.HoraFin)
}

// RawTimeSlot converts without validating. Unknown days become the zero day and missing
// or unparsable times become NoTime, which the layout engine skips.
func (w TimeSlotWire) RawTimeSlot() TimeSlot {
	slot := TimeSlot{Start: NoTime, End: NoTime}
	if d, err := ParseDayOfWeek(w.DiaSemana); err == nil {
		slot.Day = d
	}
	if w.HoraInicio != nil {
		if t, err := ParseTimeOfDay(*w.HoraInicio); err == nil {
			slot.Start = t
		}
	}
	if w.HoraFin != nil {
		if t, err := ParseTimeOfDay(*w.HoraFin); err == nil {
			slot.End = t
		}
	}
	return slot
}

// MarshalJSON encodes the slot in the wire format.
func (s TimeSlot) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &InvalidSlotError{Slot: s}
	}
	return json.Marshal(ToWire(s))
}

// UnmarshalJSON decodes and validates a wire slot.
func (s *TimeSlot) UnmarshalJSON(data []byte) error {
	var w TimeSlotWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	slot, err := w.TimeSlot()
	if err != nil {
		return err
	}
	*s = slot
	return nil
}

// UnmarshalJSON decodes a list of wire slots and rejects overlapping sets.
func (s *ScheduleSet) UnmarshalJSON(data []byte) error {
	var slots []TimeSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	set, err := NewScheduleSet(slots...)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

// MarshalJSON encodes the set as a wire slot list; an empty set encodes as [].
func (s ScheduleSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]TimeSlot(s))
}
