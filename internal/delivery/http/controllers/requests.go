package controllers

import (
	"sectionschedule/internal/delivery/http/helpers"
	"sectionschedule/internal/domain"
)

// SlotRequest is one slot typed by a user, in the section service wire format.
type SlotRequest struct {
	DiaSemana  string `json:"diaSemana" validate:"required" example:"MONDAY"`
	HoraInicio string `json:"horaInicio" validate:"required" example:"08:00:00"`
	HoraFin    string `json:"horaFin" validate:"required" example:"09:00:00"`
}

// Validate implements Validator.
func (s SlotRequest) Validate() []string {
	return helpers.ValidateStruct(s)
}

func (s SlotRequest) timeSlot() (domain.TimeSlot, error) {
	return domain.ParseTimeSlot(s.DiaSemana, s.HoraInicio, s.HoraFin)
}

// candidate parses the values without checking that start is before end.
func (s SlotRequest) candidate() (domain.Candidate, error) {
	day, err := domain.ParseDayOfWeek(s.DiaSemana)
	if err != nil {
		return domain.Candidate{}, err
	}
	start, err := domain.ParseTimeOfDay(s.HoraInicio)
	if err != nil {
		return domain.Candidate{}, err
	}
	end, err := domain.ParseTimeOfDay(s.HoraFin)
	if err != nil {
		return domain.Candidate{}, err
	}
	return domain.Candidate{Day: day, Start: start, End: end}, nil
}

// ValidateScheduleRequest is the request body for POST /schedules/validate.
type ValidateScheduleRequest struct {
	Slots []domain.TimeSlotWire `json:"slots" validate:"required"`
}

// Validate implements Validator.
func (v ValidateScheduleRequest) Validate() []string {
	return helpers.ValidateStruct(v)
}

// LayoutEntityRequest is one entity to lay out. Slots are taken as-is; malformed ones are skipped.
type LayoutEntityRequest struct {
	ID    string                `json:"id" validate:"required"`
	Label string                `json:"label"`
	Slots []domain.TimeSlotWire `json:"slots"`
	Meta  domain.DisplayMeta    `json:"meta"`
}

// LayoutRequest is the request body for POST /calendar/layout.
type LayoutRequest struct {
	Entities []LayoutEntityRequest `json:"entities" validate:"dive"`
}

// Validate implements Validator.
func (l LayoutRequest) Validate() []string {
	return helpers.ValidateStruct(l)
}

func (l LayoutRequest) entities() []domain.ScheduledEntity {
	out := make([]domain.ScheduledEntity, 0, len(l.Entities))
	for _, e := range l.Entities {
		slots := make(domain.ScheduleSet, 0, len(e.Slots))
		for _, w := range e.Slots {
			slots = append(slots, w.RawTimeSlot())
		}
		out = append(out, domain.NewScheduledEntity(e.ID, e.Label, slots, e.Meta))
	}
	return out
}

// OpenEditorRequest is the request body for POST /editors.
type OpenEditorRequest struct {
	SectionID string        `json:"section_id" validate:"required"`
	Slots     []SlotRequest `json:"slots" validate:"dive"`
}

// Validate implements Validator.
func (o OpenEditorRequest) Validate() []string {
	return helpers.ValidateStruct(o)
}

func (o OpenEditorRequest) seed() (domain.ScheduleSet, error) {
	slots := make([]domain.TimeSlot, 0, len(o.Slots))
	for _, s := range o.Slots {
		slot, err := s.timeSlot()
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return domain.NewScheduleSet(slots...)
}
