package services

import (
	"strings"

	"sectionschedule/internal/domain"
)

// FromSections maps a teacher's sections to scheduled entities. Slots that cannot become
// valid TimeSlots, or that overlap an earlier slot of the same section, are dropped; the
// number dropped is returned alongside the entities.
func FromSections(sections []domain.Section) ([]domain.ScheduledEntity, int) {
	entities := make([]domain.ScheduledEntity, 0, len(sections))
	skipped := 0
	for _, section := range sections {
		entity, dropped := sectionEntity(section)
		skipped += dropped
		entities = append(entities, entity)
	}
	return entities, skipped
}

// FromEnrollments maps a student's active enrollments to the entities of their sections.
// Inactive enrollments, enrollments without a section and repeated sections are left out.
func FromEnrollments(enrollments []domain.Enrollment) ([]domain.ScheduledEntity, int) {
	entities := make([]domain.ScheduledEntity, 0, len(enrollments))
	seen := make(map[int64]struct{}, len(enrollments))
	skipped := 0
	for _, enrollment := range enrollments {
		if enrollment.Seccion == nil || !isActive(enrollment.Estado) {
			continue
		}
		if _, ok := seen[enrollment.Seccion.ID]; ok {
			continue
		}
		seen[enrollment.Seccion.ID] = struct{}{}
		entity, dropped := sectionEntity(*enrollment.Seccion)
		skipped += dropped
		entities = append(entities, entity)
	}
	return entities, skipped
}

func sectionEntity(section domain.Section) (domain.ScheduledEntity, int) {
	set := domain.ScheduleSet{}
	dropped := 0
	for _, wire := range section.Horarios {
		slot, err := wire.TimeSlot()
		if err != nil {
			dropped++
			continue
		}
		next, err := set.Append(slot)
		if err != nil {
			dropped++
			continue
		}
		set = next
	}
	meta := domain.DisplayMeta{
		Code: section.Codigo,
		Room: section.Aula,
	}
	if section.Curso != nil {
		meta.Title = section.Curso.Nombre
	}
	if section.Profesor != nil {
		meta.Instructor = section.Profesor.FullName()
	}
	return domain.NewScheduledEntity(section.EntityID(), sectionLabel(section), set, meta), dropped
}

func sectionLabel(section domain.Section) string {
	course := ""
	if section.Curso != nil {
		course = strings.TrimSpace(section.Curso.Nombre)
	}
	code := strings.TrimSpace(section.Codigo)
	switch {
	case course != "" && code != "":
		return course + " - " + code
	case course != "":
		return course
	case code != "":
		return code
	default:
		return "Section " + section.EntityID()
	}
}

func isActive(status string) bool {
	s := strings.ToUpper(strings.TrimSpace(status))
	return s == domain.EnrollmentActive || s == "ACTIVE"
}
