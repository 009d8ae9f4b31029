package domain

import (
	"context"
	"strconv"
)

// Course is the course a section belongs to, as returned by the section service.
type Course struct {
	ID     int64  `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// Teacher is the instructor of a section, as returned by the section service.
type Teacher struct {
	ID        int64  `json:"id"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
}

// FullName joins given names and surnames.
func (t Teacher) FullName() string {
	switch {
	case t.Nombres == "":
		return t.Apellidos
	case t.Apellidos == "":
		return t.Nombres
	default:
		return t.Nombres + " " + t.Apellidos
	}
}

// Section is a scheduled offering of a course with its weekly slots, as returned by the section service.
type Section struct {
	ID       int64          `json:"id"`
	Codigo   string         `json:"codigo"`
	Aula     string         `json:"aula"`
	Cupo     int            `json:"cupo"`
	Curso    *Course        `json:"curso"`
	Profesor *Teacher       `json:"profesor"`
	Horarios []TimeSlotWire `json:"horarios"`
}

// EntityID is the stable identifier used for a section on the calendar.
func (s Section) EntityID() string {
	return strconv.FormatInt(s.ID, 10)
}

// EnrollmentActive is the status of an enrollment that should appear on a student's week.
const EnrollmentActive = "ACTIVA"

// Enrollment wraps the section a student is enrolled in.
type Enrollment struct {
	ID      int64    `json:"id"`
	Estado  string   `json:"estado"`
	Seccion *Section `json:"seccion"`
}

// Role selects which read boundary serves a caller's weekly schedule.
type Role string

const (
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

// Identity is the authenticated caller: who they are and in which role.
type Identity struct {
	UserID string
	Role   Role
	// Token is forwarded to the section service.
	Token string
}

// SectionSubmission is a validated schedule sent to the section service on save.
// SectionID is the only section metadata the service needs: it addresses the section in
// the request path, and course, room and teacher are already stored server-side. The
// request body carries the slots alone.
type SectionSubmission struct {
	SectionID string
	Slots     ScheduleSet
}

// SectionSource fetches the sections behind a teacher's or a student's week.
type SectionSource interface {
	ListTeacherSections(ctx context.Context, identity Identity) ([]Section, error)
	ListStudentEnrollments(ctx context.Context, identity Identity) ([]Enrollment, error)
}

// ScheduleSubmitter persists a section's schedule and runs the authoritative conflict
// check across all sections of the teacher.
type ScheduleSubmitter interface {
	SubmitSectionSchedule(ctx context.Context, identity Identity, submission SectionSubmission) error
}

// TokenVerifier verifies a bearer token and returns the caller's identity.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}
