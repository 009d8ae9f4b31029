package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sectionschedule/internal/domain"
)

type calendarService struct {
	logger         *slog.Logger
	source         domain.SectionSource
	engine         *LayoutEngine
	contextTimeout time.Duration
}

func NewCalendarService(logger *slog.Logger, source domain.SectionSource, engine *LayoutEngine, timeout time.Duration) domain.CalendarService {
	return &calendarService{
		logger:         logger,
		source:         source,
		engine:         engine,
		contextTimeout: timeout,
	}
}

// WeekFor reads the caller's sections through the read boundary that matches their role
// and lays them out.
func (s *calendarService) WeekFor(ctx context.Context, identity domain.Identity) (domain.WeekGrid, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var (
		entities []domain.ScheduledEntity
		skipped  int
	)
	switch identity.Role {
	case domain.RoleTeacher:
		sections, err := s.source.ListTeacherSections(ctx, identity)
		if err != nil {
			return domain.WeekGrid{}, fmt.Errorf("list teacher sections: %w", err)
		}
		entities, skipped = FromSections(sections)
	case domain.RoleStudent:
		enrollments, err := s.source.ListStudentEnrollments(ctx, identity)
		if err != nil {
			return domain.WeekGrid{}, fmt.Errorf("list student enrollments: %w", err)
		}
		entities, skipped = FromEnrollments(enrollments)
	default:
		return domain.WeekGrid{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedRole, identity.Role)
	}
	if skipped > 0 {
		s.logger.WarnContext(ctx, "skipped malformed slots from section service",
			"user_id", identity.UserID, "role", identity.Role, "skipped", skipped)
	}

	grid := s.engine.Grid(entities)
	grid.Skipped += skipped
	return grid, nil
}

// LayoutEntities lays out a caller-supplied entity list.
func (s *calendarService) LayoutEntities(entities []domain.ScheduledEntity) domain.WeekGrid {
	return s.engine.Grid(entities)
}
