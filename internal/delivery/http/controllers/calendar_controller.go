package controllers

import (
	"log/slog"
	"net/http"

	"sectionschedule/internal/delivery/http/helpers"
	"sectionschedule/internal/delivery/http/middleware"
	"sectionschedule/internal/domain"
)

type CalendarController struct {
	Logger  *slog.Logger
	Service domain.CalendarService
}

func NewCalendarController(logger *slog.Logger, svc domain.CalendarService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
	}
}

// MyWeek godoc
// @Summary Get the caller's weekly calendar
// @Description Teachers get their own sections; students get the sections of their active enrollments.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.WeekGridSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: unsupported_role"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /calendar/me [get]
func (c *CalendarController) MyWeek(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	grid, err := c.Service.WeekFor(r.Context(), identity)
	if err != nil {
		writeScheduleError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, grid)
}
