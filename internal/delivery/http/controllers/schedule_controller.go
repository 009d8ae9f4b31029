package controllers

import (
	"log/slog"
	"net/http"

	"sectionschedule/internal/delivery/http/helpers"
	"sectionschedule/internal/domain"
)

// SlotIssue describes a slot that could not be parsed.
type SlotIssue struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// SlotConflict is a pair of overlapping slots, by position in the request.
type SlotConflict struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// ValidateScheduleResponse is the data payload for POST /schedules/validate.
type ValidateScheduleResponse struct {
	Valid     bool           `json:"valid"`
	Invalid   []SlotIssue    `json:"invalid"`
	Conflicts []SlotConflict `json:"conflicts"`
}

// ValidateScheduleSuccessResponse is the success response envelope for POST /schedules/validate (200).
type ValidateScheduleSuccessResponse struct {
	Data  ValidateScheduleResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// WeekGridSuccessResponse is the success response envelope for calendar endpoints (200).
type WeekGridSuccessResponse struct {
	Data  domain.WeekGrid   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ScheduleController struct {
	Logger   *slog.Logger
	Calendar domain.CalendarService
}

func NewScheduleController(logger *slog.Logger, calendar domain.CalendarService) *ScheduleController {
	return &ScheduleController{
		Logger:   logger,
		Calendar: calendar,
	}
}

// ValidateSchedule godoc
// @Summary Validate a full slot set
// @Description Checks every slot and reports unparsable slots and every overlapping pair. Used after bulk imports; this check is advisory and the section service stays authoritative.
// @Tags schedules
// @Accept json
// @Produce json
// @Param body body ValidateScheduleRequest true "Slots in wire format"
// @Success 200 {object} controllers.ValidateScheduleSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /schedules/validate [post]
func (c *ScheduleController) ValidateSchedule(w http.ResponseWriter, r *http.Request) {
	var req ValidateScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	resp := ValidateScheduleResponse{Invalid: []SlotIssue{}, Conflicts: []SlotConflict{}}
	var (
		parsed  domain.ScheduleSet
		indexes []int
	)
	for i, wire := range req.Slots {
		slot, err := wire.TimeSlot()
		if err != nil {
			resp.Invalid = append(resp.Invalid, SlotIssue{Index: i, Message: err.Error()})
			continue
		}
		parsed = append(parsed, slot)
		indexes = append(indexes, i)
	}
	for _, pair := range domain.OverlappingPairs(parsed) {
		resp.Conflicts = append(resp.Conflicts, SlotConflict{First: indexes[pair[0]], Second: indexes[pair[1]]})
	}
	resp.Valid = len(resp.Invalid) == 0 && len(resp.Conflicts) == 0
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// Layout godoc
// @Summary Lay out entities on the weekly grid
// @Description Positions every slot of every entity on the configured weekly grid. Malformed slots are skipped and counted, never reported as errors.
// @Tags calendar
// @Accept json
// @Produce json
// @Param body body LayoutRequest true "Entities with slots"
// @Success 200 {object} controllers.WeekGridSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /calendar/layout [post]
func (c *ScheduleController) Layout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	grid := c.Calendar.LayoutEntities(req.entities())
	helpers.WriteJSONSuccess(w, http.StatusOK, grid)
}
