package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"sectionschedule/internal/delivery/http/helpers"
	"sectionschedule/internal/domain"
)

// SlotConflictDetails is attached to slot_conflict errors.
type SlotConflictDetails struct {
	Conflicting domain.TimeSlot `json:"conflicting"`
}

// writeScheduleError maps domain errors to API errors. Local conflicts found while adding
// a slot and conflicts rejected by the section service on save get different codes.
func writeScheduleError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		rangeErr    *domain.InvalidRangeError
		conflictErr *domain.ConflictError
		slotErr     *domain.InvalidSlotError
		submitErr   *domain.SubmissionError
	)
	switch {
	case errors.Is(err, domain.ErrEditorNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "editor not found")
	case errors.As(err, &rangeErr):
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeInvalidRange, rangeErr.Error())
	case errors.As(err, &conflictErr):
		helpers.WriteJSONErrorDetails(w, http.StatusConflict, helpers.ErrCodeSlotConflict, conflictErr.Error(),
			SlotConflictDetails{Conflicting: conflictErr.Conflicting})
	case errors.As(err, &submitErr):
		if submitErr.Code == domain.SubmissionScheduleConflict {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeSubmissionConflict,
				"cannot save: "+submitErr.Message)
			return
		}
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeSubmissionInvalid, submitErr.Error())
	case errors.Is(err, domain.ErrUnsupportedRole):
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnsupportedRole, err.Error())
	case errors.Is(err, domain.ErrInvalidDay), errors.Is(err, domain.ErrInvalidTime),
		errors.Is(err, domain.ErrNoCandidate), errors.As(err, &slotErr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrUpstream):
		logger.WarnContext(r.Context(), "section service failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstream, "section service unavailable")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
