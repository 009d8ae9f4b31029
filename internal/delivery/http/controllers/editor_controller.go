package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"sectionschedule/internal/delivery/http/helpers"
	"sectionschedule/internal/delivery/http/middleware"
	"sectionschedule/internal/domain"
)

// EditorSuccessResponse is the success response envelope for editor endpoints.
type EditorSuccessResponse struct {
	Data  domain.Editor     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EditorController struct {
	Logger  *slog.Logger
	Service domain.EditorService
}

func NewEditorController(logger *slog.Logger, svc domain.EditorService) *EditorController {
	return &EditorController{
		Logger:  logger,
		Service: svc,
	}
}

// Open godoc
// @Summary Open a schedule editor
// @Description Starts an editing session for a section, optionally seeded with its saved slots.
// @Tags editors
// @Accept json
// @Produce json
// @Param body body OpenEditorRequest true "Section and optional seed slots"
// @Success 201 {object} controllers.EditorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: slot_conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_range"
// @Router /editors [post]
func (c *EditorController) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenEditorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	seed, err := req.seed()
	if err != nil {
		writeScheduleError(c.Logger, w, r, err)
		return
	}
	editor, err := c.Service.Open(req.SectionID, seed)
	if err != nil {
		writeScheduleError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, editor)
}

// Get godoc
// @Summary Get a schedule editor
// @Tags editors
// @Produce json
// @Param editorID path string true "Editor ID"
// @Success 200 {object} controllers.EditorSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /editors/{editorID} [get]
func (c *EditorController) Get(w http.ResponseWriter, r *http.Request) {
	editor, err := c.Service.Get(r.PathValue("editorID"))
	c.respond(w, r, editor, err)
}

// Cancel godoc
// @Summary Cancel a schedule editor
// @Description Discards the session and every unsaved change.
// @Tags editors
// @Param editorID path string true "Editor ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /editors/{editorID} [delete]
func (c *EditorController) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Cancel(r.PathValue("editorID")); err != nil {
		writeScheduleError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddSlot godoc
// @Summary Add a slot
// @Description Appends a slot. Rejected slots leave the editor unchanged.
// @Tags editors
// @Accept json
// @Produce json
// @Param editorID path string true "Editor ID"
// @Param body body SlotRequest true "Slot"
// @Success 200 {object} controllers.EditorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: slot_conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_range"
// @Router /editors/{editorID}/slots [post]
func (c *EditorController) AddSlot(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cand, err := req.candidate()
	if err != nil {
		writeScheduleError(c.Logger, w, r, err)
		return
	}
	editor, err := c.Service.AddSlot(r.PathValue("editorID"), cand.Day, cand.Start, cand.End)
	c.respond(w, r, editor, err)
}

// RemoveSlot godoc
// @Summary Remove a slot by position
// @Description Out-of-range positions leave the editor unchanged.
// @Tags editors
// @Produce json
// @Param editorID path string true "Editor ID"
// @Param index path int true "Slot position"
// @Success 200 {object} controllers.EditorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /editors/{editorID}/slots/{index} [delete]
func (c *EditorController) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "index must be an integer")
		return
	}
	editor, err := c.Service.RemoveSlot(r.PathValue("editorID"), index)
	c.respond(w, r, editor, err)
}

// Reset godoc
// @Summary Clear all slots
// @Tags editors
// @Produce json
// @Param editorID path string true "Editor ID"
// @Success 200 {object} controllers.EditorSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /editors/{editorID}/reset [post]
func (c *EditorController) Reset(w http.ResponseWriter, r *http.Request) {
	editor, err := c.Service.Reset(r.PathValue("editorID"))
	c.respond(w, r, editor, err)
}

// SetCandidate godoc
// @Summary Store the slot being typed
// @Tags editors
// @Accept json
// @Produce json
// @Param editorID path string true "Editor ID"
// @Param body body SlotRequest true "Candidate slot"
// @Success 200 {object} controllers.EditorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /editors/{editorID}/candidate [put]
func (c *EditorController) SetCandidate(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cand, err := req.candidate()
	if err != nil {
		writeScheduleError(c.Logger, w, r, err)
		return
	}
	editor, err := c.Service.SetCandidate(r.PathValue("editorID"), cand)
	c.respond(w, r, editor, err)
}

// CommitCandidate godoc
// @Summary Add the stored candidate
// @Tags editors
// @Produce json
// @Param editorID path string true "Editor ID"
// @Success 200 {object} controllers.EditorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: slot_conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_range"
// @Router /editors/{editorID}/candidate/commit [post]
func (c *EditorController) CommitCandidate(w http.ResponseWriter, r *http.Request) {
	editor, err := c.Service.CommitCandidate(r.PathValue("editorID"))
	c.respond(w, r, editor, err)
}

// Submit godoc
// @Summary Save the edited schedule
// @Description Sends the slots to the section service, which checks conflicts across all of the teacher's sections. A rejected save keeps the editor open.
// @Tags editors
// @Produce json
// @Security BearerAuth
// @Param editorID path string true "Editor ID"
// @Success 200 {object} controllers.EditorSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: submission_conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: submission_invalid"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /editors/{editorID}/submit [post]
func (c *EditorController) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	editor, err := c.Service.Submit(r.Context(), identity, r.PathValue("editorID"))
	c.respond(w, r, editor, err)
}

func (c *EditorController) respond(w http.ResponseWriter, r *http.Request, editor domain.Editor, err error) {
	if err != nil {
		writeScheduleError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, editor)
}
