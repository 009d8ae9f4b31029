package sectionapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"sectionschedule/internal/domain"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// legacyConflictKeywords are matched against free-text error messages from services that
// do not yet send a typed error code.
var legacyConflictKeywords = []string{"profesor", "horario", "cruce", "conflict", "overlap"}

// Client talks to the section/enrollment REST service.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a client for the section service at baseURL.
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

// ListTeacherSections returns the sections taught by the caller.
func (c *Client) ListTeacherSections(ctx context.Context, identity domain.Identity) ([]domain.Section, error) {
	var sections []domain.Section
	if err := c.getJSON(ctx, identity, "/secciones/profesor/"+url.PathEscape(identity.UserID), &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// ListStudentEnrollments returns the caller's enrollments, each wrapping its section.
func (c *Client) ListStudentEnrollments(ctx context.Context, identity domain.Identity) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	if err := c.getJSON(ctx, identity, "/matriculas/estudiante/"+url.PathEscape(identity.UserID), &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

type submitScheduleRequest struct {
	Horarios []domain.TimeSlotWire `json:"horarios"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SubmitSectionSchedule replaces the weekly slots of a section. Rejections come back as
// *domain.SubmissionError; transport and server failures wrap domain.ErrUpstream.
func (c *Client) SubmitSectionSchedule(ctx context.Context, identity domain.Identity, submission domain.SectionSubmission) error {
	body, err := json.Marshal(submitScheduleRequest{Horarios: domain.ToWireList(submission.Slots)})
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	endpoint := c.baseURL + "/secciones/" + url.PathEscape(submission.SectionID) + "/horarios"
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setAuth(req, identity)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: section api returned status: %d", domain.ErrUpstream, resp.StatusCode)
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifySubmissionError(resp.StatusCode, raw)
	}
}

func (c *Client) getJSON(ctx context.Context, identity domain.Identity, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	setAuth(req, identity)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: section api returned status: %d", domain.ErrUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode section api response: %v", domain.ErrUpstream, err)
	}
	return nil
}

func setAuth(req *http.Request, identity domain.Identity) {
	if identity.Token != "" {
		req.Header.Set("Authorization", "Bearer "+identity.Token)
	}
}

// classifySubmissionError prefers the typed code, then the status, and falls back to
// keyword matching for services that only send a message.
func classifySubmissionError(status int, raw []byte) *domain.SubmissionError {
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		body.Message = strings.TrimSpace(string(raw))
	}
	message := body.Message
	if message == "" {
		message = body.Error
	}

	serr := &domain.SubmissionError{Status: status, Message: message, Code: domain.SubmissionUnknown}
	if body.Code != "" {
		serr.Code = domain.ParseSubmissionErrorCode(body.Code)
		if serr.Code == domain.SubmissionUnknown && status == http.StatusConflict {
			serr.Code = domain.SubmissionScheduleConflict
		}
		return serr
	}
	switch {
	case status == http.StatusConflict:
		serr.Code = domain.SubmissionScheduleConflict
	case mentionsConflict(message):
		serr.Code = domain.SubmissionScheduleConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		serr.Code = domain.SubmissionValidation
	}
	return serr
}

func mentionsConflict(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range legacyConflictKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
