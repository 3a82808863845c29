package http

import (
	"encoding/json"
	"net/http"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/subject"
	"github.com/campusdesk/campusdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// SubjectHandler defines the subject catalog handler interface
type SubjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByYear(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type subjectHandlerImpl struct {
	subjectService subject.SubjectService
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(subjectService subject.SubjectService) SubjectHandler {
	return &subjectHandlerImpl{subjectService: subjectService}
}

// Create adds a subject to the HOD's branch catalog
func (h *subjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	branchID := getBranchIDFromContext(r)
	if branchID == nil {
		response.Forbidden(w, "No branch assigned")
		return
	}

	var req subject.CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.BranchID = *branchID

	created, err := h.subjectService.CreateSubject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Subject created", created)
}

// List returns the branch's subjects, optionally filtered by year
func (h *subjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	branchID := getBranchIDFromContext(r)
	if branchID == nil {
		response.Forbidden(w, "No branch assigned")
		return
	}

	var year *int
	if y := getIntQueryParam(r, "year", 0); y != 0 {
		year = &y
	}

	subjects, err := h.subjectService.ListSubjects(r.Context(), *branchID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, subjects)
}

// ListByYear returns the branch's subjects grouped by year level
func (h *subjectHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	branchID := getBranchIDFromContext(r)
	if branchID == nil {
		response.Forbidden(w, "No branch assigned")
		return
	}

	grouped, err := h.subjectService.ListSubjectsByYear(r.Context(), *branchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grouped)
}

// Update overwrites a subject's name, code and year
func (h *subjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req subject.UpdateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.subjectService.UpdateSubject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subject updated", updated)
}

// Delete removes a subject from the catalog
func (h *subjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Subject ID is required", nil)
		return
	}

	if err := h.subjectService.DeleteSubject(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subject deleted", nil)
}
