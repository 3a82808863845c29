package http

import (
	"encoding/json"
	"net/http"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// ProfileHandler defines the faculty roster handler interface
type ProfileHandler interface {
	CreateFaculty(w http.ResponseWriter, r *http.Request)
	ListBranchFaculty(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService profile.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &profileHandlerImpl{profileService: profileService}
}

// CreateFaculty creates a faculty account inside the HOD's branch. The
// branch and department come from the HOD's own profile, never the body.
func (h *profileHandlerImpl) CreateFaculty(w http.ResponseWriter, r *http.Request) {
	branchID := getBranchIDFromContext(r)
	if branchID == nil {
		response.Forbidden(w, "No branch assigned")
		return
	}

	hod, err := h.profileService.GetProfile(r.Context(), getProfileIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req profile.CreateFacultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.BranchID = *branchID
	req.Department = hod.Department

	created, err := h.profileService.CreateFaculty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Faculty created", created)
}

// ListBranchFaculty returns the HOD's branch faculty roster
func (h *profileHandlerImpl) ListBranchFaculty(w http.ResponseWriter, r *http.Request) {
	branchID := getBranchIDFromContext(r)
	if branchID == nil {
		response.Forbidden(w, "No branch assigned")
		return
	}

	faculty, err := h.profileService.ListBranchFaculty(r.Context(), *branchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, faculty)
}

// Get returns a single profile
func (h *profileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Profile ID is required", nil)
		return
	}

	p, err := h.profileService.GetProfile(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}
