package http

import (
	"encoding/json"
	"net/http"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/branch"
	"github.com/campusdesk/campusdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// BranchHandler defines the branch administration handler interface
type BranchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListWithStaff(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type branchHandlerImpl struct {
	branchService branch.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService branch.BranchService) BranchHandler {
	return &branchHandlerImpl{branchService: branchService}
}

// Create runs the branch-creation saga
func (h *branchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req branch.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.branchService.CreateBranch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Branch created", created)
}

// List returns all branches
func (h *branchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchService.ListBranches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, branches)
}

// ListWithStaff returns all branches with HOD and faculty count
func (h *branchHandlerImpl) ListWithStaff(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchService.ListBranchesWithStaff(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, branches)
}

// Detail returns a branch with its HOD and faculty roster
func (h *branchHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Branch ID is required", nil)
		return
	}

	detail, err := h.branchService.GetBranchDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// Update overwrites a branch's name and code
func (h *branchHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req branch.UpdateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.branchService.UpdateBranch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch updated", updated)
}

// Delete removes a branch without members
func (h *branchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Branch ID is required", nil)
		return
	}

	if err := h.branchService.DeleteBranch(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch deleted", nil)
}
