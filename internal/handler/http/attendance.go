package http

import (
	"encoding/json"
	"net/http"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/attendance"
	"github.com/campusdesk/campusdesk-backend-go/internal/handler/http/response"
)

// AttendanceHandler defines the attendance handler interface
type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	ByBranch(w http.ResponseWriter, r *http.Request)
	AllBranches(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark upserts the caller's attendance row for the day
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	profileID := getProfileIDFromContext(r)
	if profileID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ProfileID = profileID
	req.Role = getRoleFromContext(r)
	req.BranchID = getBranchIDFromContext(r)

	marked, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", marked)
}

// Today returns the caller's row for today; null data when unmarked
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	profileID := getProfileIDFromContext(r)
	if profileID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	today, err := h.attendanceService.Today(r.Context(), profileID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, today)
}

// History returns the caller's recent attendance, newest first
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	profileID := getProfileIDFromContext(r)
	if profileID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	history, err := h.attendanceService.History(r.Context(), profileID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// ByBranch partitions the HOD's branch roster for a date
func (h *attendanceHandlerImpl) ByBranch(w http.ResponseWriter, r *http.Request) {
	branchID := getBranchIDFromContext(r)
	if branchID == nil {
		response.Forbidden(w, "No branch assigned")
		return
	}

	result, err := h.attendanceService.ByBranch(r.Context(), *branchID, r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AllBranches computes the partition for every branch
func (h *attendanceHandlerImpl) AllBranches(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.AllBranches(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
