package http

import (
	"encoding/json"
	"net/http"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/report"
	"github.com/campusdesk/campusdesk-backend-go/internal/handler/http/response"
)

// ReportHandler defines the lecture report handler interface
type ReportHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	DepartmentStats(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Submit records a report for one of the caller's scheduled lectures
func (h *reportHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	facultyID := getProfileIDFromContext(r)
	if facultyID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req report.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.FacultyID = facultyID

	created, err := h.reportService.SubmitReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report submitted", created)
}

// List returns reports scoped to the caller's role: faculty see their own,
// HODs see their branch, registrars see everything
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := report.ReportFilter{}

	switch getRoleFromContext(r) {
	case string(profile.RoleFaculty):
		facultyID := getProfileIDFromContext(r)
		filter.FacultyID = &facultyID
	case string(profile.RoleHOD):
		branchID := getBranchIDFromContext(r)
		if branchID == nil {
			response.Forbidden(w, "No branch assigned")
			return
		}
		filter.BranchID = branchID
	}

	if dept := r.URL.Query().Get("department"); dept != "" {
		filter.Department = &dept
	}

	reports, err := h.reportService.ListReports(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

// DepartmentStats aggregates report outcomes per department
func (h *reportHandlerImpl) DepartmentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.DepartmentStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
