package http

import (
	"encoding/json"
	"net/http"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/lecture"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// LectureHandler defines the timetable handler interface
type LectureHandler interface {
	Schedule(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	CheckConflict(w http.ResponseWriter, r *http.Request)
	AvailableRooms(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListByBranch(w http.ResponseWriter, r *http.Request)
	WeeklyCount(w http.ResponseWriter, r *http.Request)
}

type lectureHandlerImpl struct {
	lectureService lecture.LectureService
}

// NewLectureHandler creates a new lecture handler
func NewLectureHandler(lectureService lecture.LectureService) LectureHandler {
	return &lectureHandlerImpl{lectureService: lectureService}
}

// Schedule creates a lecture after the room conflict check
func (h *lectureHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	var req lecture.ScheduleLectureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.lectureService.ScheduleLecture(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Lecture scheduled", created)
}

// Update overwrites the mutable fields of a lecture
func (h *lectureHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req lecture.UpdateLectureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.lectureService.UpdateLecture(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lecture updated", updated)
}

// Delete removes a lecture
func (h *lectureHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Lecture ID is required", nil)
		return
	}

	if err := h.lectureService.DeleteLecture(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lecture deleted", nil)
}

// SetStatus sets the lecture status
func (h *lectureHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req lecture.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.lectureService.SetStatus(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lecture status updated", nil)
}

// CheckConflict reports whether a slot is already occupied
func (h *lectureHandlerImpl) CheckConflict(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var exclude *string
	if id := q.Get("exclude_lecture_id"); id != "" {
		exclude = &id
	}

	result, err := h.lectureService.CheckRoomConflict(
		r.Context(),
		q.Get("date"),
		q.Get("time_slot"),
		q.Get("block"),
		getIntQueryParam(r, "room", 0),
		exclude,
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AvailableRooms enumerates the free rooms of a block for a slot
func (h *lectureHandlerImpl) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := lecture.AvailabilityQuery{
		Date:     q.Get("date"),
		TimeSlot: q.Get("time_slot"),
		Block:    q.Get("block"),
	}
	if id := q.Get("exclude_lecture_id"); id != "" {
		query.ExcludeLectureID = &id
	}

	if query.Date == "" || query.TimeSlot == "" || query.Block == "" {
		response.BadRequest(w, "date, time_slot and block are required", nil)
		return
	}

	result, err := h.lectureService.AvailableRooms(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListToday returns today's lectures. Faculty see only their own rows.
func (h *lectureHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	var facultyID *string
	if getRoleFromContext(r) == string(profile.RoleFaculty) {
		id := getProfileIDFromContext(r)
		facultyID = &id
	}

	lectures, err := h.lectureService.ListTodayLectures(r.Context(), facultyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, lectures)
}

// ListPending returns the caller's lectures still awaiting a report
func (h *lectureHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	facultyID := getProfileIDFromContext(r)
	if facultyID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	lectures, err := h.lectureService.ListScheduledByFaculty(r.Context(), facultyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, lectures)
}

// ListByBranch returns the HOD's branch lectures within a date range
func (h *lectureHandlerImpl) ListByBranch(w http.ResponseWriter, r *http.Request) {
	branchID := getBranchIDFromContext(r)
	if branchID == nil {
		response.Forbidden(w, "No branch assigned")
		return
	}

	q := r.URL.Query()
	start := q.Get("start_date")
	end := q.Get("end_date")
	if start == "" || end == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	lectures, err := h.lectureService.ListByBranchAndRange(r.Context(), *branchID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, lectures)
}

// WeeklyCount counts this week's lectures. Faculty see only their own.
func (h *lectureHandlerImpl) WeeklyCount(w http.ResponseWriter, r *http.Request) {
	var facultyID *string
	if getRoleFromContext(r) == string(profile.RoleFaculty) {
		id := getProfileIDFromContext(r)
		facultyID = &id
	}

	count, err := h.lectureService.WeeklyCount(r.Context(), facultyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, count)
}
