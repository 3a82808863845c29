package lecture

import (
	"strings"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/validator"
)

type ScheduleLectureRequest struct {
	FacultyID string `json:"faculty_id"`
	Subject   string `json:"subject"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	Block     string `json:"block"`
	Room      int    `json:"room"`
	Year      int    `json:"year"`
}

func (r *ScheduleLectureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FacultyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "faculty_id",
			Message: "faculty_id is required",
		})
	}
	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.TimeSlot, TimeSlots) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_slot",
			Message: "time_slot must be one of: " + strings.Join(TimeSlots, ", "),
		})
	}
	if !validator.IsInSlice(r.Block, Blocks) {
		errs = append(errs, validator.ValidationError{
			Field:   "block",
			Message: "block must be one of: " + strings.Join(Blocks, ", "),
		})
	}
	if r.Room < 1 || r.Room > RoomsPerBlock {
		errs = append(errs, validator.ValidationError{
			Field:   "room",
			Message: "room must be between 1 and " + validator.Itoa(RoomsPerBlock),
		})
	}
	if !validator.IsInIntSlice(r.Year, Years) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1 and 4",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLectureRequest struct {
	ID string `json:"-"`
	ScheduleLectureRequest
}

type SetStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AvailabilityQuery struct {
	Date             string
	TimeSlot         string
	Block            string
	ExcludeLectureID *string
}

type LectureResponse struct {
	ID                string    `json:"id"`
	Subject           string    `json:"subject"`
	Date              string    `json:"date"`
	TimeSlot          string    `json:"time_slot"`
	Block             string    `json:"block"`
	Room              int       `json:"room"`
	Year              int       `json:"year"`
	FacultyID         string    `json:"faculty_id"`
	FacultyName       *string   `json:"faculty_name,omitempty"`
	FacultyDepartment *string   `json:"faculty_department,omitempty"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

type AvailableRoomsResponse struct {
	Block string `json:"block"`
	Rooms []int  `json:"rooms"`
}

type ConflictCheckResponse struct {
	Checkable bool `json:"checkable"`
	Occupied  bool `json:"occupied"`
}

type WeeklyCountResponse struct {
	Count int `json:"count"`
}

func ToResponse(l Lecture) LectureResponse {
	return LectureResponse{
		ID:                l.ID,
		Subject:           l.Subject,
		Date:              l.Date.Format("2006-01-02"),
		TimeSlot:          l.TimeSlot,
		Block:             l.Block,
		Room:              l.Room,
		Year:              l.Year,
		FacultyID:         l.FacultyID,
		FacultyName:       l.FacultyName,
		FacultyDepartment: l.FacultyDepartment,
		Status:            l.Status,
		CreatedAt:         l.CreatedAt,
	}
}

func ToResponses(lectures []Lecture) []LectureResponse {
	responses := make([]LectureResponse, len(lectures))
	for i, l := range lectures {
		responses[i] = ToResponse(l)
	}
	return responses
}
