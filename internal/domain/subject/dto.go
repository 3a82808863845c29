package subject

import (
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/validator"
)

type CreateSubjectRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Year int    `json:"year"`

	// Filled from the authenticated HOD's claims
	BranchID string `json:"-"`
}

func (r *CreateSubjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidSubjectCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 2-20 letters, digits or separators",
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

type UpdateSubjectRequest struct {
	ID   string `json:"-"`
	Name string `json:"name"`
	Code string `json:"code"`
	Year int    `json:"year"`
}

func (r *UpdateSubjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
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

type SubjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Year      int       `json:"year"`
	BranchID  string    `json:"branch_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(s Subject) SubjectResponse {
	return SubjectResponse{
		ID:        s.ID,
		Name:      s.Name,
		Code:      s.Code,
		Year:      s.Year,
		BranchID:  s.BranchID,
		CreatedAt: s.CreatedAt,
	}
}
