package branch

import (
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/validator"
)

type CreateBranchRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	HODName     string `json:"hod_name"`
	HODEmail    string `json:"hod_email"`
	HODPassword string `json:"hod_password"`
}

func (r *CreateBranchRequest) Validate() error {
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
	} else if !validator.IsValidBranchCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 2-10 uppercase letters or digits",
		})
	}
	if validator.IsEmpty(r.HODName) {
		errs = append(errs, validator.ValidationError{
			Field:   "hod_name",
			Message: "hod_name is required",
		})
	}
	if validator.IsEmpty(r.HODEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "hod_email",
			Message: "hod_email is required",
		})
	} else if !validator.IsValidEmail(r.HODEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "hod_email",
			Message: "hod_email must be a valid email address",
		})
	}
	if len(r.HODPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "hod_password",
			Message: "hod_password must be at least 8 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBranchRequest struct {
	ID   string `json:"-"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func (r *UpdateBranchRequest) Validate() error {
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
	} else if !validator.IsValidBranchCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 2-10 uppercase letters or digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BranchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

type HODInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BranchWithStaffResponse is the registrar's branch listing row: the branch,
// its HOD (nil when none has been assigned) and the faculty headcount.
type BranchWithStaffResponse struct {
	BranchResponse
	HOD          *HODInfo `json:"hod"`
	FacultyCount int      `json:"faculty_count"`
}

type BranchDetailResponse struct {
	Branch  BranchResponse            `json:"branch"`
	HOD     *profile.ProfileResponse  `json:"hod"`
	Faculty []profile.ProfileResponse `json:"faculty"`
}

func ToResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Code:      b.Code,
		CreatedAt: b.CreatedAt,
	}
}
