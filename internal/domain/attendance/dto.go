package attendance

import (
	"strings"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/branch"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	Status Status `json:"status"`
	Date   string `json:"date"` // optional, defaults to today

	// Filled from the authenticated profile's claims
	ProfileID string  `json:"-"`
	Role      string  `json:"-"`
	BranchID  *string `json:"-"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(string(r.Status), StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                string  `json:"id"`
	ProfileID         string  `json:"profile_id"`
	ProfileName       *string `json:"profile_name,omitempty"`
	ProfileEmail      *string `json:"profile_email,omitempty"`
	ProfileDepartment *string `json:"profile_department,omitempty"`
	Role              string  `json:"role"`
	BranchID          *string `json:"branch_id,omitempty"`
	Date              string  `json:"date"`
	Status            Status  `json:"status"`
}

// MemberStatus pairs a roster member with their attendance row.
type MemberStatus struct {
	ProfileID  string `json:"profile_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Status     Status `json:"status"`
}

// RosterMember is a roster member without an attendance row for the date.
type RosterMember struct {
	ProfileID  string `json:"profile_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// BranchPartition is the three-way split of a roster for one date. The
// buckets are pairwise disjoint and together cover the roster exactly.
type BranchPartition struct {
	Present   []MemberStatus `json:"present"`
	Leave     []MemberStatus `json:"leave"`
	NotMarked []RosterMember `json:"not_marked"`
}

// Counts returns the bucket cardinalities as (present, leave, notMarked).
func (p BranchPartition) Counts() (int, int, int) {
	return len(p.Present), len(p.Leave), len(p.NotMarked)
}

type BranchAttendanceResponse struct {
	BranchID string `json:"branch_id"`
	Date     string `json:"date"`
	BranchPartition
}

// BranchGroup is one entry of the all-branches view: the branch's
// descriptive fields plus its partition. Branches with no profiles carry
// three empty buckets.
type BranchGroup struct {
	Branch branch.BranchResponse `json:"branch"`
	BranchPartition
}

type AllBranchesResponse struct {
	Date     string                 `json:"date"`
	Branches map[string]BranchGroup `json:"branches"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                a.ID,
		ProfileID:         a.ProfileID,
		ProfileName:       a.ProfileName,
		ProfileEmail:      a.ProfileEmail,
		ProfileDepartment: a.ProfileDepartment,
		Role:              a.Role,
		BranchID:          a.BranchID,
		Date:              a.Date.Format("2006-01-02"),
		Status:            a.Status,
	}
}

// ParseDate parses the optional request date, defaulting to today (UTC).
func ParseDate(dateStr string) time.Time {
	if dateStr == "" {
		return time.Now().UTC().Truncate(24 * time.Hour)
	}
	date, _ := time.Parse("2006-01-02", dateStr)
	return date
}
