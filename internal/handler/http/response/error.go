package response

import (
	"errors"
	"net/http"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/attendance"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/auth"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/branch"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/lecture"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/notification"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/report"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/subject"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrRoleMismatch):
		Forbidden(w, "Account does not hold the requested role")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid access token")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or expired refresh token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, profile.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, profile.ErrRoleAlreadyAssigned):
		Conflict(w, "Profile already holds a role")
	case errors.Is(err, profile.ErrNotBranchMember):
		Forbidden(w, "Profile does not belong to this branch")

	// Branch domain errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchCodeExists):
		Conflict(w, "Branch code already exists")
	case errors.Is(err, branch.ErrBranchHasMembers):
		Conflict(w, "Branch still has members")

	// Subject domain errors
	case errors.Is(err, subject.ErrSubjectNotFound):
		NotFound(w, "Subject not found")
	case errors.Is(err, subject.ErrSubjectCodeExists):
		Conflict(w, "Subject code already exists in this branch")

	// Lecture domain errors
	case errors.Is(err, lecture.ErrLectureNotFound):
		NotFound(w, "Lecture not found")
	case errors.Is(err, lecture.ErrRoomConflict):
		Conflict(w, "Room is already booked for this slot")
	case errors.Is(err, lecture.ErrInvalidStatus):
		BadRequest(w, "Invalid lecture status", nil)

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")
	case errors.Is(err, report.ErrLectureNotReportable):
		Conflict(w, "Lecture is not available for reporting")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
