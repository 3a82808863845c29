package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeLectureScheduled   NotificationType = "lecture"
	TypeReportSubmitted    NotificationType = "report"
	TypeAttendanceReminder NotificationType = "attendance_reminder"
)

// Notification is an at-most-once-read message addressed to one profile.
// Rows are created by the scheduling and report flows, mutated only to
// flip the read flag, never deleted.
type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
