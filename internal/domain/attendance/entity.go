package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLeave   Status = "leave"
)

// StatusValues lists the accepted attendance statuses.
var StatusValues = []string{
	string(StatusPresent),
	string(StatusLeave),
}

// Attendance is one row per (profile, date). A unique index on
// (profile_id, date) backs that invariant; marking twice on the same day
// updates the status in place, last write wins.
type Attendance struct {
	ID        string
	ProfileID string
	Role      string
	BranchID  *string
	Date      time.Time
	Status    Status
	CreatedAt time.Time

	// Join fields
	ProfileName       *string
	ProfileEmail      *string
	ProfileDepartment *string
}
