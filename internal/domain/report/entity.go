package report

import "time"

// Durations are the accepted lecture durations in minutes.
var Durations = []int{30, 45, 60, 75, 90, 120}

// LectureReport records the outcome of a scheduled lecture. Subject and
// date are denormalized from the lecture at submission time so reports
// survive lecture deletion.
type LectureReport struct {
	ID           string
	LectureID    string
	FacultyID    string
	Subject      string
	Date         time.Time
	TopicCovered string
	Duration     int
	Status       string
	Remarks      *string
	CreatedAt    time.Time

	// Join fields
	FacultyName       *string
	FacultyDepartment *string
	FacultyBranchID   *string
}
