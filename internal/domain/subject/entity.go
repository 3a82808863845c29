package subject

import "time"

// Subject is a catalog entry used to populate the lecture-creation picker.
// Lectures keep the subject name as free text rather than a reference.
type Subject struct {
	ID        string
	Name      string
	Code      string
	Year      int
	BranchID  string
	CreatedAt time.Time
}

// Years lists the valid year levels.
var Years = []int{1, 2, 3, 4}
