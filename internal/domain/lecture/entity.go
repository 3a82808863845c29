package lecture

import "time"

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

// StatusValues lists the accepted lecture statuses.
var StatusValues = []string{
	string(StatusScheduled),
	string(StatusCompleted),
	string(StatusCancelled),
	string(StatusRescheduled),
}

// TimeSlots are the teaching periods a lecture can occupy.
var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
}

// Blocks are the campus building blocks.
var Blocks = []string{"A", "B", "C", "D"}

// RoomsPerBlock is the number of rooms in each block, numbered 1..15.
const RoomsPerBlock = 15

// Years lists the valid year levels.
var Years = []int{1, 2, 3, 4}

type Lecture struct {
	ID        string
	Subject   string
	Date      time.Time
	TimeSlot  string
	Block     string
	Room      int
	Year      int
	FacultyID string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields
	FacultyName       *string
	FacultyDepartment *string
}
