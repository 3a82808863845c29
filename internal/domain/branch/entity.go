package branch

import "time"

type Branch struct {
	ID        string
	Name      string
	Code      string
	CreatedAt time.Time
}
