package profile

import "time"

type Role string

const (
	RoleFaculty   Role = "faculty"   // Teaching staff - submits reports, marks own attendance
	RoleHOD       Role = "hod"       // Head of Department - schedules lectures, oversees a branch
	RoleRegistrar Role = "registrar" // Institution-wide oversight and branch administration
)

// RoleValues lists the accepted role strings.
var RoleValues = []string{
	string(RoleFaculty),
	string(RoleHOD),
	string(RoleRegistrar),
}

type Profile struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Department   string
	BranchID     *string
	Role         Role
	CreatedAt    time.Time
}

// IsHOD checks if the profile holds the head-of-department role
func (p *Profile) IsHOD() bool {
	return p.Role == RoleHOD
}

// IsRegistrar checks if the profile holds the registrar role
func (p *Profile) IsRegistrar() bool {
	return p.Role == RoleRegistrar
}
