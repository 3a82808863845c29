package profile

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrRoleAlreadyAssigned = errors.New("profile already has a role assigned")
	ErrNotBranchMember     = errors.New("profile does not belong to this branch")
)
