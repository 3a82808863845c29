package attendance

import (
	"context"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/attendance"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/branch"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
)

type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	profileRepo    profile.ProfileRepository
	branchRepo     branch.BranchRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	profileRepo profile.ProfileRepository,
	branchRepo branch.BranchRepository,
) attendance.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		profileRepo:    profileRepo,
		branchRepo:     branchRepo,
	}
}

// Mark upserts the caller's attendance row for the date. Marking twice on
// the same day overwrites the status, last write wins.
func (s *attendanceService) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := attendance.ParseDate(req.Date)

	marked, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		ProfileID: req.ProfileID,
		Role:      req.Role,
		BranchID:  req.BranchID,
		Date:      date,
		Status:    req.Status,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(marked), nil
}

// Today retrieves the caller's row for today; nil when unmarked
func (s *attendanceService) Today(ctx context.Context, profileID string) (*attendance.AttendanceResponse, error) {
	today := attendance.ParseDate("")

	a, err := s.attendanceRepo.GetByProfileAndDate(ctx, profileID, today)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*a)
	return &resp, nil
}

// History retrieves the caller's last 30 rows, newest first
func (s *attendanceService) History(ctx context.Context, profileID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByProfile(ctx, profileID, 30)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, len(records))
	for i, a := range records {
		responses[i] = attendance.ToResponse(a)
	}

	return responses, nil
}

// ByBranch partitions the branch's faculty roster for a date into present,
// leave and notMarked
func (s *attendanceService) ByBranch(ctx context.Context, branchID string, dateStr string) (attendance.BranchAttendanceResponse, error) {
	date := attendance.ParseDate(dateStr)

	facultyRole := profile.RoleFaculty
	roster, err := s.profileRepo.ListByBranch(ctx, branchID, &facultyRole)
	if err != nil {
		return attendance.BranchAttendanceResponse{}, err
	}

	rows, err := s.attendanceRepo.ListByBranchAndDate(ctx, branchID, date)
	if err != nil {
		return attendance.BranchAttendanceResponse{}, err
	}

	return attendance.BranchAttendanceResponse{
		BranchID:        branchID,
		Date:            date.Format("2006-01-02"),
		BranchPartition: partition(roster, rows),
	}, nil
}

// AllBranches computes the partition for every branch over all of its
// profiles, HOD included. Branches with no profiles carry empty buckets.
func (s *attendanceService) AllBranches(ctx context.Context, dateStr string) (attendance.AllBranchesResponse, error) {
	date := attendance.ParseDate(dateStr)

	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return attendance.AllBranchesResponse{}, err
	}

	profiles, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		return attendance.AllBranchesResponse{}, err
	}

	rows, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return attendance.AllBranchesResponse{}, err
	}

	rosterByBranch := make(map[string][]*profile.Profile)
	for _, p := range profiles {
		if p.BranchID == nil {
			continue
		}
		rosterByBranch[*p.BranchID] = append(rosterByBranch[*p.BranchID], p)
	}

	rowsByBranch := make(map[string][]attendance.Attendance)
	for _, a := range rows {
		if a.BranchID == nil {
			continue
		}
		rowsByBranch[*a.BranchID] = append(rowsByBranch[*a.BranchID], a)
	}

	groups := make(map[string]attendance.BranchGroup, len(branches))
	for _, b := range branches {
		groups[b.ID] = attendance.BranchGroup{
			Branch:          branch.ToResponse(*b),
			BranchPartition: partition(rosterByBranch[b.ID], rowsByBranch[b.ID]),
		}
	}

	return attendance.AllBranchesResponse{
		Date:     date.Format("2006-01-02"),
		Branches: groups,
	}, nil
}

// partition splits a roster into present, leave and notMarked buckets.
// Every roster member lands in exactly one bucket; attendance rows without
// a matching roster member are ignored.
func partition(roster []*profile.Profile, rows []attendance.Attendance) attendance.BranchPartition {
	statusByProfile := make(map[string]attendance.Status, len(rows))
	for _, a := range rows {
		statusByProfile[a.ProfileID] = a.Status
	}

	p := attendance.BranchPartition{
		Present:   []attendance.MemberStatus{},
		Leave:     []attendance.MemberStatus{},
		NotMarked: []attendance.RosterMember{},
	}

	for _, member := range roster {
		status, marked := statusByProfile[member.ID]
		if !marked {
			p.NotMarked = append(p.NotMarked, attendance.RosterMember{
				ProfileID:  member.ID,
				Name:       member.Name,
				Email:      member.Email,
				Department: member.Department,
				Role:       string(member.Role),
			})
			continue
		}

		entry := attendance.MemberStatus{
			ProfileID:  member.ID,
			Name:       member.Name,
			Email:      member.Email,
			Department: member.Department,
			Role:       string(member.Role),
			Status:     status,
		}
		switch status {
		case attendance.StatusLeave:
			p.Leave = append(p.Leave, entry)
		default:
			p.Present = append(p.Present, entry)
		}
	}

	return p
}
