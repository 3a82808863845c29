package lecture

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/lecture"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/notification"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
)

type lectureService struct {
	lectureRepo         lecture.LectureRepository
	profileRepo         profile.ProfileRepository
	notificationService notification.Service
}

// NewLectureService creates a new lecture service
func NewLectureService(
	lectureRepo lecture.LectureRepository,
	profileRepo profile.ProfileRepository,
	notificationService notification.Service,
) lecture.LectureService {
	return &lectureService{
		lectureRepo:         lectureRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
	}
}

// ScheduleLecture creates a lecture after a room conflict pre-check. The
// pre-check gives a friendly error for the common case; the unique index
// on (date, time_slot, block, room) is the authority under concurrency.
func (s *lectureService) ScheduleLecture(ctx context.Context, req lecture.ScheduleLectureRequest) (lecture.LectureResponse, error) {
	if err := req.Validate(); err != nil {
		return lecture.LectureResponse{}, err
	}

	if _, err := s.profileRepo.GetByID(ctx, req.FacultyID); err != nil {
		return lecture.LectureResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	check, err := s.CheckRoomConflict(ctx, req.Date, req.TimeSlot, req.Block, req.Room, nil)
	if err != nil {
		return lecture.LectureResponse{}, err
	}
	if check.Occupied {
		return lecture.LectureResponse{}, lecture.ErrRoomConflict
	}

	now := time.Now()
	created, err := s.lectureRepo.Create(ctx, lecture.Lecture{
		Subject:   req.Subject,
		Date:      date,
		TimeSlot:  req.TimeSlot,
		Block:     req.Block,
		Room:      req.Room,
		Year:      req.Year,
		FacultyID: req.FacultyID,
		Status:    lecture.StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return lecture.LectureResponse{}, err
	}

	s.notifyFaculty(ctx, created)

	full, err := s.lectureRepo.GetByID(ctx, created.ID)
	if err != nil {
		return lecture.ToResponse(created), nil
	}

	return lecture.ToResponse(full), nil
}

// notifyFaculty queues the assignment notification, best effort
func (s *lectureService) notifyFaculty(ctx context.Context, l lecture.Lecture) {
	err := s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: l.FacultyID,
		Type:        notification.TypeLectureScheduled,
		Title:       "New Lecture Scheduled",
		Message: fmt.Sprintf("%s on %s at %s, Block %s Room %d",
			l.Subject, l.Date.Format("2006-01-02"), l.TimeSlot, l.Block, l.Room),
	})
	if err != nil {
		slog.Warn("failed to queue lecture notification", "lecture_id", l.ID, "error", err)
	}
}

// UpdateLecture overwrites the mutable fields. The conflict check excludes
// the lecture itself so an unchanged slot never conflicts with its own row.
func (s *lectureService) UpdateLecture(ctx context.Context, req lecture.UpdateLectureRequest) (lecture.LectureResponse, error) {
	if err := req.Validate(); err != nil {
		return lecture.LectureResponse{}, err
	}

	existing, err := s.lectureRepo.GetByID(ctx, req.ID)
	if err != nil {
		return lecture.LectureResponse{}, err
	}

	if _, err := s.profileRepo.GetByID(ctx, req.FacultyID); err != nil {
		return lecture.LectureResponse{}, err
	}

	check, err := s.CheckRoomConflict(ctx, req.Date, req.TimeSlot, req.Block, req.Room, &req.ID)
	if err != nil {
		return lecture.LectureResponse{}, err
	}
	if check.Occupied {
		return lecture.LectureResponse{}, lecture.ErrRoomConflict
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing.Subject = req.Subject
	existing.Date = date
	existing.TimeSlot = req.TimeSlot
	existing.Block = req.Block
	existing.Room = req.Room
	existing.Year = req.Year
	existing.FacultyID = req.FacultyID

	updated, err := s.lectureRepo.Update(ctx, existing)
	if err != nil {
		return lecture.LectureResponse{}, err
	}

	return lecture.ToResponse(updated), nil
}

// DeleteLecture removes a lecture unconditionally
func (s *lectureService) DeleteLecture(ctx context.Context, id string) error {
	return s.lectureRepo.Delete(ctx, id)
}

// SetStatus sets the lecture status without guarding transitions
func (s *lectureService) SetStatus(ctx context.Context, req lecture.SetStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.lectureRepo.UpdateStatus(ctx, req.ID, lecture.Status(req.Status))
}

// CheckRoomConflict reports whether the slot is already occupied. When any
// input is missing the check is skipped and reported as not checkable.
func (s *lectureService) CheckRoomConflict(ctx context.Context, dateStr, timeSlot, block string, room int, excludeLectureID *string) (lecture.ConflictCheckResponse, error) {
	if dateStr == "" || timeSlot == "" || block == "" || room == 0 {
		return lecture.ConflictCheckResponse{Checkable: false, Occupied: false}, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return lecture.ConflictCheckResponse{Checkable: false, Occupied: false}, nil
	}

	occupants, err := s.lectureRepo.ListByDateAndTime(ctx, date, timeSlot)
	if err != nil {
		return lecture.ConflictCheckResponse{}, err
	}

	for _, l := range occupants {
		if excludeLectureID != nil && l.ID == *excludeLectureID {
			continue
		}
		if l.Block == block && l.Room == room {
			return lecture.ConflictCheckResponse{Checkable: true, Occupied: true}, nil
		}
	}

	return lecture.ConflictCheckResponse{Checkable: true, Occupied: false}, nil
}

// AvailableRooms enumerates the free rooms of a block for a (date, timeSlot)
// pair, honoring the same self-exclusion rule as the conflict check
func (s *lectureService) AvailableRooms(ctx context.Context, q lecture.AvailabilityQuery) (lecture.AvailableRoomsResponse, error) {
	date, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return lecture.AvailableRoomsResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	occupants, err := s.lectureRepo.ListByDateAndTime(ctx, date, q.TimeSlot)
	if err != nil {
		return lecture.AvailableRoomsResponse{}, err
	}

	taken := make(map[int]bool)
	for _, l := range occupants {
		if q.ExcludeLectureID != nil && l.ID == *q.ExcludeLectureID {
			continue
		}
		if l.Block == q.Block {
			taken[l.Room] = true
		}
	}

	rooms := make([]int, 0, lecture.RoomsPerBlock)
	for room := 1; room <= lecture.RoomsPerBlock; room++ {
		if !taken[room] {
			rooms = append(rooms, room)
		}
	}

	return lecture.AvailableRoomsResponse{Block: q.Block, Rooms: rooms}, nil
}

// ListTodayLectures retrieves today's lectures, optionally for one faculty
func (s *lectureService) ListTodayLectures(ctx context.Context, facultyID *string) ([]lecture.LectureResponse, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	lectures, err := s.lectureRepo.ListByDate(ctx, today, facultyID)
	if err != nil {
		return nil, err
	}

	return lecture.ToResponses(lectures), nil
}

// ListScheduledByFaculty retrieves a faculty's pending lectures
func (s *lectureService) ListScheduledByFaculty(ctx context.Context, facultyID string) ([]lecture.LectureResponse, error) {
	lectures, err := s.lectureRepo.ListScheduledByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	return lecture.ToResponses(lectures), nil
}

// ListByBranchAndRange retrieves a branch's lectures within a date range
func (s *lectureService) ListByBranchAndRange(ctx context.Context, branchID, startDate, endDate string) ([]lecture.LectureResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	lectures, err := s.lectureRepo.ListByBranchAndRange(ctx, branchID, start, end)
	if err != nil {
		return nil, err
	}

	return lecture.ToResponses(lectures), nil
}

// WeeklyCount counts lectures in the current week (Monday to Sunday)
func (s *lectureService) WeeklyCount(ctx context.Context, facultyID *string) (lecture.WeeklyCountResponse, error) {
	now := time.Now().UTC()
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := now.Truncate(24 * time.Hour).AddDate(0, 0, -(weekday - 1))
	end := start.AddDate(0, 0, 6)

	count, err := s.lectureRepo.CountByDateRange(ctx, start, end, facultyID)
	if err != nil {
		return lecture.WeeklyCountResponse{}, err
	}

	return lecture.WeeklyCountResponse{Count: count}, nil
}
