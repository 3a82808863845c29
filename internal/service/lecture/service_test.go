package lecture

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/lecture"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/notification"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLectureRepo struct {
	seq      int
	lectures map[string]lecture.Lecture
}

func newFakeLectureRepo() *fakeLectureRepo {
	return &fakeLectureRepo{lectures: make(map[string]lecture.Lecture)}
}

func (f *fakeLectureRepo) slotTaken(l lecture.Lecture, excludeID string) bool {
	for _, existing := range f.lectures {
		if existing.ID == excludeID {
			continue
		}
		if existing.Date.Equal(l.Date) && existing.TimeSlot == l.TimeSlot &&
			existing.Block == l.Block && existing.Room == l.Room {
			return true
		}
	}
	return false
}

func (f *fakeLectureRepo) Create(ctx context.Context, l lecture.Lecture) (lecture.Lecture, error) {
	if f.slotTaken(l, "") {
		return lecture.Lecture{}, lecture.ErrRoomConflict
	}
	f.seq++
	l.ID = fmt.Sprintf("lec-%d", f.seq)
	f.lectures[l.ID] = l
	return l, nil
}

func (f *fakeLectureRepo) GetByID(ctx context.Context, id string) (lecture.Lecture, error) {
	l, ok := f.lectures[id]
	if !ok {
		return lecture.Lecture{}, lecture.ErrLectureNotFound
	}
	return l, nil
}

func (f *fakeLectureRepo) Update(ctx context.Context, l lecture.Lecture) (lecture.Lecture, error) {
	if _, ok := f.lectures[l.ID]; !ok {
		return lecture.Lecture{}, lecture.ErrLectureNotFound
	}
	if f.slotTaken(l, l.ID) {
		return lecture.Lecture{}, lecture.ErrRoomConflict
	}
	f.lectures[l.ID] = l
	return l, nil
}

func (f *fakeLectureRepo) UpdateStatus(ctx context.Context, id string, status lecture.Status) error {
	l, ok := f.lectures[id]
	if !ok {
		return lecture.ErrLectureNotFound
	}
	l.Status = status
	f.lectures[id] = l
	return nil
}

func (f *fakeLectureRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.lectures[id]; !ok {
		return lecture.ErrLectureNotFound
	}
	delete(f.lectures, id)
	return nil
}

func (f *fakeLectureRepo) ListByDateAndTime(ctx context.Context, date time.Time, timeSlot string) ([]lecture.Lecture, error) {
	var out []lecture.Lecture
	for _, l := range f.lectures {
		if l.Date.Equal(date) && l.TimeSlot == timeSlot {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLectureRepo) ListByDate(ctx context.Context, date time.Time, facultyID *string) ([]lecture.Lecture, error) {
	var out []lecture.Lecture
	for _, l := range f.lectures {
		if !l.Date.Equal(date) {
			continue
		}
		if facultyID != nil && l.FacultyID != *facultyID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLectureRepo) ListScheduledByFaculty(ctx context.Context, facultyID string) ([]lecture.Lecture, error) {
	var out []lecture.Lecture
	for _, l := range f.lectures {
		if l.FacultyID == facultyID && l.Status == lecture.StatusScheduled {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLectureRepo) ListByBranchAndRange(ctx context.Context, branchID string, start, end time.Time) ([]lecture.Lecture, error) {
	return nil, nil
}

func (f *fakeLectureRepo) CountByDateRange(ctx context.Context, start, end time.Time, facultyID *string) (int, error) {
	count := 0
	for _, l := range f.lectures {
		if l.Date.Before(start) || l.Date.After(end) {
			continue
		}
		if facultyID != nil && l.FacultyID != *facultyID {
			continue
		}
		count++
	}
	return count, nil
}

type fakeProfileRepo struct {
	profiles map[string]*profile.Profile
}

func newFakeProfileRepo(profiles ...*profile.Profile) *fakeProfileRepo {
	f := &fakeProfileRepo{profiles: make(map[string]*profile.Profile)}
	for _, p := range profiles {
		f.profiles[p.ID] = p
	}
	return f
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) AssignRole(ctx context.Context, profileID string, role profile.Role) error {
	return nil
}

func (f *fakeProfileRepo) CreateWithRole(ctx context.Context, p *profile.Profile, role profile.Role) error {
	return f.Create(ctx, p)
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetHODByBranch(ctx context.Context, branchID string) (*profile.Profile, error) {
	for _, p := range f.profiles {
		if p.Role == profile.RoleHOD && p.BranchID != nil && *p.BranchID == branchID {
			return p, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) ListByBranch(ctx context.Context, branchID string, role *profile.Role) ([]*profile.Profile, error) {
	var out []*profile.Profile
	for _, p := range f.profiles {
		if p.BranchID == nil || *p.BranchID != branchID {
			continue
		}
		if role != nil && p.Role != *role {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	var out []*profile.Profile
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) CountByBranchAndRole(ctx context.Context, branchID string, role profile.Role) (int, error) {
	count := 0
	for _, p := range f.profiles {
		if p.BranchID != nil && *p.BranchID == branchID && p.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	delete(f.profiles, id)
	return nil
}

type fakeNotifier struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeNotifier) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

func (f *fakeNotifier) GetNotifications(ctx context.Context, profileID string, page, pageSize int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	return nil, nil
}

func (f *fakeNotifier) GetUnreadCount(ctx context.Context, profileID string) (int, error) {
	return 0, nil
}

func (f *fakeNotifier) MarkAsRead(ctx context.Context, profileID string, req notification.MarkAsReadRequest) error {
	return nil
}

func (f *fakeNotifier) MarkAllAsRead(ctx context.Context, profileID string) error {
	return nil
}

func (f *fakeNotifier) Subscribe(ctx context.Context, profileID string) (<-chan notification.SSEEvent, func()) {
	ch := make(chan notification.SSEEvent)
	close(ch)
	return ch, func() {}
}

func (f *fakeNotifier) Stop() {}

func newTestService() (lecture.LectureService, *fakeLectureRepo, *fakeNotifier) {
	lectureRepo := newFakeLectureRepo()
	profileRepo := newFakeProfileRepo(&profile.Profile{
		ID:    "faculty-1",
		Name:  "Asha Verma",
		Email: "asha@campus.edu",
		Role:  profile.RoleFaculty,
	})
	notifier := &fakeNotifier{}
	return NewLectureService(lectureRepo, profileRepo, notifier), lectureRepo, notifier
}

func validRequest() lecture.ScheduleLectureRequest {
	return lecture.ScheduleLectureRequest{
		FacultyID: "faculty-1",
		Subject:   "Data Structures",
		Date:      "2026-09-07",
		TimeSlot:  "09:00 AM",
		Block:     "A",
		Room:      3,
		Year:      2,
	}
}

func TestScheduleLecture(t *testing.T) {
	svc, repo, notifier := newTestService()

	resp, err := svc.ScheduleLecture(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, lecture.StatusScheduled, resp.Status)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Len(t, repo.lectures, 1)

	require.Len(t, notifier.queued, 1)
	assert.Equal(t, "faculty-1", notifier.queued[0].RecipientID)
	assert.Equal(t, notification.TypeLectureScheduled, notifier.queued[0].Type)
}

func TestScheduleLectureRoomConflict(t *testing.T) {
	svc, repo, notifier := newTestService()

	_, err := svc.ScheduleLecture(context.Background(), validRequest())
	require.NoError(t, err)

	// Same slot, same room
	req := validRequest()
	req.Subject = "Operating Systems"
	_, err = svc.ScheduleLecture(context.Background(), req)
	assert.ErrorIs(t, err, lecture.ErrRoomConflict)

	// The rejected booking must not leave a row behind
	assert.Len(t, repo.lectures, 1)
	assert.Len(t, notifier.queued, 1)
}

func TestScheduleLectureDifferentRoomNoConflict(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ScheduleLecture(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Room = 4
	_, err = svc.ScheduleLecture(context.Background(), req)
	assert.NoError(t, err)

	req = validRequest()
	req.Block = "B"
	_, err = svc.ScheduleLecture(context.Background(), req)
	assert.NoError(t, err)

	req = validRequest()
	req.TimeSlot = "10:00 AM"
	_, err = svc.ScheduleLecture(context.Background(), req)
	assert.NoError(t, err)
}

func TestScheduleLectureUnknownFaculty(t *testing.T) {
	svc, repo, _ := newTestService()

	req := validRequest()
	req.FacultyID = "nobody"
	_, err := svc.ScheduleLecture(context.Background(), req)
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
	assert.Empty(t, repo.lectures)
}

func TestScheduleLectureValidation(t *testing.T) {
	svc, _, _ := newTestService()

	req := validRequest()
	req.TimeSlot = "01:00 PM"
	_, err := svc.ScheduleLecture(context.Background(), req)
	assert.Error(t, err)

	req = validRequest()
	req.Room = 16
	_, err = svc.ScheduleLecture(context.Background(), req)
	assert.Error(t, err)

	req = validRequest()
	req.Date = "07-09-2026"
	_, err = svc.ScheduleLecture(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdateLectureKeepsOwnSlot(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.ScheduleLecture(context.Background(), validRequest())
	require.NoError(t, err)

	// Changing only the subject must not conflict with the lecture's own row
	req := lecture.UpdateLectureRequest{ID: created.ID, ScheduleLectureRequest: validRequest()}
	req.Subject = "Advanced Data Structures"

	updated, err := svc.UpdateLecture(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Data Structures", updated.Subject)
}

func TestUpdateLectureConflictsWithOther(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ScheduleLecture(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.Room = 5
	second, err := svc.ScheduleLecture(context.Background(), other)
	require.NoError(t, err)

	// Moving the second lecture into the first one's room must conflict
	req := lecture.UpdateLectureRequest{ID: second.ID, ScheduleLectureRequest: validRequest()}
	_, err = svc.UpdateLecture(context.Background(), req)
	assert.ErrorIs(t, err, lecture.ErrRoomConflict)
}

func TestCheckRoomConflictNotCheckable(t *testing.T) {
	svc, _, _ := newTestService()

	check, err := svc.CheckRoomConflict(context.Background(), "", "09:00 AM", "A", 3, nil)
	require.NoError(t, err)
	assert.False(t, check.Checkable)
	assert.False(t, check.Occupied)

	check, err = svc.CheckRoomConflict(context.Background(), "2026-09-07", "09:00 AM", "A", 0, nil)
	require.NoError(t, err)
	assert.False(t, check.Checkable)

	check, err = svc.CheckRoomConflict(context.Background(), "not-a-date", "09:00 AM", "A", 3, nil)
	require.NoError(t, err)
	assert.False(t, check.Checkable)
}

func TestCheckRoomConflictOccupied(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.ScheduleLecture(context.Background(), validRequest())
	require.NoError(t, err)

	check, err := svc.CheckRoomConflict(context.Background(), "2026-09-07", "09:00 AM", "A", 3, nil)
	require.NoError(t, err)
	assert.True(t, check.Checkable)
	assert.True(t, check.Occupied)

	// Excluding the occupying lecture itself frees the slot
	check, err = svc.CheckRoomConflict(context.Background(), "2026-09-07", "09:00 AM", "A", 3, &created.ID)
	require.NoError(t, err)
	assert.True(t, check.Checkable)
	assert.False(t, check.Occupied)
}

func TestAvailableRooms(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.ScheduleLecture(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := svc.AvailableRooms(context.Background(), lecture.AvailabilityQuery{
		Date:     "2026-09-07",
		TimeSlot: "09:00 AM",
		Block:    "A",
	})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.Block)
	assert.Len(t, resp.Rooms, lecture.RoomsPerBlock-1)
	assert.NotContains(t, resp.Rooms, 3)

	// Another block is unaffected
	resp, err = svc.AvailableRooms(context.Background(), lecture.AvailabilityQuery{
		Date:     "2026-09-07",
		TimeSlot: "09:00 AM",
		Block:    "B",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, lecture.RoomsPerBlock)

	// Self-exclusion returns the lecture's own room as free
	resp, err = svc.AvailableRooms(context.Background(), lecture.AvailabilityQuery{
		Date:             "2026-09-07",
		TimeSlot:         "09:00 AM",
		Block:            "A",
		ExcludeLectureID: &created.ID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, lecture.RoomsPerBlock)
	assert.Contains(t, resp.Rooms, 3)
}

func TestSetStatus(t *testing.T) {
	svc, repo, _ := newTestService()

	created, err := svc.ScheduleLecture(context.Background(), validRequest())
	require.NoError(t, err)

	err = svc.SetStatus(context.Background(), lecture.SetStatusRequest{ID: created.ID, Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, lecture.StatusCompleted, repo.lectures[created.ID].Status)

	err = svc.SetStatus(context.Background(), lecture.SetStatusRequest{ID: created.ID, Status: "postponed"})
	assert.Error(t, err)
}

func TestListScheduledByFaculty(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.ScheduleLecture(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.Room = 7
	_, err = svc.ScheduleLecture(context.Background(), other)
	require.NoError(t, err)

	err = svc.SetStatus(context.Background(), lecture.SetStatusRequest{ID: created.ID, Status: "cancelled"})
	require.NoError(t, err)

	pending, err := svc.ListScheduledByFaculty(context.Background(), "faculty-1")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
