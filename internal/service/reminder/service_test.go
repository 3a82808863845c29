package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/attendance"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/notification"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profiles []*profile.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	f.profiles = append(f.profiles, p)
	return nil
}

func (f *fakeProfileRepo) AssignRole(ctx context.Context, profileID string, role profile.Role) error {
	return nil
}

func (f *fakeProfileRepo) CreateWithRole(ctx context.Context, p *profile.Profile, role profile.Role) error {
	return f.Create(ctx, p)
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetHODByBranch(ctx context.Context, branchID string) (*profile.Profile, error) {
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) ListByBranch(ctx context.Context, branchID string, role *profile.Role) ([]*profile.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	return f.profiles, nil
}

func (f *fakeProfileRepo) CountByBranchAndRole(ctx context.Context, branchID string, role profile.Role) (int, error) {
	return 0, nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeAttendanceRepo struct {
	rows []attendance.Attendance
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.rows = append(f.rows, a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByProfileAndDate(ctx context.Context, profileID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByBranchAndDate(ctx context.Context, branchID string, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return f.rows, nil
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

func TestRunRemindsUnmarkedProfiles(t *testing.T) {
	profileRepo := &fakeProfileRepo{profiles: []*profile.Profile{
		{ID: "f1", Name: "Faculty One", Role: profile.RoleFaculty},
		{ID: "f2", Name: "Faculty Two", Role: profile.RoleFaculty},
		{ID: "h1", Name: "HOD", Role: profile.RoleHOD},
	}}
	attendanceRepo := &fakeAttendanceRepo{rows: []attendance.Attendance{
		{ID: "a1", ProfileID: "f1", Status: attendance.StatusPresent},
	}}
	notifier := &fakeNotifier{}

	// Hour gate 0 so the reminder is always due
	svc := NewReminderService(profileRepo, attendanceRepo, notifier, 0)

	require.NoError(t, svc.Run(context.Background()))

	require.Len(t, notifier.queued, 2)
	recipients := map[string]bool{}
	for _, n := range notifier.queued {
		assert.Equal(t, notification.TypeAttendanceReminder, n.Type)
		recipients[n.RecipientID] = true
	}
	assert.True(t, recipients["f2"])
	assert.True(t, recipients["h1"])
	assert.False(t, recipients["f1"])
}

func TestRunOncePerDay(t *testing.T) {
	profileRepo := &fakeProfileRepo{profiles: []*profile.Profile{
		{ID: "f1", Name: "Faculty One", Role: profile.RoleFaculty},
	}}
	notifier := &fakeNotifier{}
	svc := NewReminderService(profileRepo, &fakeAttendanceRepo{}, notifier, 0)

	require.NoError(t, svc.Run(context.Background()))
	require.NoError(t, svc.Run(context.Background()))

	// The second run within the same day is a no-op
	assert.Len(t, notifier.queued, 1)
}

func TestRunBeforeReminderHour(t *testing.T) {
	profileRepo := &fakeProfileRepo{profiles: []*profile.Profile{
		{ID: "f1", Name: "Faculty One", Role: profile.RoleFaculty},
	}}
	notifier := &fakeNotifier{}

	// An hour gate that can never be reached keeps the batch unsent
	svc := NewReminderService(profileRepo, &fakeAttendanceRepo{}, notifier, 24)

	require.NoError(t, svc.Run(context.Background()))
	assert.Empty(t, notifier.queued)
}
