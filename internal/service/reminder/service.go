package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/attendance"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/notification"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
)

// Service nudges profiles that have not marked attendance for the day.
// It is meant to run hourly from the cron scheduler; the configured hour
// gate and the last-sent date keep it to one reminder batch per day.
type Service struct {
	profileRepo         profile.ProfileRepository
	attendanceRepo      attendance.AttendanceRepository
	notificationService notification.Service
	hourUTC             int

	mu       sync.Mutex
	lastSent string
}

// NewReminderService creates a new reminder service
func NewReminderService(
	profileRepo profile.ProfileRepository,
	attendanceRepo attendance.AttendanceRepository,
	notificationService notification.Service,
	hourUTC int,
) *Service {
	return &Service{
		profileRepo:         profileRepo,
		attendanceRepo:      attendanceRepo,
		notificationService: notificationService,
		hourUTC:             hourUTC,
	}
}

// Run checks the hour gate and sends the daily batch when due
func (s *Service) Run(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Hour() < s.hourUTC {
		return nil
	}

	today := now.Truncate(24 * time.Hour)
	dateKey := today.Format("2006-01-02")

	s.mu.Lock()
	if s.lastSent == dateKey {
		s.mu.Unlock()
		return nil
	}
	s.lastSent = dateKey
	s.mu.Unlock()

	return s.sendReminders(ctx, today)
}

// sendReminders queues a reminder for every profile without an attendance
// row for the date
func (s *Service) sendReminders(ctx context.Context, date time.Time) error {
	profiles, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}

	rows, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("list attendance: %w", err)
	}

	marked := make(map[string]bool, len(rows))
	for _, a := range rows {
		marked[a.ProfileID] = true
	}

	sent := 0
	for _, p := range profiles {
		if marked[p.ID] {
			continue
		}

		err := s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: p.ID,
			Type:        notification.TypeAttendanceReminder,
			Title:       "Attendance Reminder",
			Message:     "You have not marked your attendance for today",
		})
		if err != nil {
			slog.Warn("failed to queue attendance reminder", "profile_id", p.ID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("attendance reminders sent", "date", date.Format("2006-01-02"), "count", sent)
	return nil
}
