package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/config"
	appHTTP "github.com/campusdesk/campusdesk-backend-go/internal/handler/http"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/cron"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/database"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/jwt"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/oauth"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/sse"
	"github.com/campusdesk/campusdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/campusdesk/campusdesk-backend-go/internal/service/attendance"
	authService "github.com/campusdesk/campusdesk-backend-go/internal/service/auth"
	branchService "github.com/campusdesk/campusdesk-backend-go/internal/service/branch"
	lectureService "github.com/campusdesk/campusdesk-backend-go/internal/service/lecture"
	notificationService "github.com/campusdesk/campusdesk-backend-go/internal/service/notification"
	profileService "github.com/campusdesk/campusdesk-backend-go/internal/service/profile"
	reminderService "github.com/campusdesk/campusdesk-backend-go/internal/service/reminder"
	reportService "github.com/campusdesk/campusdesk-backend-go/internal/service/report"
	subjectService "github.com/campusdesk/campusdesk-backend-go/internal/service/subject"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	profileRepo := postgresql.NewProfileRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	subjectRepo := postgresql.NewSubjectRepository(db)
	lectureRepo := postgresql.NewLectureRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	notifService := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notifService.Stop()

	authSvc := authService.NewAuthService(profileRepo, refreshTokenRepo, jwtService, googleService)
	branchSvc := branchService.NewBranchService(branchRepo, profileRepo)
	profileSvc := profileService.NewProfileService(profileRepo)
	subjectSvc := subjectService.NewSubjectService(subjectRepo)
	lectureSvc := lectureService.NewLectureService(lectureRepo, profileRepo, notifService)
	reportSvc := reportService.NewReportService(reportRepo, lectureRepo, profileRepo, notifService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, profileRepo, branchRepo)

	if cfg.Reminder.Enabled {
		reminder := reminderService.NewReminderService(profileRepo, attendanceRepo, notifService, cfg.Reminder.HourUTC)
		scheduler := cron.NewScheduler()
		scheduler.AddJob("attendance_reminder", time.Hour, reminder.Run)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Branch:       appHTTP.NewBranchHandler(branchSvc),
		Subject:      appHTTP.NewSubjectHandler(subjectSvc),
		Lecture:      appHTTP.NewLectureHandler(lectureSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Notification: appHTTP.NewNotificationHandler(notifService, jwtService),
		Profile:      appHTTP.NewProfileHandler(profileSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
