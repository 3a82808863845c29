package http

import (
	"log/slog"
	"os"

	"github.com/campusdesk/campusdesk-backend-go/internal/handler/http/middleware"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers bundles every HTTP handler wired into the router
type Handlers struct {
	Auth         AuthHandler
	Branch       BranchHandler
	Subject      SubjectHandler
	Lecture      LectureHandler
	Report       ReportHandler
	Attendance   AttendanceHandler
	Notification NotificationHandler
	Profile      ProfileHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "campusdesk"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// SSE stream authenticates via short-lived query token
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/branches", func(r chi.Router) {
				// Registrar only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRegistrar)
					r.Post("/", h.Branch.Create)
					r.Get("/staff", h.Branch.ListWithStaff)
					r.Put("/{id}", h.Branch.Update)
					r.Delete("/{id}", h.Branch.Delete)
				})

				r.Get("/", h.Branch.List)
				r.Get("/{id}", h.Branch.Detail)
			})

			r.Route("/subjects", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHOD)
					r.Post("/", h.Subject.Create)
					r.Put("/{id}", h.Subject.Update)
					r.Delete("/{id}", h.Subject.Delete)
				})

				r.Get("/", h.Subject.List)
				r.Get("/by-year", h.Subject.ListByYear)
			})

			r.Route("/faculty", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHOD)
					r.Post("/", h.Profile.CreateFaculty)
					r.Get("/", h.Profile.ListBranchFaculty)
				})

				// Profile lookup is administrative; faculty read their
				// own profile through /auth/me
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/{id}", h.Profile.Get)
				})
			})

			r.Route("/lectures", func(r chi.Router) {
				// Scheduling is an HOD operation
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHOD)
					r.Post("/", h.Lecture.Schedule)
					r.Put("/{id}", h.Lecture.Update)
					r.Delete("/{id}", h.Lecture.Delete)
					r.Get("/branch", h.Lecture.ListByBranch)
				})

				r.Patch("/{id}/status", h.Lecture.SetStatus)
				r.Get("/conflict", h.Lecture.CheckConflict)
				r.Get("/available-rooms", h.Lecture.AvailableRooms)
				r.Get("/today", h.Lecture.ListToday)
				r.Get("/weekly-count", h.Lecture.WeeklyCount)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireFaculty)
					r.Get("/pending", h.Lecture.ListPending)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireFaculty)
					r.Post("/", h.Report.Submit)
				})

				r.Get("/", h.Report.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRegistrar)
					r.Get("/department-stats", h.Report.DepartmentStats)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Mark)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHOD)
					r.Get("/branch", h.Attendance.ByBranch)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRegistrar)
					r.Get("/all-branches", h.Attendance.AllBranches)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/mark-read", h.Notification.MarkAsRead)
				r.Post("/mark-all-read", h.Notification.MarkAllAsRead)
				r.Get("/sse-token", h.Notification.GetSSEToken)
			})
		})
	})
	return r
}
