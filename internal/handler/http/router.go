package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/utiliops/fieldforce-backend-go/internal/handler/http/middleware"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	AppVersion     string
	Environment    string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	locationHandler LocationHandler,
	assignmentHandler AssignmentHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.AppVersion),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/auth/profile", authHandler.Profile)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.Get)

				// Management only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", locationHandler.List)
				r.Get("/{id}", locationHandler.Get)

				// Management only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Post("/", locationHandler.Create)
					r.Put("/{id}", locationHandler.Update)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/staff/{staffID}", assignmentHandler.ListByStaff)
				r.Get("/supervisor/{supervisorID}", assignmentHandler.ListBySupervisor)

				// Management only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Post("/", assignmentHandler.Assign)
					r.Delete("/{id}", assignmentHandler.Unassign)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/my", attendanceHandler.MyAttendance)
				r.Get("/{id}", attendanceHandler.Get)

				// Supervisor and above
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireFieldLeadership)
					r.Get("/", attendanceHandler.List)
					r.Post("/{id}/overtime", attendanceHandler.MarkOvertime)
					r.Post("/{id}/double-duty", attendanceHandler.MarkDoubleDuty)
				})

				// Manager and above; the router enforces per-record scope
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Post("/{id}/approve", attendanceHandler.Approve)
					r.Post("/{id}/reject", attendanceHandler.Reject)
					r.Post("/{id}/overtime/approve", attendanceHandler.ApproveOvertime)
					r.Post("/{id}/overtime/reject", attendanceHandler.RejectOvertime)
					r.Post("/{id}/double-duty/approve", attendanceHandler.ApproveDoubleDuty)
					r.Post("/{id}/double-duty/reject", attendanceHandler.RejectDoubleDuty)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.MyLeaves)
				r.Get("/{id}", leaveHandler.Get)

				// Manager and above; the router enforces per-record scope
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/", leaveHandler.List)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/daily", dashboardHandler.DailyBoard)
				r.Get("/pending-approvals", dashboardHandler.PendingApprovals)
			})
		})
	})
	return r
}
