package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/utiliops/fieldforce-backend-go/internal/config"
	appHTTP "github.com/utiliops/fieldforce-backend-go/internal/handler/http"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/cron"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/database"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/jwt"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/oauth"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/storage"
	"github.com/utiliops/fieldforce-backend-go/internal/repository/postgresql"
	assignmentService "github.com/utiliops/fieldforce-backend-go/internal/service/assignment"
	attendanceService "github.com/utiliops/fieldforce-backend-go/internal/service/attendance"
	authService "github.com/utiliops/fieldforce-backend-go/internal/service/auth"
	dashboardService "github.com/utiliops/fieldforce-backend-go/internal/service/dashboard"
	employeeService "github.com/utiliops/fieldforce-backend-go/internal/service/employee"
	"github.com/utiliops/fieldforce-backend-go/internal/service/file"
	leaveService "github.com/utiliops/fieldforce-backend-go/internal/service/leave"
	locationService "github.com/utiliops/fieldforce-backend-go/internal/service/location"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
		cfg.OAuth2Google.AllowedDomain,
	)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	locationSvc := locationService.NewLocationService(locationRepo)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo, employeeRepo, locationRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		locationRepo,
		assignmentRepo,
		leaveRepo,
		fileService,
		cfg.Attendance.GraceMinutes,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo, assignmentRepo, leaveRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			Environment:    cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		employeeHandler,
		locationHandler,
		assignmentHandler,
		attendanceHandler,
		leaveHandler,
		dashboardHandler,
	)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, assignmentRepo, leaveRepo, locationRepo)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
