package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendly-hq/attendly-backend-go/internal/config"
	appHTTP "github.com/attendly-hq/attendly-backend-go/internal/handler/http"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/jwt"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly-hq/attendly-backend-go/internal/service/attendance"
	authService "github.com/attendly-hq/attendly-backend-go/internal/service/auth"
	dashboardService "github.com/attendly-hq/attendly-backend-go/internal/service/dashboard"
	employeeService "github.com/attendly-hq/attendly-backend-go/internal/service/employee"
	leaveService "github.com/attendly-hq/attendly-backend-go/internal/service/leave"
	permissionService "github.com/attendly-hq/attendly-backend-go/internal/service/permission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, loc)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, loc, cfg.Policy.MaxLeaveDaysPerMonth)
	permissionSvc := permissionService.NewPermissionService(db, permissionRepo, loc, cfg.Policy.MaxPermissionMinutesPerDay)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, leaveRequestRepo, loc)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Permission: appHTTP.NewPermissionHandler(permissionSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, authSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
