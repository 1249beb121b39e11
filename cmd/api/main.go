package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/config"
	appHTTP "github.com/hiroakiwakabayashi/kao-kintai-go/internal/handler/http"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/appconfig"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/database"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/jwt"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/sse"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/storage"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/repository/postgresql"
	adminService "github.com/hiroakiwakabayashi/kao-kintai-go/internal/service/admin"
	employeeService "github.com/hiroakiwakabayashi/kao-kintai-go/internal/service/employee"
	faceService "github.com/hiroakiwakabayashi/kao-kintai-go/internal/service/face"
	punchService "github.com/hiroakiwakabayashi/kao-kintai-go/internal/service/punch"
	reportService "github.com/hiroakiwakabayashi/kao-kintai-go/internal/service/report"
	settingsService "github.com/hiroakiwakabayashi/kao-kintai-go/internal/service/settings"
	shiftService "github.com/hiroakiwakabayashi/kao-kintai-go/internal/service/shift"
	timesheetService "github.com/hiroakiwakabayashi/kao-kintai-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	punchEventRepo := postgresql.NewPunchEventRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	configStore, err := appconfig.NewStore(cfg.App.ConfigPath, cfg.App.Name)
	if err != nil {
		log.Fatal("Failed to open settings store:", err)
	}

	hub := sse.NewHub()

	punchSvc := punchService.NewPunchService(punchEventRepo, employeeRepo, hub)
	timesheetSvc := timesheetService.NewTimesheetService(punchEventRepo, employeeRepo, location)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	adminSvc := adminService.NewAdminService(adminRepo, JWTService)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo)
	faceSvc := faceService.NewFaceService(employeeRepo, fileStorage)
	settingsSvc := settingsService.NewSettingsService(configStore)
	reportSvc := reportService.NewReportService(punchSvc, timesheetSvc)

	if err := adminSvc.SeedDefault(context.Background()); err != nil {
		log.Fatal("Failed to seed default admin:", err)
	}

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:       JWTService,
		PunchHandler:     appHTTP.NewPunchHandler(punchSvc),
		TimesheetHandler: appHTTP.NewTimesheetHandler(timesheetSvc),
		EmployeeHandler:  appHTTP.NewEmployeeHandler(employeeSvc),
		AdminHandler:     appHTTP.NewAdminHandler(adminSvc),
		ShiftHandler:     appHTTP.NewShiftHandler(shiftSvc),
		FaceHandler:      appHTTP.NewFaceHandler(faceSvc),
		SettingsHandler:  appHTTP.NewSettingsHandler(settingsSvc),
		ReportHandler:    appHTTP.NewReportHandler(reportSvc),
		FeedHandler:      appHTTP.NewFeedHandler(hub),
		AppName:          cfg.App.Name,
		Env:              cfg.App.Env,
		UploadDir:        cfg.Storage.BasePath,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
