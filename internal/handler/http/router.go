package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/handler/http/middleware"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService       jwt.Service
	PunchHandler     PunchHandler
	TimesheetHandler TimesheetHandler
	EmployeeHandler  EmployeeHandler
	AdminHandler     AdminHandler
	ShiftHandler     ShiftHandler
	FaceHandler      FaceHandler
	SettingsHandler  SettingsHandler
	ReportHandler    ReportHandler
	FeedHandler      FeedHandler

	AppName   string
	Env       string
	UploadDir string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", deps.AppName),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if deps.UploadDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		// Kiosk endpoints: no auth, the terminal identifies employees itself.
		r.Route("/punches", func(r chi.Router) {
			r.Post("/", deps.PunchHandler.Punch)
			r.Get("/state/{code}", deps.PunchHandler.State)
			r.Get("/feed", deps.FeedHandler.Stream)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/week", deps.ShiftHandler.SubmitWeek)
		})

		r.Post("/admin/login", deps.AdminHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/admin/admins", func(r chi.Router) {
				r.Get("/", deps.AdminHandler.List)
				r.Post("/", deps.AdminHandler.Register)
			})

			r.Get("/punches/log", deps.PunchHandler.List)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.EmployeeHandler.List)
				r.Post("/", deps.EmployeeHandler.Create)

				r.Route("/{code}", func(r chi.Router) {
					r.Get("/", deps.EmployeeHandler.Get)
					r.Put("/", deps.EmployeeHandler.Update)
					r.Post("/activate", deps.EmployeeHandler.Activate)
					r.Post("/deactivate", deps.EmployeeHandler.Deactivate)
					r.Put("/wage", deps.EmployeeHandler.UpdateWage)

					r.Route("/faces", func(r chi.Router) {
						r.Get("/", deps.FaceHandler.List)
						r.Post("/", deps.FaceHandler.Upload)
						r.Delete("/{filename}", deps.FaceHandler.Delete)
					})
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/payroll", deps.TimesheetHandler.MonthlyPayroll)
				r.Get("/daily", deps.TimesheetHandler.DailySummary)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", deps.ShiftHandler.List)
				r.Get("/review", deps.ShiftHandler.WeeklyReview)
				r.Delete("/{id}", deps.ShiftHandler.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/punch-log", deps.ReportHandler.ExportPunchLog)
				r.Get("/daily-summary", deps.ReportHandler.ExportDailySummary)
				r.Get("/payroll", deps.ReportHandler.ExportMonthlyPayroll)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/vision", deps.SettingsHandler.GetVision)
				r.Put("/vision", deps.SettingsHandler.UpdateVision)
			})
		})
	})

	return r
}
