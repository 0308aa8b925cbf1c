package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/worktrace/worktrace-backend-go/internal/config"
	appHTTP "github.com/worktrace/worktrace-backend-go/internal/handler/http"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/database"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/holidayapi"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/jwt"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/storage"
	"github.com/worktrace/worktrace-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/worktrace/worktrace-backend-go/internal/service/auth"
	"github.com/worktrace/worktrace-backend-go/internal/service/file"
	holidayService "github.com/worktrace/worktrace-backend-go/internal/service/holiday"
	reportService "github.com/worktrace/worktrace-backend-go/internal/service/report"
	statsService "github.com/worktrace/worktrace-backend-go/internal/service/stats"
	worklogService "github.com/worktrace/worktrace-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workUpdateRepo := postgresql.NewWorkUpdateRepository(db)
	workUpdateImageRepo := postgresql.NewWorkUpdateImageRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiration)

	var blobStorage storage.BlobStorage
	switch cfg.Storage.Type {
	case "local":
		blobStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(blobStorage)
	authService := serviceAuth.NewAuthService(cfg.Auth, JWTService)
	workLogSvc := worklogService.NewWorkLogService(workUpdateRepo, workUpdateImageRepo, fileService)
	statsSvc := statsService.NewStatsService(workUpdateRepo)
	reportSvc := reportService.NewReportService(workUpdateRepo)
	holidaySvc := holidayService.NewHolidayService(holidayapi.NewClient(cfg.Holiday.BaseURL))

	authHandler := appHTTP.NewAuthHandler(authService)
	workLogHandler := appHTTP.NewWorkLogHandler(workLogSvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc, cfg.Holiday.CountryCode)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		workLogHandler,
		statsHandler,
		reportHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
