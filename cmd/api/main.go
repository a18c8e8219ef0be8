package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JHCss26/ukg-internal/internal/application/ingest"
	"github.com/JHCss26/ukg-internal/internal/bootstrap"
	"github.com/JHCss26/ukg-internal/internal/config"
	"github.com/JHCss26/ukg-internal/internal/infrastructure/repository"
	"github.com/JHCss26/ukg-internal/internal/infrastructure/ukg"
	httpecho "github.com/JHCss26/ukg-internal/internal/interfaces/http/echo"
	"github.com/JHCss26/ukg-internal/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.Setup(logging.Config{})
		fallback.Fatal().Err(err).Msg("configuration invalid")
	}

	logger := logging.Setup(logging.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.Info().Msg("starting ukg-internal")

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create pgx pool")
	}
	defer pool.Close()

	httpClient := &http.Client{Timeout: cfg.Vendor.Timeout}
	tokens := ukg.NewTokenManager(httpClient, cfg.Vendor.BaseURL, cfg.Vendor.LoginPath, cfg.Vendor.APIKey, ukg.Credentials{
		Username: cfg.Vendor.Username,
		Password: cfg.Vendor.Password,
		Company:  cfg.Vendor.Company,
	}, logging.NewLogger("token-manager"))
	client := ukg.NewClient(httpClient, tokens, cfg.Vendor.BaseURL, logging.NewLogger("vendor-client"))

	employeeRepo := repository.NewEmployeeRepository(db)
	reportRepo := repository.NewReportRepository(pool)

	employeeSync := ingest.NewEmployeeSync(client, employeeRepo, ingest.EmployeeSyncConfig{
		Workers: cfg.Ingest.EnrichWorkers,
	}, logging.NewLogger("employee-sync"))
	reportIngest := ingest.NewReportIngest(client, reportRepo, cfg.Vendor.Company, logging.NewLogger("report-ingest"))

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	scheduler := ingest.NewScheduler(employeeSync, reportIngest, ingest.SchedulerConfig{
		Interval:  cfg.Ingest.Interval,
		SettingID: cfg.Ingest.ReportSettingID,
	}, logging.NewLogger("scheduler"))
	scheduler.Start(schedulerCtx)

	server := bootstrap.NewHTTPServer(db, httpecho.NewSyncHandler(employeeSync), httpecho.NewReportHandler(reportIngest))

	go func() {
		if err := server.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("graceful shutdown failed")
	}
}
