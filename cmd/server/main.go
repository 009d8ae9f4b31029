// Command server runs the section schedule service.
//
// @title Section Schedule API
// @version 1.0
// @description Weekly section schedules: slot validation, schedule editors and calendar layout.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sectionschedule/config"
	"sectionschedule/internal/adapters/auth"
	"sectionschedule/internal/adapters/sectionapi"
	deliveryhttp "sectionschedule/internal/delivery/http"
	"sectionschedule/internal/delivery/http/controllers"
	"sectionschedule/internal/delivery/http/middleware"
	"sectionschedule/internal/domain"
	"sectionschedule/internal/services"
)

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config error", "err", err)
		os.Exit(1)
	}

	engine, err := services.NewLayoutEngine(services.LayoutConfig{
		DayStart:      cfg.Calendar.DayStart,
		DayEnd:        cfg.Calendar.DayEnd,
		PixelsPerHour: cfg.Calendar.PixelsPerHour,
		Days:          domain.OperatingDays,
		ClipToWindow:  cfg.Calendar.ClipToWindow,
	})
	if err != nil {
		logger.Error("layout config error", "err", err)
		os.Exit(1)
	}

	sectionClient := sectionapi.NewClient(cfg.SectionAPIURL, &http.Client{Timeout: cfg.RequestTimeout})
	calendarService := services.NewCalendarService(logger, sectionClient, engine, cfg.RequestTimeout)
	editorService := services.NewEditorService(logger, sectionClient, cfg.RequestTimeout)

	router := deliveryhttp.NewRouter(
		controllers.NewScheduleController(logger, calendarService),
		controllers.NewCalendarController(logger, calendarService),
		controllers.NewEditorController(logger, editorService),
		middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret), logger),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, router.Methods(), router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "section_api", cfg.SectionAPIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
