package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/cache"
	"github.com/BruksfildServices01/booking-api/internal/config"
	dbpkg "github.com/BruksfildServices01/booking-api/internal/db"
	"github.com/BruksfildServices01/booking-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/booking-api/internal/infra/repository"
	"github.com/BruksfildServices01/booking-api/internal/logger"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/routes"
	"github.com/BruksfildServices01/booking-api/internal/validators"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, closeDB, err := dbpkg.Open(cfg)
	if err != nil {
		log.Error("failed to open database", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = closeDB() }()

	sqlDB, err := db.DB()
	if err != nil {
		log.Error("failed to get sql.DB", logger.Error(err))
		os.Exit(1)
	}

	// ======================================================
	// INFRA
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)
	defer auditDispatcher.Close()

	var slotCache handlers.SlotCache
	if cfg.RedisEnabled() {
		rdb, err := cache.Connect(ctx, cfg)
		if err != nil {
			log.Warn("slot cache disabled", logger.Error(err))
		} else {
			defer func() { _ = rdb.Close() }()
			slotCache = cache.NewSlotCache(rdb, cfg.SlotCacheTTL)
		}
	}

	var emailCheck handlers.EmailCheck
	if cfg.CheckEmailDomain {
		emailCheck = validators.IsEmailDomainValid
	}

	loc := cfg.Location()

	// ======================================================
	// HANDLERS
	// ======================================================
	h := routes.Handlers{
		Health:    handlers.NewHealthHandler(sqlDB),
		Resources: handlers.NewResourceHandler(infraRepo.NewResourceGormRepository(db), auditDispatcher),
		Users:     handlers.NewUserHandler(infraRepo.NewUserGormRepository(db), auditDispatcher, emailCheck),
		Bookings:  handlers.NewBookingHandler(infraRepo.NewBookingGormRepository(db), auditDispatcher, loc),
		Slots:     handlers.NewSlotHandler(infraRepo.NewSlotGormRepository(db), slotCache, loc, log),
		AuditLogs: handlers.NewAuditLogsHandler(auditLogger, loc),
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.AccessLog(log))
	routes.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", logger.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", logger.Error(err))
	}
	log.Info("server stopped")
}
