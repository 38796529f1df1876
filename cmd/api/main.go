package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/boat-rental/internal/audit"
	"github.com/BruksfildServices01/boat-rental/internal/config"
	dbpkg "github.com/BruksfildServices01/boat-rental/internal/db"
	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/infra/blob"
	"github.com/BruksfildServices01/boat-rental/internal/infra/cache"
	"github.com/BruksfildServices01/boat-rental/internal/infra/memory"
	"github.com/BruksfildServices01/boat-rental/internal/infra/notify"
	infraRepo "github.com/BruksfildServices01/boat-rental/internal/infra/repository"
	"github.com/BruksfildServices01/boat-rental/internal/logger"
	"github.com/BruksfildServices01/boat-rental/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	httperr.ShowDetails = !cfg.IsProduction()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// ======================================================
	// STORAGE
	// ======================================================
	deps := routes.Dependencies{
		Log:             zl,
		JWTSecret:       cfg.JWTSecret,
		CORSOrigins:     cfg.AllowedOrigins(),
		RateLimitPerMin: cfg.RateLimitPerMin,
		WriteTimeout:    cfg.WriteTimeout,
	}

	var auditSink audit.Sink
	switch cfg.Storage {
	case config.StorageMemory:
		store := memory.NewStore()
		deps.Availability = store.Availability()
		deps.Bookings = store.Bookings()
		deps.Reviews = store.Reviews()
		deps.Users = store.Users()
		deps.Boats = store.Boats()
		deps.AuditLogs = store.AuditLog()
		auditSink = store.AuditLog()
		zl.Warn("running with in-memory storage, data is lost on restart")

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			zl.Fatal("database", zap.Error(err))
		}
		auditLogger := audit.New(db)
		deps.Availability = infraRepo.NewAvailabilityGormRepository(db)
		deps.Bookings = infraRepo.NewBookingGormRepository(db)
		deps.Reviews = infraRepo.NewReviewGormRepository(db)
		deps.Users = infraRepo.NewUserGormRepository(db)
		deps.Boats = infraRepo.NewBoatGormRepository(db)
		deps.AuditLogs = auditLogger
		auditSink = auditLogger
	}

	dispatcher := audit.NewDispatcher(auditSink, zl)
	defer dispatcher.Close()
	deps.Audit = dispatcher

	// ======================================================
	// COLLABORATORS
	// ======================================================
	deps.Cache = domainavailability.NopCache{}
	if cfg.Storage == config.StorageMemory {
		// one process owns every write, so an in-process cache stays coherent
		deps.Cache = cache.NewLocalCache(cfg.CacheTTL)
	}
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			zl.Warn("redis unavailable, listing cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			deps.Cache = cache.NewRedisCache(client, cfg.CacheTTL, zl)
		}
	}

	var notifier domainbooking.Notifier = notify.NewLogNotifier(zl)
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		producer, err := notify.NewKafkaProducer(brokers)
		if err != nil {
			zl.Warn("kafka unavailable, notifications go to the log", zap.Error(err))
		} else {
			kn := notify.NewKafkaNotifier(producer, cfg.KafkaNotifyTopic)
			defer kn.Close()
			notifier = kn
		}
	}
	deps.Notifier = notifier

	if cfg.S3Bucket != "" {
		store, err := blob.NewS3Store(blob.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			zl.Fatal("blob store", zap.Error(err))
		}
		deps.Blobs = store
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("storage", cfg.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}
