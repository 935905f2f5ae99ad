package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lab-notebook-be/internal/bootstrap"
	"lab-notebook-be/internal/config"
	"lab-notebook-be/internal/pkg/logger"
	"lab-notebook-be/internal/server"
	"lab-notebook-be/internal/tracer"
	"lab-notebook-be/pkg/blobstore"
	"lab-notebook-be/pkg/database"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	// 1. Load Configuration
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	defer sysLogger.Sync()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(ctx, cfg.Telemetry, sysLogger)

	// 3. Initialize Database
	gormDB, err := database.NewSQLiteDB(cfg.Database.Path, cfg.Database.LogLevel)
	if err != nil {
		log.Panicf("Unable to open SQLite database: %v", err)
	}
	defer database.Close(gormDB)

	if err := database.InitSchema(gormDB); err != nil {
		log.Panicf("Unable to initialize schema: %v", err)
	}

	// 4. Reaction image storage
	store, err := blobstore.Open(ctx, blobstore.Config{
		Driver: blobstore.Driver(cfg.Storage.Driver),
		FSRoot: cfg.App.StaticDir,
		S3: blobstore.S3Config{
			Region:          cfg.Storage.S3.Region,
			Bucket:          cfg.Storage.S3.Bucket,
			Endpoint:        cfg.Storage.S3.Endpoint,
			AccessKeyID:     cfg.Storage.S3.AccessKeyID,
			SecretAccessKey: cfg.Storage.S3.SecretAccessKey,
			PathStyle:       cfg.Storage.S3.PathStyle,
		},
	})
	if err != nil {
		log.Panicf("Unable to open blob store: %v", err)
	}

	// 5. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, sysLogger, store)

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		if err := srv.Run(); err != nil {
			sysLogger.Error("SERVER", "Server stopped", map[string]interface{}{"error": err})
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sysLogger.Info("SERVER", "Shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sysLogger.Error("SERVER", "Graceful shutdown failed", map[string]interface{}{"error": err})
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		sysLogger.Warn("TRACER", "Tracer flush failed", map[string]interface{}{"error": err.Error()})
	}
}
