package service

import (
	"context"

	"lab-notebook-be/internal/dto"
	"lab-notebook-be/internal/pkg/logger"
	"lab-notebook-be/pkg/blobstore"

	"gorm.io/gorm"
)

type IHealthService interface {
	// Check reports whether the database answers a ping.
	Check(ctx context.Context) (*dto.HealthResponse, bool)
}

type healthService struct {
	db     *gorm.DB
	store  blobstore.Store
	logger logger.ILogger
}

func NewHealthService(db *gorm.DB, store blobstore.Store, logger logger.ILogger) IHealthService {
	return &healthService{db: db, store: store, logger: logger}
}

func (s *healthService) Check(ctx context.Context) (*dto.HealthResponse, bool) {
	res := &dto.HealthResponse{
		Status:   "ok",
		Database: "ok",
		Storage:  string(s.store.Driver()),
	}

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		s.logger.Error("HEALTH", "Database ping failed", map[string]interface{}{
			"error": err,
		})
		res.Status = "unavailable"
		res.Database = "unreachable"
		return res, false
	}

	return res, true
}
