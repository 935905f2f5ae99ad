package bootstrap

import (
	"lab-notebook-be/internal/controller"
	"lab-notebook-be/internal/pkg/logger"
	"lab-notebook-be/internal/pkg/metrics"
	"lab-notebook-be/internal/repository/unitofwork"
	"lab-notebook-be/internal/service"
	"lab-notebook-be/pkg/blobstore"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NotebookController      controller.INotebookController
	ExperimentController    controller.IExperimentController
	ReactionImageController controller.IReactionImageController
	HealthController        controller.IHealthController

	// Services (exposed for tools and tests)
	NotebookService      service.INotebookService
	ExperimentService    service.IExperimentService
	ReactionImageService service.IReactionImageService

	Logger  logger.ILogger
	Metrics *metrics.Metrics
}

func NewContainer(db *gorm.DB, sysLogger logger.ILogger, store blobstore.Store) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Services
	notebookService := service.NewNotebookService(uowFactory, sysLogger)
	experimentService := service.NewExperimentService(uowFactory, sysLogger)
	reactionImageService := service.NewReactionImageService(store, sysLogger)
	healthService := service.NewHealthService(db, store, sysLogger)

	// 3. Controllers
	return &Container{
		NotebookController:      controller.NewNotebookController(notebookService),
		ExperimentController:    controller.NewExperimentController(experimentService),
		ReactionImageController: controller.NewReactionImageController(reactionImageService),
		HealthController:        controller.NewHealthController(healthService),

		NotebookService:      notebookService,
		ExperimentService:    experimentService,
		ReactionImageService: reactionImageService,

		Logger:  sysLogger,
		Metrics: metrics.New(),
	}
}
