package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samatva/samatva/internal/config"
	"github.com/samatva/samatva/internal/event_bus"
	"github.com/samatva/samatva/internal/storage"
	"github.com/samatva/samatva/internal/utils"
	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/bundle"
	"github.com/samatva/samatva/pkg/class"
	"github.com/samatva/samatva/pkg/export"
	"github.com/samatva/samatva/pkg/operator"
	"github.com/samatva/samatva/pkg/partner"
	"github.com/samatva/samatva/pkg/platform_user"
	"github.com/samatva/samatva/pkg/program"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	OperatorService operator.Service
	OperatorHandler *operator.Handler

	PartnerService partner.Service
	PartnerHandler *partner.Handler

	UserService platform_user.Service
	UserHandler *platform_user.Handler

	MediaStorage storage.FileStorage
	Catalog      asset.Catalog
	AssetHandler *asset.Handler

	ProgramService program.Service
	ProgramHandler *program.Handler

	ClassService class.Service
	ClassHandler *class.Handler

	BundleService bundle.Service
	BundleHandler *bundle.Handler

	ExportHandler *export.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()

	deps.OperatorService = operator.NewOperatorService(operator.NewOperatorRepo(db))
	deps.OperatorHandler = operator.NewHandler(deps.OperatorService)

	deps.PartnerService = partner.NewPartnerService(partner.NewPartnerRepo(db))
	deps.PartnerHandler = partner.NewPartnerHandler(deps.PartnerService)

	deps.UserService = platform_user.NewUserService(platform_user.NewUserRepo(db))
	deps.UserHandler = platform_user.NewUserHandler(deps.UserService)

	mediaStorage, err := storage.NewS3Storage(cfg.Media)
	if err != nil {
		log.Errorf("media storage unavailable, upload URLs will fail: %v", err)
	}
	deps.MediaStorage = mediaStorage
	deps.Catalog = asset.NewCatalog(asset.NewSessionRepo(db), asset.NewServiceRepo(db), deps.MediaStorage)
	deps.AssetHandler = asset.NewAssetHandler(deps.Catalog)

	deps.ProgramService = program.NewProgramService(
		program.NewProgramRepo(db), program.NewPlanRepo(db), deps.Catalog, deps.EventBus)
	deps.ProgramHandler = program.NewProgramHandler(deps.ProgramService)

	deps.ClassService = class.NewClassService(class.NewClassRepo(db), deps.EventBus)
	deps.ClassHandler = class.NewClassHandler(deps.ClassService)

	deps.BundleService = bundle.NewBundleService(bundle.NewBundleRepo(db), deps.EventBus)
	deps.BundleHandler = bundle.NewBundleHandler(deps.BundleService)

	deps.Clock = &utils.SystemClock{}
	deps.ExportHandler = export.NewExportHandler(deps.ProgramService, deps.Catalog, deps.Clock)

	return deps
}
