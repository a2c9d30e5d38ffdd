package bootstrap

import (
	"log"

	"linkmark-be/internal/config"
	"linkmark-be/internal/controller"
	"linkmark-be/internal/pkg/logger"
	"linkmark-be/internal/repository/unitofwork"
	"linkmark-be/internal/service"
	natsbus "linkmark-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	BookmarkController controller.IBookmarkController
	NoteController     controller.INoteController
	StatsController    controller.IStatsController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional infrastructure: without it the store still works,
	// bookmarks just never get enriched.
	natsPub, err := natsbus.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := natsbus.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Events.EnrichTopic)
	authService := service.NewAuthService(uowFactory, &cfg.Auth)
	bookmarkService := service.NewBookmarkService(uowFactory, publisherService, sysLogger)
	noteService := service.NewNoteService(uowFactory)
	statsService := service.NewStatsService(uowFactory)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.EnrichTopic,
		natsPub,
		natsSub,
		bookmarkService,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		BookmarkController: controller.NewBookmarkController(bookmarkService),
		NoteController:     controller.NewNoteController(noteService),
		StatsController:    controller.NewStatsController(statsService),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
