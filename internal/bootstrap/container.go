package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"servizi-facili-be/internal/config"
	"servizi-facili-be/internal/controller"
	"servizi-facili-be/internal/pkg/logger"
	"servizi-facili-be/internal/pkg/serverutils"
	"servizi-facili-be/internal/repository/memory"
	"servizi-facili-be/internal/repository/records"
	"servizi-facili-be/internal/service"
	"servizi-facili-be/internal/websocket"
	"servizi-facili-be/pkg/catalog"
	"servizi-facili-be/pkg/rules"
	"servizi-facili-be/pkg/wizard"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	AuthController      controller.IAuthController
	ContentController   controller.IContentController

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	serverutils.InitJwt(cfg.Auth.JwtSecret)

	// Event bus for UI actions.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	recordStore := newRecordStore(cfg, sysLogger)
	sessionRepo := memory.NewSessionRepository()

	// Services
	dispatcherService := service.NewDispatcherService(
		pubSub,
		cfg.Chatbot.ActionsTopic,
		cfg.Chatbot.HighlightDelay,
		sysLogger,
	)
	assistantService := service.NewAssistantService(
		sessionRepo,
		recordStore,
		dispatcherService,
		rules.DefaultTable(),
		wizard.DefaultTable(),
		cfg.Chatbot,
		sysLogger,
	)
	authService, err := service.NewAuthService(cfg.Auth, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize auth service: %v", err)
	}

	// Controllers
	assistantController := controller.NewAssistantController(assistantService)
	authController := controller.NewAuthController(authService, assistantService)
	contentController := controller.NewContentController(catalog.Default())

	// WebSocket traffic logs to its own file so the main log stays clean.
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	hub := websocket.NewHub(dispatcherService, wsLogger)

	return &Container{
		AssistantController: assistantController,
		AuthController:      authController,
		ContentController:   contentController,
		WebSocketHub:        hub,
		Logger:              sysLogger,
	}
}

// newRecordStore selects the persistence backend from configuration. The
// in-memory store is the fallback so the app always starts.
func newRecordStore(cfg *config.Config, sysLogger logger.ILogger) records.Store {
	switch cfg.Records.Backend {
	case "redis":
		opts, err := redis.ParseURL(cfg.Records.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Invalid REDIS_URL: %v", err)
		}
		log.Println("[INFO] Using record store: REDIS")
		return records.NewRedisStore(redis.NewClient(opts), sysLogger)

	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.Records.PgDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to GORM DB: %v", err)
		}
		store, err := records.NewGormStore(db, sysLogger)
		if err != nil {
			log.Fatalf("[FATAL] Failed to migrate record store: %v", err)
		}
		log.Println("[INFO] Using record store: POSTGRES")
		return store

	default:
		log.Println("[INFO] Using record store: MEMORY")
		return records.NewMemoryStore(sysLogger)
	}
}
