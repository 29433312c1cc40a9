package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/filewatch"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/handler/http"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/logger"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/memory"
	mongoAdapter "github.com/sm8ta/webike_fleet_dashboard/internal/adapter/mongo"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/mqtt"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/password"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/postgres"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/prometheus"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/redis"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/storage"
	"github.com/sm8ta/webike_fleet_dashboard/internal/config"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/idle"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/services"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	MongoClient  *mongo.Client
	Publisher    interface{ Close() }
	Attachments  *storage.GCSStore
	Idle         *idle.Registry
	Watcher      *filewatch.Watcher
	HTTPRouter   *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env, cfg.App.LogLevel)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":              cfg.App.Name,
		"env":              cfg.App.Env,
		"store_driver":     cfg.Store.Driver,
		"inventory_driver": cfg.Store.InventoryDriver,
	})

	a := &App{Config: cfg, Logger: loggerAdapter}
	fail := func(err error) (*App, error) {
		a.closeResources(ctx)
		return nil, err
	}

	// Set redis
	if cfg.Redis.Address != "" || cfg.Store.Driver == config.DriverRedis {
		redisConn := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisConn.Ping(ctx).Result(); err != nil {
			redisConn.Close()
			return fail(fmt.Errorf("failed to connect to Redis: %w", err))
		}
		a.RedisClient = redisConn
		a.RedisAdapter = redis.NewRedisAdapter(redisConn)
	} else {
		a.RedisAdapter = memory.NewCache()
	}

	// Connect DB
	if cfg.Store.NeedsPostgres() {
		db, err := sql.Open("postgres", cfg.DB.DSN())
		if err != nil {
			return fail(fmt.Errorf("Failed to connect to database:%w", err))
		}
		a.DB = db

		if err := db.PingContext(ctx); err != nil {
			return fail(fmt.Errorf("Failed to ping database:%w", err))
		}

		// Migrate DB
		if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
			return fail(fmt.Errorf("Failed to run migrations:%w", err))
		}
	}

	// Connect Mongo
	if cfg.Store.Driver == config.DriverMongo {
		client, err := mongoAdapter.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return fail(err)
		}
		a.MongoClient = client
	}

	// Document store
	var store ports.DocumentStore
	switch cfg.Store.Driver {
	case config.DriverRedis:
		store = redis.NewDocumentStore(a.RedisClient)
	case config.DriverPostgres:
		store = postgres.NewDocumentStore(a.DB)
	case config.DriverMongo:
		store = mongoAdapter.NewDocumentStore(a.MongoClient.Database(cfg.Mongo.Database))
	default:
		store = memory.NewDocumentStore()
	}

	// Repositories
	var vehicleRepo ports.VehicleRepository
	if cfg.Store.InventoryDriver == config.DriverPostgres {
		vehicleRepo = postgres.NewVehicleRepository(a.DB)
	} else {
		vehicleRepo = memory.NewVehicleRepository()
	}

	// Events
	var publisher ports.EventPublisher
	if cfg.Events.MQTTBroker != "" {
		mqttPublisher, err := mqtt.NewPublisher(mqtt.Config{
			Broker:      cfg.Events.MQTTBroker,
			ClientID:    cfg.Events.MQTTClientID,
			TopicPrefix: cfg.Events.MQTTTopicPrefix,
		}, loggerAdapter)
		if err != nil {
			return fail(err)
		}
		publisher, a.Publisher = mqttPublisher, mqttPublisher
	} else {
		logPublisher := mqtt.NewLogPublisher(loggerAdapter)
		publisher, a.Publisher = logPublisher, logPublisher
	}

	// Attachments
	var attachments ports.AttachmentStore
	if cfg.Attachments.GCSBucket != "" {
		gcs, err := storage.NewGCSStore(ctx, cfg.Attachments.GCSBucket)
		if err != nil {
			return fail(err)
		}
		a.Attachments = gcs
		attachments = gcs
	} else {
		local, err := storage.NewLocalStore(cfg.Attachments.UploadDir)
		if err != nil {
			return fail(err)
		}
		attachments = local
	}

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(promclient.DefaultRegisterer)

	// Services
	loc := cfg.App.Location()
	sessionStore := services.NewSessionStore(store, loggerAdapter)
	inventoryService := services.NewInventoryService(vehicleRepo, loggerAdapter, a.RedisAdapter)
	maintenanceService := services.NewMaintenanceService(store, attachments, loggerAdapter, metrics, validate, services.MaintenanceOptions{
		SubmitDelay: cfg.Delays.Submit,
		Location:    loc,
	})
	exportService := services.NewExportService(maintenanceService, loggerAdapter, metrics, loc)

	seed, err := config.LoadMastersSeed(cfg.Masters.SeedFile)
	if err != nil {
		return fail(err)
	}
	mastersService := services.NewMastersService(store, publisher, loggerAdapter, seed)

	// Idle monitors. Expiry drops the device's session and inventory view.
	a.Idle = idle.NewRegistry(idle.Config{
		WarnAfter:     cfg.Idle.WarnAfter,
		Countdown:     cfg.Idle.Countdown,
		RedirectDelay: cfg.Idle.RedirectDelay,
	}, idle.RealScheduler(), func(deviceID string, c idle.Context) {
		if err := sessionStore.Clear(context.Background(), deviceID); err != nil {
			loggerAdapter.Error("Failed to clear expired session", map[string]interface{}{
				"error":     err.Error(),
				"device_id": deviceID,
			})
		}
		inventoryService.ResetView(deviceID)
		loggerAdapter.Info("Session expired after inactivity", map[string]interface{}{
			"device_id": deviceID,
			"context":   string(c),
		})
	}, func(s idle.State) {
		metrics.RecordIdleTransition(string(s))
	})

	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, loggerAdapter)
	authService, err := services.NewAuthService(
		store,
		sessionStore,
		tokenService,
		password.NewBcryptHasher(bcrypt.DefaultCost),
		a.Idle,
		loggerAdapter,
		metrics,
		validate,
		services.AuthOptions{Delay: cfg.Delays.Auth},
	)
	if err != nil {
		return fail(err)
	}

	// Startup data
	purged, err := maintenanceService.PurgeForeign(ctx)
	if err != nil {
		return fail(fmt.Errorf("failed to purge foreign records: %w", err))
	}
	if purged > 0 {
		loggerAdapter.Info("Purged non-maintenance records", map[string]interface{}{"count": purged})
	}
	if err := mastersService.Seed(ctx); err != nil {
		return fail(fmt.Errorf("failed to seed masters: %w", err))
	}
	if err := inventoryService.SeedSamples(ctx); err != nil {
		return fail(fmt.Errorf("failed to seed inventory: %w", err))
	}
	if path := cfg.Inventory.CSVPath; path != "" {
		reload := func(path string) error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = inventoryService.ImportCSV(context.Background(), f)
			return err
		}
		if err := reload(path); err != nil {
			loggerAdapter.Warn("Initial inventory import failed", map[string]interface{}{
				"error": err.Error(),
				"path":  path,
			})
		}
		watcher, err := filewatch.New(path, filewatch.DefaultDebounce, reload, loggerAdapter)
		if err != nil {
			return fail(err)
		}
		a.Watcher = watcher
	}

	// HTTP Handlers
	authHandler := http.NewAuthHandler(authService, a.Idle, loggerAdapter, metrics)
	sessionHandler := http.NewSessionHandler(a.Idle, loggerAdapter, metrics)
	inventoryHandler := http.NewInventoryHandler(inventoryService, loggerAdapter, metrics)
	maintenanceHandler := http.NewMaintenanceHandler(maintenanceService, mastersService, inventoryService, loggerAdapter, metrics)
	exportHandler := http.NewExportHandler(exportService, loggerAdapter, metrics)
	mastersHandler := http.NewMastersHandler(mastersService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		authService,
		authHandler,
		sessionHandler,
		inventoryHandler,
		maintenanceHandler,
		exportHandler,
		mastersHandler,
	)
	if err != nil {
		return fail(fmt.Errorf("failed to initialize router: %w", err))
	}
	a.HTTPRouter = router

	return a, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if a.HTTPRouter != nil {
		if err := a.HTTPRouter.Shutdown(ctx); err != nil {
			a.Logger.Error("HTTP shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	a.closeResources(ctx)

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}

func (a *App) closeResources(ctx context.Context) {
	if a.Watcher != nil {
		if err := a.Watcher.Stop(); err != nil {
			a.Logger.Error("Inventory watcher stop error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.Idle != nil {
		a.Idle.Close()
	}

	if a.Publisher != nil {
		a.Publisher.Close()
	}

	if a.Attachments != nil {
		if err := a.Attachments.Close(); err != nil {
			a.Logger.Error("GCS client close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.MongoClient != nil {
		if err := a.MongoClient.Disconnect(ctx); err != nil {
			a.Logger.Error("Mongo disconnect error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
