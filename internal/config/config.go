package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type (
	Container struct {
		App         *App
		Token       *Token
		DB          *DB
		HTTP        *HTTP
		Redis       *Redis
		Mongo       *Mongo
		Store       *Store
		Inventory   *Inventory
		Masters     *Masters
		Events      *Events
		Attachments *Attachments
		Delays      *Delays
		Idle        *Idle
	}

	App struct {
		Name     string
		Env      string
		LogLevel string
		Timezone string
	}

	Token struct {
		Secret   string
		Duration time.Duration
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
		// UploadDir is served under /uploads. Empty when attachments go to GCS.
		UploadDir string
	}

	Redis struct {
		Address  string
		Password string
	}

	Mongo struct {
		URI      string
		Database string
	}

	Store struct {
		Driver          string
		InventoryDriver string
	}

	Inventory struct {
		CSVPath string
	}

	Masters struct {
		SeedFile string
	}

	Events struct {
		MQTTBroker      string
		MQTTClientID    string
		MQTTTopicPrefix string
	}

	Attachments struct {
		UploadDir string
		GCSBucket string
	}

	Delays struct {
		Submit time.Duration
		Auth   time.Duration
	}

	Idle struct {
		WarnAfter     time.Duration
		Countdown     time.Duration
		RedirectDelay time.Duration
	}
)

// Supported values of STORE_DRIVER and INVENTORY_DRIVER.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	app := &App{
		Name:     getEnv("APP_NAME", "webike-fleet-dashboard"),
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("TIMEZONE", "Asia/Kolkata"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: getEnvAsDuration("TOKEN_DURATION", 24*time.Hour),
	}
	if token.Secret == "" {
		if app.Env == "production" {
			return nil, fmt.Errorf("TOKEN_SECRET is required")
		}
		token.Secret = "dev-secret"
	}

	db := &DB{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	mongo := &Mongo{
		URI:      os.Getenv("MONGO_URI"),
		Database: getEnv("MONGO_DATABASE", "webike"),
	}

	store := &Store{
		Driver:          strings.ToLower(getEnv("STORE_DRIVER", DriverMemory)),
		InventoryDriver: strings.ToLower(getEnv("INVENTORY_DRIVER", DriverMemory)),
	}
	switch store.Driver {
	case DriverMemory, DriverRedis, DriverPostgres, DriverMongo:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", store.Driver)
	}
	switch store.InventoryDriver {
	case DriverMemory, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported INVENTORY_DRIVER %q", store.InventoryDriver)
	}

	attachments := &Attachments{
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		GCSBucket: os.Getenv("GCS_BUCKET"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}
	if attachments.GCSBucket == "" {
		http.UploadDir = attachments.UploadDir
	}

	return &Container{
		App:       app,
		Token:     token,
		DB:        db,
		HTTP:      http,
		Redis:     redis,
		Mongo:     mongo,
		Store:     store,
		Inventory: &Inventory{CSVPath: os.Getenv("INVENTORY_CSV")},
		Masters:   &Masters{SeedFile: os.Getenv("MASTERS_SEED_FILE")},
		Events: &Events{
			MQTTBroker:      os.Getenv("MQTT_BROKER"),
			MQTTClientID:    getEnv("MQTT_CLIENT_ID", "webike-dashboard"),
			MQTTTopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "webike/masters"),
		},
		Attachments: attachments,
		Delays: &Delays{
			Submit: getEnvAsDuration("SUBMIT_DELAY", 2*time.Second),
			Auth:   getEnvAsDuration("AUTH_DELAY", time.Second),
		},
		Idle: &Idle{
			WarnAfter:     getEnvAsDuration("IDLE_WARNING_AFTER", 9*time.Minute),
			Countdown:     getEnvAsDuration("IDLE_COUNTDOWN", 60*time.Second),
			RedirectDelay: getEnvAsDuration("IDLE_REDIRECT_DELAY", 2*time.Second),
		},
	}, nil
}

// Location resolves TIMEZONE. Hosts without tzdata fall back to a fixed IST offset.
func (a *App) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// NeedsPostgres reports whether either driver uses the database.
func (s *Store) NeedsPostgres() bool {
	return s.Driver == DriverPostgres || s.InventoryDriver == DriverPostgres
}

// LoadMastersSeed reads the optional masters seed file. An empty path yields the built-in defaults.
func LoadMastersSeed(path string) (*domain.Masters, error) {
	if path == "" {
		return domain.DefaultMasters(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read masters seed: %w", err)
	}
	var seed domain.Masters
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse masters seed: %w", err)
	}
	defaults := domain.DefaultMasters()
	if len(seed.Cities) == 0 {
		seed.Cities = defaults.Cities
	}
	if seed.CityManagers == nil {
		seed.CityManagers = defaults.CityManagers
	}
	if seed.Parts == nil {
		seed.Parts = []domain.CatalogPart{}
	}
	return &seed, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go durations ("90s") and bare milliseconds ("1500").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if ms := getEnvAsInt(key, -1); ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
