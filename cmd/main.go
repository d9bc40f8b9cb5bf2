package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/glucose-tracker/docs"
	"github.com/sbilibin2017/glucose-tracker/internal/db"
	"github.com/sbilibin2017/glucose-tracker/internal/facades"
	"github.com/sbilibin2017/glucose-tracker/internal/handlers"
	"github.com/sbilibin2017/glucose-tracker/internal/jwt"
	"github.com/sbilibin2017/glucose-tracker/internal/logger"
	"github.com/sbilibin2017/glucose-tracker/internal/middlewares"
	"github.com/sbilibin2017/glucose-tracker/internal/repositories"
	"github.com/sbilibin2017/glucose-tracker/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is the full service configuration read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string // Empty disables event publishing
	KafkaTopic   string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	PredictorURL     string // Empty disables the prediction route
	PredictorTimeout time.Duration

	JWTSecret    string
	JWTExp       time.Duration
	CookieSecure bool
}

// @title glucose-tracker API
// @version 1.0.0
// @description Glucose tracking service with analytics, recommendations and diabetes prediction
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, Gemini, predictor and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		return time.Duration(v) * time.Second, err
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "glucose-events")

	// Gemini config
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", "")
	cfg.GeminiModel = getEnv("GEMINI_MODEL", facades.DefaultGeminiModel)
	if cfg.GeminiTimeout, err = getSeconds("GEMINI_TIMEOUT_SECOND", "30"); err != nil {
		return
	}

	// Predictor config
	cfg.PredictorURL = getEnv("PREDICTOR_URL", "")
	if cfg.PredictorTimeout, err = getSeconds("PREDICTOR_TIMEOUT_SECOND", "10"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "1296000"); err != nil {
		return
	}
	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "false")); err != nil {
		err = fmt.Errorf("COOKIE_SECURE: %w", err)
		return
	}

	return
}

// routeDeps holds every handler dependency registerRoutes needs.
type routeDeps struct {
	db       *sqlx.DB
	tokens   *jwt.JWT
	sessions *repositories.SessionRepository
	auth     *services.AuthService
	users    *services.UserService
	glucose  *services.GlucoseService
	insights *services.InsightsService
	predict  *services.PredictionService
}

// registerRoutes mounts the public and session-protected routes on r.
func registerRoutes(r chi.Router, d routeDeps) {
	userID := middlewares.UserIDFromContext

	// Public routes
	r.Post("/auth/signup", handlers.NewSignupHandler(d.auth, d.tokens))
	r.Post("/auth/login", handlers.NewLoginHandler(d.auth, d.tokens))
	r.Post("/auth/logout", handlers.NewLogoutHandler(d.auth, d.tokens))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(d.tokens, d.sessions))

		r.Get("/user", handlers.NewGetUserHandler(d.users, userID))
		r.Put("/user", handlers.NewUpdateUserHandler(d.users, userID))
		r.Delete("/user", handlers.NewDeleteUserHandler(d.users, d.auth, d.tokens, userID))

		r.Get("/diabetesOpr/getDiabetesDetails", handlers.NewGetDiabetesDetailsHandler(d.glucose, userID))
		r.Get("/diabetesOpr/analyticsChart", handlers.NewAnalyticsChartHandler(d.insights, userID))
		r.Get("/diabetesOpr/predict", handlers.NewPredictHandler(d.predict, userID))
		r.Get("/recommendations/getRecommendations", handlers.NewRecommendationsHandler(d.insights, userID))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(d.db))
			r.Put("/diabetesOpr/updateDiabetesDetails", handlers.NewUpdateDiabetesDetailsHandler(d.glucose, userID))
			r.Post("/diabetesOpr/addGlucoseReading", handlers.NewAddGlucoseReadingHandler(d.glucose, userID))
		})
	})
}

// newRouter builds the chi router with middleware, API routes and Swagger UI.
// API routes are served both at the root and under /api.
func newRouter(d routeDeps, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	registerRoutes(r, d)
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, d)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))
	return r
}

// run initializes the logger, database, Redis, Kafka, Gemini and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	pg, err := db.Connect(ctx, dsn, cfg.PGMaxOpenConns, cfg.PGMaxIdleConns)
	if err != nil {
		return err
	}
	defer pg.Close()
	if err := db.Migrate(ctx, pg); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka producer for glucose events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing glucose events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, glucose events are not published")
	}

	// Gemini text generator
	geminiClient, geminiModel, err := facades.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("gemini client: %w", err)
	}
	defer geminiClient.Close()
	generator := facades.NewGeminiFacade(geminiModel, cfg.GeminiTimeout)

	// Diabetes classifier
	var predictor services.Predictor
	if cfg.PredictorURL != "" {
		predictor = facades.NewPredictorHTTPFacade(cfg.PredictorURL, cfg.PredictorTimeout)
	} else {
		logger.Log.Info("PREDICTOR_URL not set, predictions are unavailable")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecret),
		jwt.WithExpiration(cfg.JWTExp),
		jwt.WithSecureCookie(cfg.CookieSecure),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(pg)
	userWriteRepo := repositories.NewUserWriteRepository(pg)
	glucoseReadRepo := repositories.NewGlucoseReadRepository(pg, middlewares.GetTxFromContext)
	glucoseWriteRepo := repositories.NewGlucoseWriteRepository(pg, middlewares.GetTxFromContext)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Initialize services
	insightsService, err := services.NewInsightsService(userReadRepo, glucoseReadRepo, generator)
	if err != nil {
		return err
	}
	deps := routeDeps{
		db:       pg,
		tokens:   tokens,
		sessions: sessionRepo,
		auth:     services.NewAuthService(userReadRepo, userWriteRepo, tokens, sessionRepo),
		users:    services.NewUserService(userReadRepo, userWriteRepo),
		glucose: services.NewGlucoseService(userReadRepo, glucoseReadRepo, glucoseWriteRepo, kafkaWriter).
			WithAfterCommit(middlewares.AfterCommit),
		insights: insightsService,
		predict:  services.NewPredictionService(userReadRepo, glucoseReadRepo, glucoseWriteRepo, predictor, kafkaWriter),
	}

	addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	docs.SwaggerInfo.Host = addr
	srv := &http.Server{
		Addr:    addr,
		Handler: newRouter(deps, fmt.Sprintf("http://%s/swagger/doc.json", addr)),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
