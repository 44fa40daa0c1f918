package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diet-recommender/config"
	"diet-recommender/internal/artifact"
	"diet-recommender/internal/classifier"
	deliveryHttp "diet-recommender/internal/delivery/http"
	"diet-recommender/internal/delivery/http/handler"
	"diet-recommender/internal/delivery/http/middleware"
	"diet-recommender/internal/infrastructure/database"
	"diet-recommender/internal/repository"
	"diet-recommender/internal/service"
	"diet-recommender/internal/usecase"
	"diet-recommender/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Model  *service.ModelContext
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Setup logger
	log := SetupLogger(cfg.App.LogLevel)

	// Load model artifacts, classifier and encoder
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	model, err := BuildModelContext(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	app.Model = model
	log.Info("Model loaded successfully")

	// Initialize all layers
	app.Server = initializeServer(cfg, log, model)

	return app, nil
}

// SetupLogger configures the logrus standard logger and returns it
func SetupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	return logrus.StandardLogger()
}

// BuildModelContext loads the artifacts from the configured source, builds
// the encoder against the schema and opens the classifier. A database opened
// to read artifacts is closed before returning.
func BuildModelContext(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*service.ModelContext, error) {
	source, db, err := newArtifactSource(cfg, log)
	if err != nil {
		return nil, err
	}

	artifacts, err := source.Load(ctx)
	CloseDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to load artifacts: %w", err)
	}
	log.Infof("Loaded %d feature columns and %d diet labels", len(artifacts.Columns), len(artifacts.Labels))

	encoder, err := service.NewFeatureEncoder(artifacts.Columns, service.EncoderOptions{
		StrictSchema:     cfg.Model.StrictSchema,
		StrictCategories: cfg.Model.StrictCategories,
	}, log)
	if err != nil {
		return nil, err
	}

	clf, err := newClassifier(cfg, artifacts.Columns)
	if err != nil {
		return nil, err
	}

	decoder, err := classifier.NewLabelDecoder(artifacts.Labels)
	if err != nil {
		return nil, err
	}

	return service.NewModelContext(encoder, clf, decoder)
}

func newArtifactSource(cfg *config.Config, log *logrus.Logger) (artifact.Source, *gorm.DB, error) {
	switch cfg.Model.ArtifactSource {
	case config.ArtifactSourceFile:
		return artifact.NewFileSource(cfg.Model.ColumnsPath, cfg.Model.LabelsPath), nil, nil
	case config.ArtifactSourceDatabase:
		db, err := database.NewConnection(cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Info("Database connected successfully")
		return artifact.NewDatabaseSource(db, log, repository.NewArtifactRepository()), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown artifact source %q", cfg.Model.ArtifactSource)
	}
}

func newClassifier(cfg *config.Config, columns []string) (classifier.Classifier, error) {
	switch cfg.Classifier.Mode {
	case config.ClassifierModeLocal:
		return newLocalClassifier(cfg.Model, columns)
	case config.ClassifierModeRemote:
		if cfg.Classifier.URL == "" {
			return nil, fmt.Errorf("CLASSIFIER_URL is required in remote mode")
		}
		return classifier.NewRemoteClassifier(cfg.Classifier.URL, cfg.Classifier.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown classifier mode %q", cfg.Classifier.Mode)
	}
}

func newLocalClassifier(cfg config.ModelConfig, columns []string) (classifier.Classifier, error) {
	switch cfg.ModelFormat {
	case config.ModelFormatTreeDump, "":
		return classifier.LoadTreeEnsembleFile(cfg.ModelPath, columns)
	case config.ModelFormatXGBoost:
		return classifier.LoadXGBoostModelFile(cfg.ModelPath, columns)
	default:
		return nil, fmt.Errorf("unknown model format %q", cfg.ModelFormat)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, model *service.ModelContext) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	recommendationUsecase := usecase.NewRecommendationUsecase(log, model)

	// Initialize handlers
	recommendationHandler := handler.NewRecommendationHandler(recommendationUsecase, customValidator)

	// Initialize middleware
	requestMiddleware := middleware.NewRequestMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(recommendationHandler, requestMiddleware, corsMiddleware)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server shutdown complete")
}

// CloseDB closes db's pool; a nil db is ignored.
func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}
}
