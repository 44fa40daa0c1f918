package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Model      ModelConfig
	Classifier ClassifierConfig
}

type AppConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string
}

// ModelConfig points at the trained model artifacts and sets how strictly
// they are checked against the encoder's expectations.
type ModelConfig struct {
	ArtifactSource   string
	ColumnsPath      string
	LabelsPath       string
	ModelPath        string
	ModelFormat      string
	StrictSchema     bool
	StrictCategories bool
}

type ClassifierConfig struct {
	Mode    string
	URL     string
	Timeout time.Duration
}

const (
	ArtifactSourceFile     = "file"
	ArtifactSourceDatabase = "database"

	ClassifierModeLocal  = "local"
	ClassifierModeRemote = "remote"

	ModelFormatTreeDump = "tree-dump"
	ModelFormatXGBoost  = "xgboost"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// LoadConfigFrom reads path as a dotenv file and overlays the process
// environment. A missing file is not an error.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	timeout, err := time.ParseDuration(v.GetString("CLASSIFIER_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLASSIFIER_TIMEOUT %q: %w", v.GetString("CLASSIFIER_TIMEOUT"), err)
	}

	config := &Config{
		App: AppConfig{
			Port:           v.GetString("APP_PORT"),
			Env:            v.GetString("APP_ENV"),
			LogLevel:       v.GetString("LOG_LEVEL"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Driver:   v.GetString("DB_DRIVER"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Path:     v.GetString("DB_PATH"),
		},
		Model: ModelConfig{
			ArtifactSource:   v.GetString("ARTIFACT_SOURCE"),
			ColumnsPath:      v.GetString("MODEL_COLUMNS_PATH"),
			LabelsPath:       v.GetString("MODEL_LABELS_PATH"),
			ModelPath:        v.GetString("MODEL_PATH"),
			ModelFormat:      v.GetString("MODEL_FORMAT"),
			StrictSchema:     v.GetBool("MODEL_STRICT_SCHEMA"),
			StrictCategories: v.GetBool("MODEL_STRICT_CATEGORIES"),
		},
		Classifier: ClassifierConfig{
			Mode:    v.GetString("CLASSIFIER_MODE"),
			URL:     v.GetString("CLASSIFIER_URL"),
			Timeout: timeout,
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_DRIVER", DBDriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_PATH", "diet.db")

	v.SetDefault("ARTIFACT_SOURCE", ArtifactSourceFile)
	v.SetDefault("MODEL_COLUMNS_PATH", "artifacts/diet_model_columns.json")
	v.SetDefault("MODEL_LABELS_PATH", "artifacts/diet_labels.json")
	v.SetDefault("MODEL_PATH", "artifacts/diet_model.json")
	v.SetDefault("MODEL_FORMAT", ModelFormatTreeDump)
	v.SetDefault("MODEL_STRICT_SCHEMA", false)
	v.SetDefault("MODEL_STRICT_CATEGORIES", false)

	v.SetDefault("CLASSIFIER_MODE", ClassifierModeLocal)
	v.SetDefault("CLASSIFIER_TIMEOUT", "30s")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
