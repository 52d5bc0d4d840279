package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config carries every tunable the server reads from the environment.
// DATABASE_URL (or the DB_* variables the db package assembles) selects the
// durable store; MONGO_URL, when set, enables the remote directory mirror;
// GOOGLE_APPLICATION_CREDENTIALS enables the Drive menu sync.
type Config struct {
	Port                 string        `envconfig:"PORT" default:"8080"`
	DatabaseURL          string        `envconfig:"DATABASE_URL"`
	MongoURL             string        `envconfig:"MONGO_URL"`
	MongoDatabase        string        `envconfig:"MONGO_DATABASE" default:"food_express"`
	JWTSecret            string        `envconfig:"JWT_SECRET" default:"SECRET"`
	DriveCredentialsPath string        `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`
	DriveMenuFolderID    string        `envconfig:"DRIVE_MENU_FOLDER_ID"`
	OrderProcessingDelay time.Duration `envconfig:"ORDER_PROCESSING_DELAY" default:"1500ms"`
	SnapshotPollInterval time.Duration `envconfig:"SNAPSHOT_POLL_INTERVAL" default:"10s"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
