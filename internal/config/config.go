package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Resolution-error policies. "allow" treats a visitor whose quota record
// could not be read as brand new (the product's fail-open choice); "deny"
// surfaces the failure to the client instead of granting usage.
const (
	OnErrorAllow = "allow"
	OnErrorDeny  = "deny"
)

type Config struct {
	// Local & GitHub Secrets (fill up for local development)
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`
	JWTSecret          string `envconfig:"SUPABASE_JWT_SECRET"`
	S3URL              string `envconfig:"SUPABASE_S3_URL" required:"true"`
	S3Bucket           string `envconfig:"SUPABASE_S3_BUCKET" required:"true"`
	S3Region           string `envconfig:"SUPABASE_S3_REGION" required:"true"`
	S3AccessKey        string `envconfig:"SUPABASE_S3_ACCESS_KEY" required:"true"`
	S3SecretKey        string `envconfig:"SUPABASE_S3_SECRET_KEY" required:"true"`
	Environment        string `envconfig:"ENV" default:"development"`
	Port               string `envconfig:"PORT" default:"8080"`

	// Anonymous usage gate policy. The similarity threshold and the
	// behavior on resolution errors are product policy, kept in
	// configuration rather than constants.
	SimilarityThreshold int    `envconfig:"GATE_SIMILARITY_THRESHOLD" default:"70"`
	CandidateLimit      int    `envconfig:"GATE_CANDIDATE_LIMIT" default:"10"`
	FreeTransformLimit  int    `envconfig:"GATE_FREE_TRANSFORM_LIMIT" default:"1"`
	OnResolutionError   string `envconfig:"GATE_ON_RESOLUTION_ERROR" default:"allow"`
	LegacyMirror        bool   `envconfig:"GATE_LEGACY_MIRROR" default:"true"`

	// Pub/Sub event publishing
	GCPProjectID       string `envconfig:"GCP_PROJECT_ID"`
	PubSubEmulatorHost string `envconfig:"PUBSUB_EMULATOR_HOST"`
	PubSubUsageTopic   string `envconfig:"PUBSUB_USAGE_TOPIC" default:"transformation-events"`

	// Secret Manager fallback for the JWT secret outside development.
	JWTSecretName string `envconfig:"JWT_SECRET_NAME"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.OnResolutionError != OnErrorAllow && cfg.OnResolutionError != OnErrorDeny {
		return nil, fmt.Errorf("GATE_ON_RESOLUTION_ERROR must be %q or %q, got %q",
			OnErrorAllow, OnErrorDeny, cfg.OnResolutionError)
	}
	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 100 {
		return nil, fmt.Errorf("GATE_SIMILARITY_THRESHOLD must be in [0,100], got %d", cfg.SimilarityThreshold)
	}
	if cfg.JWTSecret == "" && cfg.JWTSecretName == "" {
		return nil, fmt.Errorf("one of SUPABASE_JWT_SECRET or JWT_SECRET_NAME must be set")
	}
	return &cfg, nil
}
