package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig uses pointer fields so only variables actually present in the
// environment override earlier layers.
type envConfig struct {
	EndpointAddrHTTP        *string        `env:"ADDRESS"`
	DatabaseDSN             *string        `env:"DATABASE_DSN"`
	SecretKey               *string        `env:"SECRET_KEY"`
	SessionValidityDuration *time.Duration `env:"SESSION_VALIDITY_DURATION"`
	S3User                  *string        `env:"S3_USER"`
	S3Password              *string        `env:"S3_PASSWORD"`
	S3Bucket                *string        `env:"S3_BUCKET"`
	S3Region                *string        `env:"S3_REGION"`
	S3BaseEndpoint          *string        `env:"S3_BASE_ENDPOINT"`
	UploadDir               *string        `env:"UPLOAD_DIR"`
	OpenPosting             *bool          `env:"OPEN_POSTING"`
}

// parseEnv overlays values from environment variables. Invalid values (for
// example an unparseable duration) panic for the same reason parseJson does.
func parseEnv(config *Config) {
	c := &envConfig{}
	if err := env.Parse(c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = *c.SessionValidityDuration
	}
	if c.S3User != nil {
		config.S3User = *c.S3User
	}
	if c.S3Password != nil {
		config.S3Password = *c.S3Password
	}
	if c.S3Bucket != nil {
		config.S3Bucket = *c.S3Bucket
	}
	if c.S3Region != nil {
		config.S3Region = *c.S3Region
	}
	if c.S3BaseEndpoint != nil {
		config.S3BaseEndpoint = *c.S3BaseEndpoint
	}
	if c.UploadDir != nil {
		config.UploadDir = *c.UploadDir
	}
	if c.OpenPosting != nil {
		config.OpenPosting = *c.OpenPosting
	}
}
