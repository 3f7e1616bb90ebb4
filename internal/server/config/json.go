package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mhartwell/equinesocial/internal/flagx"
	"github.com/mhartwell/equinesocial/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. Duration fields accept
// both strings ("24h") and integer nanoseconds via timex.Duration. Pointer
// fields distinguish "absent" from "explicit zero value" so a partial file
// only overrides what it names.
type JsonConfig struct {
	EndpointAddrHTTP        *string         `json:"endpoint_addr_http"`
	DatabaseDSN             *string         `json:"database_dsn"`
	SecretKey               *string         `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	S3User                  *string         `json:"s3_user"`
	S3Password              *string         `json:"s3_password"`
	S3Bucket                *string         `json:"s3_bucket"`
	S3Region                *string         `json:"s3_region"`
	S3BaseEndpoint          *string         `json:"s3_base_endpoint"`
	UploadDir               *string         `json:"upload_dir"`
	OpenPosting             *bool           `json:"open_posting"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flags, if any. A missing flag means no file is loaded; an unreadable or
// invalid file panics, since the process cannot run with a half-applied
// configuration.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
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
		config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
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
