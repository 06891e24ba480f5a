package storage

import (
	"fmt"

	"s3-uploader/core/errs"
)

const (
	DefaultEndpoint   = "s3.amazonaws.com"
	DefaultRegion     = "us-east-1"
	DefaultAPIVersion = "latest"
	DefaultFolder     = "images"
	DefaultACL        = "public-read"
	DefaultTimeout    = 30
)

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the host of the S3-compatible service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the name of the bucket uploads are stored in.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:"us-east-1"`
	// APIVersion selects the request signature: latest, v4 or v2.
	APIVersion string `mapstructure:"api_version" default:"latest"`
	// Folder is the root key prefix every object is namespaced under.
	Folder string `mapstructure:"folder" default:"images"`
	// ACL is the canned access-control policy applied on upload.
	ACL string `mapstructure:"acl" default:"public-read"`
	// UniqueSuffix adds a random fragment to generated object names.
	UniqueSuffix bool `mapstructure:"unique_suffix" default:"false"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// DefaultConfig returns a Config with every optional field set.
// Bucket and credentials are left empty.
func DefaultConfig() Config {
	return Config{
		Endpoint:       DefaultEndpoint,
		UseSSL:         true,
		Region:         DefaultRegion,
		APIVersion:     DefaultAPIVersion,
		Folder:         DefaultFolder,
		ACL:            DefaultACL,
		TimeoutSeconds: DefaultTimeout,
	}
}

// ApplyDefaults replaces empty optional values with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Folder == "" {
		c.Folder = DefaultFolder
	}
	if c.ACL == "" {
		c.ACL = DefaultACL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeout
	}
}

// Validate checks that the required fields are present.
func (c Config) Validate() error {
	if c.Bucket == "" {
		return errs.New(errs.KindConfiguration, "bucket is required")
	}
	if c.AccessKey == "" {
		return errs.New(errs.KindConfiguration, "access key is required")
	}
	if c.SecretKey == "" {
		return errs.New(errs.KindConfiguration, "secret key is required")
	}

	switch c.APIVersion {
	case "", "latest", "v4", "v2":
	default:
		return errs.New(errs.KindConfiguration, fmt.Sprintf("unsupported api version %q", c.APIVersion))
	}
	return nil
}
