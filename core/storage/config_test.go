package storage_test

import (
	"testing"

	"s3-uploader/core/errs"
	"s3-uploader/core/storage"

	"github.com/stretchr/testify/assert"
)

func validConfig() storage.Config {
	cfg := storage.DefaultConfig()
	cfg.Bucket = "my-test-bucket"
	cfg.AccessKey = "test-key"
	cfg.SecretKey = "test-secret"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*storage.Config)
		wantErr bool
	}{
		{"Valid", func(c *storage.Config) {}, false},
		{"MissingBucket", func(c *storage.Config) { c.Bucket = "" }, true},
		{"MissingAccessKey", func(c *storage.Config) { c.AccessKey = "" }, true},
		{"MissingSecretKey", func(c *storage.Config) { c.SecretKey = "" }, true},
		{"SignatureV2", func(c *storage.Config) { c.APIVersion = "v2" }, false},
		{"UnknownAPIVersion", func(c *storage.Config) { c.APIVersion = "2006-03-01" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errs.IsConfiguration(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := storage.Config{Bucket: "b", AccessKey: "k", SecretKey: "s"}
	cfg.ApplyDefaults()

	assert.Equal(t, "images", cfg.Folder)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "public-read", cfg.ACL)
	assert.Equal(t, "latest", cfg.APIVersion)
	assert.Equal(t, "s3.amazonaws.com", cfg.Endpoint)
	assert.Equal(t, 30, cfg.TimeoutSeconds)

	t.Run("KeepsOverrides", func(t *testing.T) {
		cfg := storage.Config{Folder: "uploads", Region: "eu-west-1", ACL: "private", APIVersion: "v4"}
		cfg.ApplyDefaults()

		assert.Equal(t, "uploads", cfg.Folder)
		assert.Equal(t, "eu-west-1", cfg.Region)
		assert.Equal(t, "private", cfg.ACL)
		assert.Equal(t, "v4", cfg.APIVersion)
	})
}
