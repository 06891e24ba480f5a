package cmd

import (
	"fmt"

	"s3-uploader/core/config"
	"s3-uploader/core/logger"
	"s3-uploader/core/uploader"

	"go.uber.org/zap"
)

// setup loads configuration and builds the logger and uploader every command uses.
func setup() (*config.Config, *zap.Logger, *uploader.Uploader, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	u, err := uploader.New(cfg.Storage, logg)
	if err != nil {
		_ = logg.Sync()
		return nil, nil, nil, fmt.Errorf("failed to create uploader: %w", err)
	}

	return cfg, logg, u, nil
}
