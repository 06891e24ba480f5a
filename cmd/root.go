package cmd

import (
	"fmt"
	"os"

	"s3-uploader/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where config.yaml and .env are looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "s3-uploader",
	Short: "Upload, list and delete files in an S3 bucket",
	Long: `s3-uploader stores files under a folder prefix in a single S3 bucket.
Filenames are sanitized and prefixed with the upload time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config for readable CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding config.yaml and .env")
}
