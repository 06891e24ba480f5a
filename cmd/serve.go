package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"s3-uploader/core/loader"
	"s3-uploader/core/logger"
	"s3-uploader/core/middleware/auth"
	"s3-uploader/core/middleware/rayid"
	"s3-uploader/feature/files"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "s3-uploader/docs/swagger"
)

// @title S3 Uploader API
// @version 1.0
// @description API for uploading, listing and deleting files in an S3 bucket.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server exposing upload, list and delete endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, u, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidPort() {
			return fmt.Errorf("invalid server port %q", cfg.Server.Port)
		}

		pingCtx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		if err := u.Ping(pingCtx); err != nil {
			logg.Warn("Bucket is not reachable yet", zap.Error(err))
		}
		cancel()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if cfg.Server.ApiKey == "" {
			logg.Warn("No API key configured, the API is open")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		mgr := loader.NewManager(logg)
		mgr.Register(files.NewFeature(u, logg))
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
