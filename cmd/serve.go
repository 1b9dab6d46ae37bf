package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"inventory-manager/core/loader"
	"inventory-manager/core/logger"
	"inventory-manager/core/middleware/auth"
	"inventory-manager/core/middleware/rayid"
	"inventory-manager/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the read-only HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only catalog API",
	Long: `Start an HTTP server exposing the catalog for reading (list, lookup by id).
Mutations stay on the command surface, preserving the single-writer model.`,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := setupApp(ctx)
	if err != nil {
		return err
	}
	logg := app.logger
	defer logg.Sync()

	fiberApp := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// RayID first so everything downstream can be traced.
	fiberApp.Use(rayid.New())

	// Request logging with Zap + RayID.
	fiberApp.Use(func(c *fiber.Ctx) error {
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

	// Optional api-key protection.
	fiberApp.Use(auth.New(auth.Config{ApiKey: app.cfg.Server.ApiKey}))

	mgr := loader.NewManager()
	mgr.Register(inventory.NewFeatureFromService(app.service))
	if err := mgr.LoadAll(fiberApp); err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}

	go func() {
		logg.Info("Starting server", zap.String("port", app.cfg.Server.Port))
		if err := fiberApp.Listen(":" + app.cfg.Server.Port); err != nil {
			logg.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logg.Info("Shutting down server...")
	return fiberApp.Shutdown()
}
