package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/smilintux/skyforge/internal/api"
	"github.com/smilintux/skyforge/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST API server",
	Long: `Starts the HTTP API server.

Endpoints:
  GET    /health                                    - Health check
  GET    /api/profiles                              - List profiles
  POST   /api/profiles                              - Create/update profile
  GET    /api/profiles/{name}                       - Get profile
  DELETE /api/profiles/{name}                       - Delete profile
  GET    /api/profiles/{name}/report/{date}         - Daily report
  GET    /api/profiles/{name}/calendar              - Calendar range
  GET    /api/profiles/{name}/calendar/stream       - Calendar websocket stream

Example:
  go run ./cmd/skyforge api
  go run ./cmd/skyforge api --port 8090`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	if apiPort != "" {
		rt.cfg.Port = apiPort
	}

	profileHandler := handlers.NewProfileHandler(rt.store, rt.geocoder, rt.log)
	reportHandler := handlers.NewReportHandler(rt.store, rt.service, rt.log)
	calendarStream := handlers.NewCalendarStreamHandler(rt.store, rt.service, rt.log)

	router := api.NewRouter(profileHandler, reportHandler, calendarStream, rt.log)
	server := api.New(rt.cfg, rt.log, router)

	go func() {
		if err := server.Start(); err != nil {
			rt.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", rt.cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	rt.log.Info("Server stopped")
	return nil
}
