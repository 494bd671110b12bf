package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tasktagger/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort int    // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the categorizer as an HTTP API server",
	Long: `Starts an HTTP server exposing GET /health and POST /categorize.
--addr and --port override server.addr and server.port from the config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		cfg := appInstance.Config
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		gin.SetMode(cfg.Server.Mode)
		router := apihandlers.NewRouter(apihandlers.NewAPIHandler(appInstance))

		ln, err := net.Listen("tcp", cfg.ListenAddr())
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", cfg.ListenAddr(), err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Infof("Starting categorizer API server on http://%s", ln.Addr())
		if err := runServer(ctx, ln, router, cfg.Server.ShutdownTimeout); err != nil {
			log.Errorf("API server failed: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}
		log.Info("Categorizer API server stopped.")
		return nil
	},
}

// runServer serves handler on ln until ctx is done, then shuts down gracefully.
func runServer(ctx context.Context, ln net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down API server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "0.0.0.0", "Address to listen on (e.g., '127.0.0.1' for local only)")
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on")
}
