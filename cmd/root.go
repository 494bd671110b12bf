package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tasktagger/internal/app"
	"tasktagger/internal/client"
	"tasktagger/internal/clix"
	"tasktagger/internal/config"
	"tasktagger/internal/inputprocessor"
)

var rootCmd = &cobra.Command{
	Use:   "tasktagger",
	Short: "Keyword-based task categorizer",
	Long: `tasktagger assigns category tags and a priority level to short task
descriptions using a fixed keyword rule table. Run it as an HTTP service
with "serve" or classify text directly with "categorize".`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return initApp(cmd, cfg)
	},
}

// initApp validates cfg, configures logging and stores the App in the command context.
func initApp(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.ConfigureLogging(cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	appInstance, err := app.NewApp(cfg, inputprocessor.NewWithStdin(cmd.InOrStdin()))
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey, appInstance))
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().String("remote", "", "Server base URL (defaults to client.url)")
	doctorCmd.Flags().Lookup("remote").NoOptDefVal = " "
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that a categorizer server is reachable and healthy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		remote, err := clix.ParseRemote(cmd.Flags(), appInstance.Config.Client.URL)
		if err != nil {
			return err
		}
		baseURL := appInstance.Config.Client.URL
		if remote.Enabled {
			baseURL = remote.URL
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Checking categorizer at %s...\n", baseURL)

		start := time.Now()
		health, err := client.New(baseURL, appInstance.Config.Client.Timeout).Health(ctx)
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", color.RedString("FAIL"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
		log.Debugf("Health check took %s", time.Since(start))

		fmt.Fprintf(out, "%s status=%s (%s)\n", color.GreenString("OK"), health.Status, time.Since(start).Round(time.Millisecond))
		return nil
	},
}
