package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/cmd/cli/commands"
	"github.com/thoshino/wardroster/internal/config"
	"github.com/thoshino/wardroster/pkg/postgres"
	"github.com/thoshino/wardroster/pkg/utils/logging"
)

var env string

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "wardroster",
		Short: "Wardroster CLI - Generate monthly shift schedules",
		Long:  `A CLI tool for managing care-facility staff, day-off requests, and monthly shift schedule generation.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "local", "Environment name (selects log and OAuth client files)")

	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.AddStaffCmd(app))
	rootCmd.AddCommand(commands.AddDayOffCmd(app))
	rootCmd.AddCommand(commands.ListStaffCmd(app))
	rootCmd.AddCommand(commands.ListRunsCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, config, and (when DATABASE_URL is set) the
// postgres store.
func initApp(app *commands.AppContext) error {
	app.Ctx = context.Background()
	app.Env = env

	envPaths := []string{".env", "../.env", "../../.env"}
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			break
		}
	}

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	app.Logger.Info("Starting application", zap.String("environment", env))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg
	app.Logger.Debug("Configuration loaded successfully")

	if connString := os.Getenv("DATABASE_URL"); connString != "" {
		app.Logger.Info("Connecting to database")
		pg, err := postgres.NewDB(app.Ctx, connString)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Database = pg
		app.Logger.Info("Database initialized successfully")
	} else {
		app.Logger.Debug("No DATABASE_URL set, running without a database")
	}

	return nil
}
