package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jakechorley/vacation-probe/cmd/cli/commands"
	"github.com/jakechorley/vacation-probe/internal/config"
	"github.com/jakechorley/vacation-probe/pkg/clients/vacationsclient"
	"github.com/jakechorley/vacation-probe/pkg/utils/logging"
)

var (
	flags commands.GlobalFlags
	app   = &commands.AppContext{}
)

func main() {
	rootCmd := commands.NewRootCmd(app, &flags, initApp)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads config and sets up the logger and the vacations client
func initApp() error {
	app.Ctx = context.Background()
	app.Out = os.Stdout

	// Load configuration first; the log directory comes from it
	var (
		cfg *config.Config
		err error
	)
	if flags.ConfigPath != "" {
		cfg, err = config.LoadFromPath(flags.ConfigPath)
	} else {
		cfg, err = config.LoadWithEnv(flags.Env)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg

	app.Logger, app.CloseLog, err = logging.InitLogger(logging.Options{
		Env:     flags.Env,
		LogDir:  cfg.LogDir,
		Verbose: flags.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Configuration loaded",
		zap.String("environment", flags.Env),
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout()))

	app.VacationsClient, err = vacationsclient.NewClient(cfg, app.Logger)
	if err != nil {
		return fmt.Errorf("failed to create vacations client: %w", err)
	}
	app.Logger.Debug("Vacations client initialized", zap.String("url", app.VacationsClient.CollectionURL()))

	return nil
}
