package commands

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/vacation-probe/internal/config"
	"github.com/jakechorley/vacation-probe/pkg/clients/vacationsclient"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg             *config.Config
	VacationsClient *vacationsclient.Client
	Logger          *zap.Logger
	Out             io.Writer
	Ctx             context.Context
	// CloseLog flushes the logger and closes its file, if any
	CloseLog func()
}
