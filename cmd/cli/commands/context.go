package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/thoshino/wardroster/internal/config"
	"github.com/thoshino/wardroster/pkg/db"
)

// AppContext holds the application dependencies shared across all commands.
// Database is nil when no DATABASE_URL is configured; commands that need it
// go through RequireDatabase.
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
	Env      string
}

func (a *AppContext) RequireDatabase() (db.Database, error) {
	if a.Database == nil {
		return nil, fmt.Errorf("no database configured - set DATABASE_URL")
	}
	return a.Database, nil
}
