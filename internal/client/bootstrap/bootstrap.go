// Package bootstrap assembles the components shared by the portal and the
// terminal client from a loaded Config.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/voteportal/internal/client/client"
	"github.com/dmitrijs2005/voteportal/internal/client/config"
	"github.com/dmitrijs2005/voteportal/internal/client/repositories/kv"
	"github.com/dmitrijs2005/voteportal/internal/client/services"
	"github.com/dmitrijs2005/voteportal/internal/client/state"
	"github.com/dmitrijs2005/voteportal/internal/filex"
	"github.com/dmitrijs2005/voteportal/internal/logging"
)

type Deps struct {
	Config *config.Config
	Logger logging.Logger
	DB     *sql.DB
	Store  *state.Store
	API    *client.HTTPClient
	Auth   services.AuthService
}

// Build opens the state database and wires the auth flow to the remote API.
// Log output goes to logOut. The caller must Close the result.
func Build(ctx context.Context, cfg *config.Config, logOut io.Writer) (*Deps, error) {
	logger := logging.New(logOut, cfg.LogLevel, logging.Format(cfg.LogFormat))

	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return nil, fmt.Errorf("error preparing database directory: %w", err)
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := state.NewStore(kv.NewSQLiteRepository(db))

	var opts []client.Option
	if cfg.RequestTimeout > 0 {
		opts = append(opts, client.WithTimeout(cfg.RequestTimeout))
	}
	api := client.NewHTTPClient(cfg.APIBaseURL, store, opts...)

	auth := services.NewAuthService(api, store, logger, services.Options{
		RegisterRedirectDelay: cfg.RegisterRedirectDelay,
		FallbackRedirectDelay: cfg.FallbackRedirectDelay,
		StrictOfflineLogin:    cfg.StrictOfflineLogin,
	})

	logger.Info(ctx, "portal components ready",
		"api_base", api.BaseURL(),
		"database", cfg.DatabasePath,
		"strict_offline_login", cfg.StrictOfflineLogin,
	)

	return &Deps{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Store:  store,
		API:    api,
		Auth:   auth,
	}, nil
}

func (d *Deps) Close() error {
	return d.DB.Close()
}
