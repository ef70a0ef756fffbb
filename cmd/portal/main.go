package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/voteportal/internal/buildinfo"
	"github.com/dmitrijs2005/voteportal/internal/client/bootstrap"
	"github.com/dmitrijs2005/voteportal/internal/client/config"
	"github.com/dmitrijs2005/voteportal/internal/client/web"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	deps, err := bootstrap.Build(ctx, cfg, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer deps.Close()

	srv := web.NewServer(cfg.ListenAddr, web.NewHandler(deps.Auth, deps.Logger), deps.Logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		deps.Logger.Error(ctx, "portal server failed", "error", err)
	}
}
