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
	"github.com/dmitrijs2005/voteportal/internal/client/cli"
	"github.com/dmitrijs2005/voteportal/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	deps, err := bootstrap.Build(ctx, cfg, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer deps.Close()

	app := cli.NewApp(deps.Auth, deps.Logger, os.Stdin, os.Stdout)
	app.Run(ctx, cfg.OnlineCheckInterval)
}
