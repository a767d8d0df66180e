package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/vibe-vault/internal/adapter"
	"github.com/MKhiriev/vibe-vault/internal/client"
	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewCLILogger(false).Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app := client.NewApp(*cfg, adapter.NewHTTPPlaylistAPI, os.Stdout,
		strings.Split(strings.TrimSpace(buildInfo.String()), "\n")...)

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
