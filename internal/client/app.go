package client

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/vibe-vault/internal/adapter"
	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
)

// APIFactory builds the API client once flags have been applied to cfg.
type APIFactory func(cfg config.ClientConfig, logger *logger.Logger) (adapter.PlaylistAPI, error)

type App struct {
	cfg        config.ClientConfig
	newAPI     APIFactory
	buildLines []string

	api     adapter.PlaylistAPI
	logger  *logger.Logger
	verbose bool
	asJSON  bool

	out io.Writer
}

// NewApp returns a client bound to cfg. buildLines are printed by the
// version command before the server version.
func NewApp(cfg config.ClientConfig, newAPI APIFactory, out io.Writer, buildLines ...string) *App {
	return &App{
		cfg:        cfg,
		newAPI:     newAPI,
		buildLines: buildLines,
		logger:     logger.Nop(),
		out:        out,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)

	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vibevault",
		Short:         "Command-line client for the VibeVault playlist service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.ServerURL, "server", "s", a.cfg.ServerURL, "server base URL (env VIBEVAULT_SERVER_URL)")
	flags.StringVarP(&a.cfg.Token, "token", "t", a.cfg.Token, "bearer token (env VIBEVAULT_TOKEN)")
	flags.DurationVar(&a.cfg.RequestTimeout, "timeout", a.cfg.RequestTimeout, "request timeout (env VIBEVAULT_TIMEOUT)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")
	flags.BoolVar(&a.asJSON, "json", false, "print raw JSON")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.playlistsCommand(),
		a.versionCommand(),
	)

	return root
}

// connect applies flag overrides and builds the API client.
func (a *App) connect() error {
	if a.verbose {
		a.logger = logger.NewCLILogger(true)
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	api, err := a.newAPI(a.cfg, a.logger)
	if err != nil {
		return err
	}
	a.api = api

	a.logger.Debug().
		Str("server", a.cfg.ServerURL).
		Bool("token", a.cfg.Token != "").
		Str("timeout", a.cfg.RequestTimeout.Round(time.Millisecond).String()).
		Msg("client configured")

	return nil
}
