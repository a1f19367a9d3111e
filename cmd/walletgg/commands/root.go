package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"walletgg/internal/app"
	"walletgg/internal/domain"
)

var (
	configPath string
	home       string
	apiURL     string
	passphrase string
	storage    string
	timeout    time.Duration
	logLevel   string
	logFormat  string

	appCtx *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := newRoot().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errSilent) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

// errSilent fails a command whose outcome was already reported.
var errSilent = errors.New("reported")

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "walletgg",
		Short:         "WALLET.GG personal finance client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			log, err := app.NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, app.WriterNotifier{W: cmd.ErrOrStderr()}, log)
			if err != nil {
				return err
			}
			w.Bus.Subscribe(domain.EventSignedUp, func(e domain.Event) {
				fmt.Fprintf(cmd.ErrOrStderr(), "next: walletgg login %s\n", e.Username)
			})
			appCtx = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	pf.StringVar(&home, "home", "", "storage dir (default ~/.walletgg)")
	pf.StringVar(&apiURL, "api", "", "API base URL (default "+app.DefaultAPIURL+")")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase for sealed storage")
	pf.StringVar(&storage, "storage", "", "storage backend: file, sealed or memory")
	pf.DurationVar(&timeout, "timeout", 0, "per-request timeout (default 30s)")
	pf.StringVar(&logLevel, "log-level", "", "log level (default warning)")
	pf.StringVar(&logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		signupCmd(), loginCmd(), logoutCmd(), whoamiCmd(),
		articlesCmd(), productsCmd(), marketCmd(), financeCmd(),
	)
	return root
}

// resolveConfig layers defaults, the config file, the environment and the
// flags the user actually set.
func resolveConfig(cmd *cobra.Command) (app.Config, error) {
	cfg := app.Default()
	cfg.ApplyEnv(os.Getenv) // WALLETGG_HOME decides where the file lives
	if home != "" {
		cfg.Home = home
	}

	path, required := configPath, true
	if path == "" {
		path, required = app.ConfigPath(cfg.Home), false
	}
	cfg, err := app.Load(cfg, path, required)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(os.Getenv)

	f := cmd.Flags()
	if f.Changed("home") {
		cfg.Home = home
	}
	if f.Changed("api") {
		cfg.APIURL = apiURL
	}
	if f.Changed("passphrase") {
		cfg.Passphrase = passphrase
	}
	if f.Changed("storage") {
		cfg.Storage = app.StorageKind(storage)
	}
	if f.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if f.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	return cfg, nil
}
