package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/internal/auth"
	"github.com/darrkasamna/catalog/internal/db"
	"github.com/darrkasamna/catalog/internal/gateway"
	"github.com/darrkasamna/catalog/internal/prefs"
	"github.com/darrkasamna/catalog/internal/remote"
	"github.com/darrkasamna/catalog/internal/session"
	"github.com/darrkasamna/catalog/internal/store"
	"github.com/darrkasamna/catalog/pkg/config"
	"github.com/darrkasamna/catalog/pkg/logging"
	"github.com/darrkasamna/catalog/pkg/telemetry"
)

const skipSession = "skip-session"

// app holds the state shared by every command
type app struct {
	local   bool
	token   string
	subject string

	cfg      *config.Config
	session  *session.Session
	closers  []func()
	shutdown func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := &app{}
	err := a.execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// execute runs one command and releases everything setup acquired, even
// when setup or the command fails.
func (a *app) execute(ctx context.Context, args []string) error {
	defer a.teardown()

	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Browse and manage the stories catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVar(&a.local, "local", false, "use the configured database directly instead of the remote store")
	root.PersistentFlags().StringVar(&a.token, "token", "", "bearer token (defaults to gateway_token)")
	root.PersistentFlags().StringVar(&a.subject, "subject", "", "subject name recorded for the session")

	root.AddCommand(
		a.latestCommand(),
		a.categoryCommand(),
		a.categoriesCommand(),
		a.searchCommand(),
		a.storyCommand(),
		a.viewCommand(),
		a.commentsCommand(),
		a.commentCommand(),
		a.createCommand(),
		a.logoCommand(),
		a.thumbnailCommand(),
		a.followCommand(),
		a.followersCommand(),
		a.adminCommand(),
		a.nightModeCommand(),
		a.tokenCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	if err := logging.InitLogger(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.closers = append(a.closers, logging.Sync)

	shutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	a.closers = append(a.closers, shutdown)

	if cmd.Annotations[skipSession] == "true" {
		return nil
	}

	factory, err := a.factory(cmd.Context())
	if err != nil {
		return err
	}

	prefStore, err := prefs.NewStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}

	s, err := session.New(cfg, factory, prefStore)
	if err != nil {
		return err
	}
	a.session = s
	a.closers = append(a.closers, func() {
		if err := s.Close(); err != nil {
			logging.GetLogger().Warn("Failed to close session", zap.Error(err))
		}
	})

	token := a.token
	if token == "" {
		token = cfg.Gateway.Token
	}
	return s.Start(cmd.Context(), gateway.Identity{Subject: a.subject, Token: token})
}

func (a *app) factory(ctx context.Context) (gateway.Factory, error) {
	if !a.local {
		return remote.Factory(&a.cfg.Gateway), nil
	}

	database, err := db.New(&a.cfg.Database, a.cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.closers = append(a.closers, func() { database.Close() })

	if err := database.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var authority *auth.Authority
	if a.cfg.Auth.JWTSecret != "" {
		if authority, err = auth.NewAuthority(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL); err != nil {
			return nil, err
		}
	}
	return store.LocalFactory(store.New(database, int(a.cfg.Media.MaxBytes)), authority), nil
}

func (a *app) teardown() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
