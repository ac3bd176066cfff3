package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/commands"
	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/database"
	"github.com/birdwatchers/birdhunter/birdhunter/logger"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"

	configPath  string
	syncOnStart bool
)

var rootCmd = &cobra.Command{
	Use:           "birdhunter",
	Short:         "Discord bird watching game",
	Version:       version + " (" + commit + ")",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config")
	rootCmd.Flags().BoolVar(&syncOnStart, "sync-commands", false, "sync slash commands before connecting")
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("Command failed", slog.String("type", "sys"), slog.Any("error", err))
		os.Exit(1)
	}
}

// loggerFor builds the handler for cfg; nil gives the console default used until the config is read.
func loggerFor(cfg *birdhunter.Config) slog.Handler {
	if cfg == nil {
		return logger.New(os.Stdout, logger.Options{})
	}
	return logger.New(os.Stdout, logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	})
}

// setup loads the config, installs the logger and opens the database with its schema applied.
func setup(ctx context.Context) (*birdhunter.Config, *database.DB, error) {
	slog.SetDefault(slog.New(loggerFor(nil)))

	cfg, err := birdhunter.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(slog.New(loggerFor(cfg)))
	slog.Info("Configuration loaded", slog.String("type", "sys"), slog.String("path", configPath))

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, config.StartupTimeout)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.InitializeSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	slog.Info("Database ready",
		slog.String("type", "db"),
		slog.String("driver", db.Driver()),
		logger.Since(start))
	return cfg, db, nil
}

func run(ctx context.Context) error {
	cfg, db, err := setup(ctx)
	if err != nil {
		return err
	}

	b := birdhunter.New(*cfg, version, commit)
	if err := b.InitServices(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := b.Close(ctx); err != nil {
			slog.Error("Shutdown incomplete", slog.String("type", "sys"), slog.Any("error", err))
		}
	}()

	h := handler.New()
	commands.Register(h, b)

	if err := b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		return fmt.Errorf("failed to setup bot: %w", err)
	}
	if err := b.StartBackground(); err != nil {
		return fmt.Errorf("failed to start background jobs: %w", err)
	}

	if syncOnStart {
		if err := syncCommands(b, cfg); err != nil {
			slog.Error("Failed to sync commands", slog.String("type", "sys"), slog.Any("error", err))
		}
	}

	openCtx, cancel := context.WithTimeout(ctx, config.GatewayTimeout)
	defer cancel()
	if err := b.Client.OpenGateway(openCtx); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.", slog.String("type", "sys"))
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...", slog.String("type", "sys"))
	return nil
}
