package cmd

import (
	"log/slog"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/commands"
	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/handler"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync-commands",
	Short: "Register slash commands with Discord and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.SetDefault(slog.New(loggerFor(nil)))
		cfg, err := birdhunter.LoadConfig(configPath)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(loggerFor(cfg)))

		client, err := disgo.New(cfg.Bot.Token)
		if err != nil {
			return err
		}
		defer client.Close(cmd.Context())

		b := birdhunter.New(*cfg, version, commit)
		b.Client = client
		return syncCommands(b, cfg)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

// syncCommands pushes the command list globally, or to the dev guilds when any are configured.
func syncCommands(b *birdhunter.Bot, cfg *birdhunter.Config) error {
	slog.Info("Syncing commands",
		slog.String("type", "sys"),
		slog.Int("commands", len(commands.Commands)),
		slog.Any("guild_ids", cfg.Bot.DevGuilds))
	return handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds)
}
