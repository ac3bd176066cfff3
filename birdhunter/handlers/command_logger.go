package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/metrics"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// interaction is the part of the disgo handler events the wrappers rely on.
type interaction interface {
	User() discord.User
	GuildID() *snowflake.ID
	ChannelID() snowflake.ID
	CreateMessage(messageCreate discord.MessageCreate, opts ...rest.RequestOpt) error
	CreateFollowupMessage(messageCreate discord.MessageCreate, opts ...rest.RequestOpt) (*discord.Message, error)
}

// WrapWithLogging wraps a command handler with logging, metrics and error replies.
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return wrap[*handler.CommandEvent]("cmd", "Command", name, h)
}

// WrapComponentWithLogging wraps a component handler the same way.
func WrapComponentWithLogging(name string, h handler.ComponentHandler) handler.ComponentHandler {
	return wrap[*handler.ComponentEvent]("component", "Component interaction", name, h)
}

// WrapModalWithLogging wraps a modal submit handler the same way.
func WrapModalWithLogging(name string, h handler.ModalHandler) handler.ModalHandler {
	return wrap[*handler.ModalEvent]("modal", "Modal submission", name, h)
}

func wrap[E interaction](kind, label, name string, h func(E) error) func(E) error {
	return func(e E) error {
		start := time.Now()
		user := e.User()
		guildID := ""
		if id := e.GuildID(); id != nil {
			guildID = id.String()
		}

		slog.Info(label+" started",
			slog.String("type", kind),
			slog.String("name", name),
			slog.String("user_id", user.ID.String()),
			slog.String("user_name", user.Username),
			slog.String("guild_id", guildID),
			slog.String("channel_id", e.ChannelID().String()),
		)

		done := make(chan error, 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					done <- fmt.Errorf("panic in %s: %v", name, r)
				}
			}()
			done <- h(e)
		}()

		select {
		case err := <-done:
			duration := time.Since(start)
			attrs := []any{
				slog.String("type", kind),
				slog.String("name", name),
				slog.String("user_id", user.ID.String()),
				slog.String("user_name", user.Username),
				slog.Duration("took", duration),
			}

			switch {
			case err != nil && gameerr.IsUserFacing(err):
				slog.Info(label+" rejected", append(attrs,
					slog.String("reason", err.Error()),
					slog.String("status", "rejected"),
				)...)
				metrics.ObserveCommand(name, "rejected", duration)
				return reply(e, err)
			case err != nil:
				slog.Error(label+" failed", append(attrs,
					slog.Any("error", err),
					slog.String("status", "failed"),
				)...)
				metrics.ObserveCommand(name, metrics.StatusFailed, duration)
				return reply(e, err)
			case duration > config.SlowCommandThreshold:
				slog.Warn(label+" executed slowly", append(attrs,
					slog.String("status", "slow"),
				)...)
			default:
				slog.Info(label+" completed", append(attrs,
					slog.String("status", "success"),
				)...)
			}
			metrics.ObserveCommand(name, metrics.StatusSuccess, duration)
			return nil

		case <-time.After(config.CommandExecutionTimeout):
			slog.Error(label+" timed out",
				slog.String("type", kind),
				slog.String("name", name),
				slog.String("user_id", user.ID.String()),
				slog.String("user_name", user.Username),
				slog.String("status", "timeout"),
				slog.Duration("timeout", config.CommandExecutionTimeout),
			)
			metrics.ObserveCommand(name, metrics.StatusTimeout, config.CommandExecutionTimeout)
			return fmt.Errorf("%s %s timed out after %s", kind, name, config.CommandExecutionTimeout)
		}
	}
}

// reply shows the classified error, falling back to a followup when the
// interaction was already acknowledged.
func reply(e interaction, cause error) error {
	errorType, message := utils.ClassifyError(cause)
	msg := utils.ErrorMessage(errorType, message)
	if err := e.CreateMessage(msg); err == nil {
		return nil
	}
	if _, err := e.CreateFollowupMessage(msg); err != nil {
		return fmt.Errorf("failed to report error %q: %w", cause, err)
	}
	return nil
}
