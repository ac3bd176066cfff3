package birdhunter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/config"
	"github.com/birdwatchers/birdhunter/birdhunter/database"
	"github.com/birdwatchers/birdhunter/birdhunter/database/repositories"
	"github.com/birdwatchers/birdhunter/birdhunter/metrics"
	"github.com/birdwatchers/birdhunter/birdhunter/services"
	"github.com/birdwatchers/birdhunter/birdhunter/utils"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/progression"
	"github.com/birdwatchers/birdhunter/internal/domain/social"
	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:        cfg,
		Paginator:  paginator.New(),
		Version:    version,
		Commit:     commit,
		Clock:      clockwork.NewRealClock(),
		Rand:       NewRand(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Background: utils.NewBackgroundProcessManager(context.Background()),
	}
}

type Bot struct {
	Cfg        Config
	Client     bot.Client
	Paginator  *paginator.Manager
	Version    string
	Commit     string
	Clock      clockwork.Clock
	Rand       *Rand
	DB         *database.DB
	Background *utils.BackgroundProcessManager
	Scheduler  *services.Scheduler
	Metrics    *metrics.Server

	Cooldowns     *cooldown.Tracker
	Economy       *economy.Service
	Collection    *collection.Service
	Social        *social.Service
	Progression   *progression.Service
	SpeciesSearch *services.SpeciesSearch
	// Images is nil when no Spaces bucket is configured.
	Images *services.BirdImageService

	Encounters *services.SessionStore[Encounter]
	JobOffers  *services.SessionStore[[]catalog.Job]
	Duels      *services.SessionStore[DuelChallenge]
	Minigames  *services.SessionStore[MinigameRound]
	Confirms   *services.SessionStore[PendingAction]
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// InitServices builds repositories, game services and interaction sessions on top of db.
func (b *Bot) InitServices(ctx context.Context, db *database.DB) error {
	b.DB = db
	base := repositories.NewBaseRepository(db, database.NewTxManager(db))

	tracker, err := cooldown.NewTracker(repositories.NewCooldownRepository(base), b.Clock, config.CooldownCacheSize)
	if err != nil {
		return err
	}
	b.Cooldowns = tracker

	b.Economy = economy.NewService(repositories.NewUserRepository(base), tracker, b.Clock, newRand(), b.Cfg.EconomyRules())
	b.Collection = collection.NewService(repositories.NewBirdRepository(base), b.Economy, tracker, b.Clock, newRand(), b.Cfg.CollectionRules())
	b.Social = social.NewService(repositories.NewSocialRepository(base), b.Economy, tracker, b.Clock, newRand(), b.Cfg.SocialRules())
	b.Progression = progression.NewService(repositories.NewProgressRepository(base), b.Economy, b.Clock)
	b.SpeciesSearch = services.NewSpeciesSearch()

	if b.Cfg.Spaces.Enabled() {
		images, err := services.NewBirdImageService(ctx,
			b.Cfg.Spaces.Key,
			b.Cfg.Spaces.Secret,
			b.Cfg.Spaces.Region,
			b.Cfg.Spaces.Bucket,
			b.Cfg.Spaces.BirdRoot,
		)
		if err != nil {
			return err
		}
		b.Images = images
	}

	b.Encounters = services.NewSessionStore[Encounter]("encounter", b.Clock, config.EncounterTTL)
	b.JobOffers = services.NewSessionStore[[]catalog.Job]("job offer", b.Clock, config.WorkOfferTTL)
	b.Duels = services.NewSessionStore[DuelChallenge]("duel", b.Clock, config.DuelAcceptWindow)
	b.Minigames = services.NewSessionStore[MinigameRound]("minigame", b.Clock, config.QuickIdentifyWindow)
	b.Confirms = services.NewSessionStore[PendingAction]("confirmation", b.Clock, config.ConfirmTTL)
	return nil
}

// StartBackground launches session sweepers, maintenance jobs and the metrics server.
func (b *Bot) StartBackground() error {
	sweepers := map[string]func(ctx context.Context, every time.Duration){
		"encounter-sweeper":    b.Encounters.Run,
		"job-offer-sweeper":    b.JobOffers.Run,
		"duel-sweeper":         b.Duels.Run,
		"minigame-sweeper":     b.Minigames.Run,
		"confirmation-sweeper": b.Confirms.Run,
	}
	for name, run := range sweepers {
		b.Background.StartProcess(name, "expires abandoned interactions", func(ctx context.Context) {
			run(ctx, config.SessionSweepEvery)
		})
	}

	deps := services.SchedulerDeps{Cooldowns: b.Cooldowns, Trades: b.Social}
	if b.Cfg.Economy.AccrueInterest {
		deps.Interest = b.Economy
	}
	scheduler, err := services.NewScheduler(deps, gocron.WithClock(b.Clock))
	if err != nil {
		return err
	}
	b.Scheduler = scheduler
	b.Scheduler.Start()

	if b.Cfg.Metrics.Enabled {
		b.Metrics = metrics.NewServer(b.Cfg.Metrics.Addr, b.DB)
		b.Metrics.Start()
	}
	return nil
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("BirdHunter is now ready",
		slog.String("type", "sys"),
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), config.PresenceTimeout)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithWatchingActivity("the skies 🐦 | /help"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}

// Close stops everything Start* and SetupBot opened, in reverse order.
func (b *Bot) Close(ctx context.Context) error {
	var errs []error
	if b.Client != nil {
		b.Client.Close(ctx)
	}
	if b.Scheduler != nil {
		if err := b.Scheduler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("scheduler: %w", err))
		}
	}
	if b.Metrics != nil {
		if err := b.Metrics.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		}
	}
	if err := b.Background.Shutdown(config.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if b.DB != nil {
		b.DB.Close()
	}
	return errors.Join(errs...)
}
