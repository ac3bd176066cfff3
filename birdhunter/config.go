package birdhunter

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/collection"
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/social"
	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	EnvToken  = "DISCORD_TOKEN"
	EnvDBPath = "BIRDHUNTER_DB_PATH"
)

// LoadConfig reads .env (if present), decodes the TOML file over DefaultConfig
// and applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig decodes TOML over the defaults without touching the environment.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if token := os.Getenv(EnvToken); token != "" {
		c.Bot.Token = token
	}
	if path := os.Getenv(EnvDBPath); path != "" {
		c.DB.Path = path
	}
}

type Config struct {
	Log       LogConfig         `toml:"log"`
	Bot       BotConfig         `toml:"bot"`
	DB        database.DBConfig `toml:"db"`
	Economy   EconomyConfig     `toml:"economy"`
	Cooldowns CooldownConfig    `toml:"cooldowns"`
	Hunt      HuntConfig        `toml:"hunt"`
	Spaces    SpacesConfig      `toml:"spaces"`
	Metrics   MetricsConfig     `toml:"metrics"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type EconomyConfig struct {
	StartingBalance  int64   `toml:"starting_balance"`
	HuntCost         int64   `toml:"hunt_cost"`
	TradeFee         float64 `toml:"trade_fee"`
	BankInterestRate float64 `toml:"bank_interest_rate"`
	MaxBankBalance   int64   `toml:"max_bank_balance"`
	DailyGiftCap     int64   `toml:"daily_gift_cap"`
	AccrueInterest   bool    `toml:"accrue_interest"`
}

type CooldownConfig struct {
	Hunt     Duration `toml:"hunt"`
	Work     Duration `toml:"work"`
	Observe  Duration `toml:"observe"`
	Trade    Duration `toml:"trade"`
	Minigame Duration `toml:"minigame"`
	Duel     Duration `toml:"duel"`
}

type HuntConfig struct {
	MissChance float64        `toml:"miss_chance"`
	Weights    map[string]int `toml:"weights"`
}

type SpacesConfig struct {
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	BirdRoot string `toml:"bird_root"`
}

// Enabled reports whether bird images can be served from object storage.
func (s SpacesConfig) Enabled() bool {
	return s.Key != "" && s.Secret != "" && s.Bucket != ""
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

// Duration decodes Go duration strings such as "30m" or "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: slog.LevelInfo, Format: "text"},
		DB: database.DBConfig{
			Driver:   database.DriverSQLite,
			Path:     "data/birdhunter.db",
			Port:     5432,
			PoolSize: 10,
		},
		Economy: EconomyConfig{
			StartingBalance:  100,
			HuntCost:         10,
			TradeFee:         0.05,
			BankInterestRate: 0.02,
			MaxBankBalance:   1_000_000,
			DailyGiftCap:     10_000,
		},
		Cooldowns: CooldownConfig{
			Hunt:     Duration{30 * time.Minute},
			Work:     Duration{24 * time.Hour},
			Observe:  Duration{2 * time.Hour},
			Trade:    Duration{5 * time.Minute},
			Minigame: Duration{10 * time.Minute},
			Duel:     Duration{5 * time.Minute},
		},
		Hunt: HuntConfig{
			MissChance: collection.DefaultMissChance,
			Weights: map[string]int{
				string(catalog.Common):    60,
				string(catalog.Uncommon):  25,
				string(catalog.Rare):      10,
				string(catalog.Epic):      4,
				string(catalog.Legendary): 1,
			},
		},
		Metrics: MetricsConfig{Addr: ":9090"},
	}
}

// Validate rejects settings the game rules cannot work with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Bot.Token != "", "bot.token is required (or set %s)", EnvToken)
	check(c.DB.Driver == database.DriverSQLite || c.DB.Driver == database.DriverPostgres, "db.driver must be %q or %q", database.DriverSQLite, database.DriverPostgres)
	check(c.DB.Driver != database.DriverSQLite || c.DB.Path != "", "db.path is required for sqlite")
	check(c.DB.Driver != database.DriverPostgres || c.DB.Host != "", "db.host is required for postgres")

	e := c.Economy
	check(e.StartingBalance >= 0, "economy.starting_balance must not be negative")
	check(e.HuntCost >= 0, "economy.hunt_cost must not be negative")
	check(e.MaxBankBalance > 0, "economy.max_bank_balance must be positive")
	check(e.DailyGiftCap > 0, "economy.daily_gift_cap must be positive")
	check(e.TradeFee >= 0 && e.TradeFee <= 1, "economy.trade_fee must be within [0,1]")
	check(e.BankInterestRate >= 0 && e.BankInterestRate <= 1, "economy.bank_interest_rate must be within [0,1]")

	for name, d := range map[string]Duration{
		"hunt": c.Cooldowns.Hunt, "work": c.Cooldowns.Work, "observe": c.Cooldowns.Observe,
		"trade": c.Cooldowns.Trade, "minigame": c.Cooldowns.Minigame, "duel": c.Cooldowns.Duel,
	} {
		check(d.Duration > 0, "cooldowns.%s must be positive", name)
	}

	check(c.Hunt.MissChance >= 0 && c.Hunt.MissChance < 1, "hunt.miss_chance must be within [0,1)")
	for _, r := range catalog.Rarities {
		check(c.Hunt.Weights[string(r)] > 0, "hunt.weights.%s must be positive", r)
	}
	for name := range c.Hunt.Weights {
		check(catalog.Rarity(name).Valid(), "hunt.weights has unknown rarity %q", name)
	}

	check(!c.Metrics.Enabled || c.Metrics.Addr != "", "metrics.addr is required when metrics are enabled")

	return errors.Join(errs...)
}

func (c *Config) EconomyRules() economy.Config {
	return economy.Config{
		StartingBalance: c.Economy.StartingBalance,
		MaxBankBalance:  c.Economy.MaxBankBalance,
		InterestRate:    c.Economy.BankInterestRate,
		DailyGiftCap:    c.Economy.DailyGiftCap,
		TradeFee:        c.Economy.TradeFee,
		WorkCooldown:    c.Cooldowns.Work.Duration,
	}
}

func (c *Config) CollectionRules() collection.Config {
	weights := make(collection.Weights, len(c.Hunt.Weights))
	for name, w := range c.Hunt.Weights {
		weights[catalog.Rarity(name)] = w
	}
	return collection.Config{
		HuntCost:        c.Economy.HuntCost,
		HuntCooldown:    c.Cooldowns.Hunt.Duration,
		ObserveCooldown: c.Cooldowns.Observe.Duration,
		MissChance:      c.Hunt.MissChance,
		Weights:         weights,
	}
}

func (c *Config) SocialRules() social.Config {
	return social.Config{
		TradeFee:      c.Economy.TradeFee,
		TradeExpiry:   social.DefaultTradeExpiry,
		TradeCooldown: c.Cooldowns.Trade.Duration,
		DuelCooldown:  c.Cooldowns.Duel.Duration,
	}
}
