package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/birdhunter/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
	schemaVersion        = 1
)

type DBConfig struct {
	Driver   string `toml:"driver"`
	Path     string `toml:"path"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
	SSLMode  string `toml:"ssl_mode"`
}

type DB struct {
	driver string
	pool   *pgxpool.Pool
	bunDB  *bun.DB
}

// New opens the configured store. SQLite is the default and needs nothing but a file path.
func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	switch cfg.Driver {
	case "", DriverSQLite:
		return newSQLite(cfg)
	case DriverPostgres:
		return newPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func newSQLite(cfg DBConfig) (*DB, error) {
	path := cfg.Path
	if path == "" {
		path = "data/birdhunter.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// one writer at a time
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	bunDB.AddQueryHook(&queryHook{slow: slowQueryThreshold})
	return &DB{driver: DriverSQLite, bunDB: bunDB}, nil
}

func newPostgres(ctx context.Context, cfg DBConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}

	var pool *pgxpool.Pool
	for i := 0; i < defaultMaxRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
		}
		slog.Warn("Database not reachable yet, retrying",
			slog.String("type", "db"),
			slog.Int("attempt", i+1),
			slog.Any("error", err),
		)
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(buildConnString(cfg))))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}
	bunDB := bun.NewDB(sqldb, pgdialect.New())
	bunDB.AddQueryHook(&queryHook{slow: slowQueryThreshold})
	return &DB{driver: DriverPostgres, pool: pool, bunDB: bunDB}, nil
}

func buildConnString(cfg DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, sslMode,
	)
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) ExecWithLog(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	result, err := db.bunDB.ExecContext(ctx, query, args...)
	logger.LogQuery("exec", query, time.Since(start), err)
	return result, err
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// Ping checks every connection the store holds.
func (db *DB) Ping(ctx context.Context) error {
	if db.pool != nil {
		if err := db.pool.Ping(ctx); err != nil {
			return fmt.Errorf("pgxpool ping failed: %w", err)
		}
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}
	return nil
}

// InitializeSchema creates all tables and indexes and seeds the species table.
func (db *DB) InitializeSchema(ctx context.Context) error {
	if v, err := db.getAppMeta(ctx, "schema_version"); err == nil && v == strconv.Itoa(schemaVersion) {
		slog.Info("Schema up-to-date, seeding only",
			slog.String("type", "db"),
			slog.Int("schema_version", schemaVersion))
		return db.SeedSpecies(ctx)
	}

	tables := []any{
		(*models.User)(nil),
		(*models.BirdSpecies)(nil),
		(*models.OwnedBird)(nil),
		(*models.LedgerEntry)(nil),
		(*models.Cooldown)(nil),
		(*models.UserItem)(nil),
		(*models.Guild)(nil),
		(*models.GuildMember)(nil),
		(*models.Trade)(nil),
		(*models.UserAchievement)(nil),
		(*models.UserQuest)(nil),
		(*models.AppMeta)(nil),
	}

	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_owned_birds_owner ON owned_birds(owner_id);",
		"CREATE INDEX IF NOT EXISTS idx_owned_birds_active ON owned_birds(owner_id, released_at);",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions(user_id, created_at);",
		"CREATE INDEX IF NOT EXISTS idx_cooldowns_expires ON cooldowns(expires_at);",
		"CREATE INDEX IF NOT EXISTS idx_trades_status ON trades(status, expires_at);",
		"CREATE INDEX IF NOT EXISTS idx_guild_members_guild ON guild_members(guild_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_quests_user ON user_quests(user_id, status);",
	}
	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.SeedSpecies(ctx); err != nil {
		return fmt.Errorf("failed to seed species: %w", err)
	}

	return db.setAppMeta(ctx, "schema_version", strconv.Itoa(schemaVersion))
}

func (db *DB) getAppMeta(ctx context.Context, key string) (string, error) {
	meta := new(models.AppMeta)
	if err := db.bunDB.NewSelect().Model(meta).Where("key = ?", key).Scan(ctx); err != nil {
		return "", err
	}
	return meta.Value, nil
}

func (db *DB) setAppMeta(ctx context.Context, key, value string) error {
	_, err := db.bunDB.NewInsert().
		Model(&models.AppMeta{Key: key, Value: value}).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}
