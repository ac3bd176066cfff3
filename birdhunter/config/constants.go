package config

import "time"

// UI and Display Constants
const (
	// Pagination
	BirdsPerPage     = 8
	LedgerPerPage    = 10
	LeaderboardSize  = 10
	LeaderboardPages = 5
	DefaultPageSize  = 10

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00
	PrimaryColor = 0x0099FF
	GoldColor    = 0xFFD700
	NeutralColor = 0x808080

	MaxStars = 5
)

// Timeouts
const (
	DefaultQueryTimeout     = 10 * time.Second
	StatsQueryTimeout       = 10 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	SlowCommandThreshold    = 2 * time.Second
	PresenceTimeout         = 5 * time.Second
	ShutdownTimeout         = 10 * time.Second
	StartupTimeout          = 2 * time.Minute
	GatewayTimeout          = 10 * time.Second
)

// Interaction sessions
const (
	EncounterTTL      = 5 * time.Minute
	WorkOfferTTL      = 5 * time.Minute
	DuelAcceptWindow  = 60 * time.Second
	ConfirmTTL        = 2 * time.Minute
	SessionSweepEvery = time.Minute

	QuickIdentifyWindow = 30 * time.Second
	PatienceMinWait     = 5 * time.Second
	PatienceMaxWait     = 20 * time.Second
	PatienceGrace       = 5 * time.Second
)

// Input bounds
const (
	MinNotesLength = 10
	MaxNotesLength = 500
	MaxTitleLength = 50
	MaxBioLength   = 500
	HistoryLimit   = 50

	DepositConfirmWord = "YES"
	GiftConfirmWord    = "CONFIRM"
)

// Defaults for the cooldown cache.
const CooldownCacheSize = 4096
