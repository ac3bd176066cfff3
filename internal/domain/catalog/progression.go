package catalog

// Metric names a counter that quests and achievements are measured against.
type Metric string

const (
	MetricHunts          Metric = "hunts"
	MetricCaptures       Metric = "captures"
	MetricObservations   Metric = "observations"
	MetricWorkShifts     Metric = "work_shifts"
	MetricCoinsEarned    Metric = "coins_earned"
	MetricGiftsSent      Metric = "gifts_sent"
	MetricTrades         Metric = "trades"
	MetricDuelsWon       Metric = "duels_won"
	MetricMinigamesWon   Metric = "minigames_won"
	MetricDistinctBirds  Metric = "distinct_species"
	MetricRareBirds      Metric = "rare_birds"
	MetricLegendaryBirds Metric = "legendary_birds"
	MetricMaxBond        Metric = "max_bond"
	MetricNetWorth       Metric = "net_worth"
)

type QuestPeriod string

const (
	Daily  QuestPeriod = "daily"
	Weekly QuestPeriod = "weekly"
)

type Quest struct {
	ID          string
	Name        string
	Description string
	Period      QuestPeriod
	Metric      Metric
	Target      int64
	Reward      int64
}

var quests = []Quest{
	{ID: "daily_hunter", Name: "Morning Expedition", Description: "Go on 3 hunts", Period: Daily, Metric: MetricHunts, Target: 3, Reward: 100},
	{ID: "daily_catch", Name: "Catch of the Day", Description: "Capture 2 birds", Period: Daily, Metric: MetricCaptures, Target: 2, Reward: 120},
	{ID: "daily_watcher", Name: "Patient Watcher", Description: "Observe a bird", Period: Daily, Metric: MetricObservations, Target: 1, Reward: 80},
	{ID: "daily_worker", Name: "Honest Work", Description: "Work a shift", Period: Daily, Metric: MetricWorkShifts, Target: 1, Reward: 60},
	{ID: "weekly_hunter", Name: "Seasoned Tracker", Description: "Go on 20 hunts", Period: Weekly, Metric: MetricHunts, Target: 20, Reward: 600},
	{ID: "weekly_observer", Name: "Field Journal", Description: "Observe birds 7 times", Period: Weekly, Metric: MetricObservations, Target: 7, Reward: 500},
	{ID: "weekly_earner", Name: "Nest Egg", Description: "Earn 2,000 coins", Period: Weekly, Metric: MetricCoinsEarned, Target: 2000, Reward: 750},
	{ID: "weekly_generous", Name: "Good Neighbor", Description: "Send 3 gifts", Period: Weekly, Metric: MetricGiftsSent, Target: 3, Reward: 400},
}

func AllQuests() []Quest {
	out := make([]Quest, len(quests))
	copy(out, quests)
	return out
}

func QuestByID(id string) (Quest, bool) {
	for _, q := range quests {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}

func QuestsForPeriod(p QuestPeriod) []Quest {
	var out []Quest
	for _, q := range quests {
		if q.Period == p {
			out = append(out, q)
		}
	}
	return out
}

type AchievementCategory string

const (
	AchHunting     AchievementCategory = "hunting"
	AchCollection  AchievementCategory = "collection"
	AchObservation AchievementCategory = "observation"
	AchEconomy     AchievementCategory = "economy"
	AchSocial      AchievementCategory = "social"
	AchGaming      AchievementCategory = "gaming"
)

var AchievementCategories = []AchievementCategory{AchHunting, AchCollection, AchObservation, AchEconomy, AchSocial, AchGaming}

type Achievement struct {
	ID          string
	Name        string
	Emoji       string
	Description string
	Category    AchievementCategory
	Metric      Metric
	Requirement int64
	Reward      int64
}

var achievements = []Achievement{
	{ID: "first_hunt", Name: "First Steps", Emoji: "👣", Description: "Go on your first hunt", Category: AchHunting, Metric: MetricHunts, Requirement: 1, Reward: 50},
	{ID: "hunter_50", Name: "Dedicated Hunter", Emoji: "🎯", Description: "Go on 50 hunts", Category: AchHunting, Metric: MetricHunts, Requirement: 50, Reward: 300},
	{ID: "hunter_250", Name: "Master Tracker", Emoji: "🏹", Description: "Go on 250 hunts", Category: AchHunting, Metric: MetricHunts, Requirement: 250, Reward: 1500},
	{ID: "first_capture", Name: "Gotcha!", Emoji: "🐣", Description: "Capture your first bird", Category: AchCollection, Metric: MetricCaptures, Requirement: 1, Reward: 50},
	{ID: "species_10", Name: "Field Guide", Emoji: "📖", Description: "Own 10 different species", Category: AchCollection, Metric: MetricDistinctBirds, Requirement: 10, Reward: 500},
	{ID: "rare_5", Name: "Rare Finds", Emoji: "💎", Description: "Own 5 rare or better birds", Category: AchCollection, Metric: MetricRareBirds, Requirement: 5, Reward: 400},
	{ID: "legendary_1", Name: "Living Legend", Emoji: "👑", Description: "Own a legendary bird", Category: AchCollection, Metric: MetricLegendaryBirds, Requirement: 1, Reward: 1000},
	{ID: "observer_10", Name: "Keen Eye", Emoji: "👁️", Description: "Observe birds 10 times", Category: AchObservation, Metric: MetricObservations, Requirement: 10, Reward: 200},
	{ID: "bond_5", Name: "Best Friends", Emoji: "💛", Description: "Reach bond level 5 with a bird", Category: AchObservation, Metric: MetricMaxBond, Requirement: 5, Reward: 300},
	{ID: "worker_7", Name: "Steady Paycheck", Emoji: "💼", Description: "Work 7 shifts", Category: AchEconomy, Metric: MetricWorkShifts, Requirement: 7, Reward: 200},
	{ID: "worth_10k", Name: "Birdie Baron", Emoji: "💰", Description: "Reach a net worth of 10,000 coins", Category: AchEconomy, Metric: MetricNetWorth, Requirement: 10000, Reward: 1000},
	{ID: "gifter_5", Name: "Generous Soul", Emoji: "🎁", Description: "Send 5 gifts", Category: AchSocial, Metric: MetricGiftsSent, Requirement: 5, Reward: 250},
	{ID: "trader_3", Name: "Market Regular", Emoji: "🤝", Description: "Complete 3 trades", Category: AchSocial, Metric: MetricTrades, Requirement: 3, Reward: 250},
	{ID: "duelist_5", Name: "Duelist", Emoji: "⚔️", Description: "Win 5 duels", Category: AchGaming, Metric: MetricDuelsWon, Requirement: 5, Reward: 400},
	{ID: "gamer_10", Name: "Quick Wits", Emoji: "🎮", Description: "Win 10 minigames", Category: AchGaming, Metric: MetricMinigamesWon, Requirement: 10, Reward: 400},
}

func AllAchievements() []Achievement {
	out := make([]Achievement, len(achievements))
	copy(out, achievements)
	return out
}

func AchievementByID(id string) (Achievement, bool) {
	for _, a := range achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

type PassPlan struct {
	ID    string
	Name  string
	Days  int
	Price int64
}

var passPlans = []PassPlan{
	{ID: "monthly", Name: "Monthly Pass", Days: 30, Price: 999},
	{ID: "quarterly", Name: "Quarterly Pass", Days: 90, Price: 2499},
	{ID: "yearly", Name: "Yearly Pass", Days: 365, Price: 7999},
}

func AllPassPlans() []PassPlan {
	out := make([]PassPlan, len(passPlans))
	copy(out, passPlans)
	return out
}

func PassPlanByID(id string) (PassPlan, bool) {
	for _, p := range passPlans {
		if p.ID == id {
			return p, true
		}
	}
	return PassPlan{}, false
}
