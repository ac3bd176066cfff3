package catalog

// Ledger descriptions that progression counts by prefix.
const (
	ReasonWork     = "Work: "
	ReasonGiftTo   = "Gift to "
	ReasonGiftFrom = "Gift from "
	ReasonDuelWon  = "Duel won against "
	ReasonDuelLost = "Duel lost to "
	ReasonMinigame = "Minigame: "
	ReasonTrade    = "Trade #"
)
