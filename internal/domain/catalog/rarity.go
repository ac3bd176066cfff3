// Package catalog holds the static game definitions: species, items, jobs,
// quests, achievements and pass plans. Everything here is read-only after init.
package catalog

import "strings"

type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Rarities lists every tier from most to least frequent.
var Rarities = []Rarity{Common, Uncommon, Rare, Epic, Legendary}

type RarityInfo struct {
	Label          string
	Emoji          string
	Color          int
	BondMultiplier float64
	// CollectionValue is the flat per-bird value used by collection scoring.
	CollectionValue int64
}

var rarityInfo = map[Rarity]RarityInfo{
	Common:    {Label: "Common", Emoji: "⚪", Color: 0x808080, BondMultiplier: 1.0, CollectionValue: 30},
	Uncommon:  {Label: "Uncommon", Emoji: "🟢", Color: 0x00FF00, BondMultiplier: 1.2, CollectionValue: 60},
	Rare:      {Label: "Rare", Emoji: "🔵", Color: 0x800080, BondMultiplier: 1.5, CollectionValue: 150},
	Epic:      {Label: "Epic", Emoji: "🟣", Color: 0xFF4500, BondMultiplier: 2.0, CollectionValue: 400},
	Legendary: {Label: "Legendary", Emoji: "🟡", Color: 0xFFD700, BondMultiplier: 3.0, CollectionValue: 1200},
}

func (r Rarity) Info() RarityInfo {
	if info, ok := rarityInfo[r]; ok {
		return info
	}
	return rarityInfo[Common]
}

func (r Rarity) Valid() bool {
	_, ok := rarityInfo[r]
	return ok
}

func (r Rarity) String() string { return string(r) }

func ParseRarity(s string) (Rarity, bool) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}
