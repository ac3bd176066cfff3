package catalog

import "strings"

type ItemCategory string

const (
	CategoryEquipment   ItemCategory = "equipment"
	CategoryAttractants ItemCategory = "attractants"
	CategoryCameras     ItemCategory = "cameras"
	CategoryBoosters    ItemCategory = "boosters"
	CategoryCosmetic    ItemCategory = "cosmetic"
)

var ItemCategories = []ItemCategory{CategoryEquipment, CategoryAttractants, CategoryCameras, CategoryBoosters, CategoryCosmetic}

// ItemEffect describes what owning or using an item does.
type ItemEffect struct {
	// HuntBonus is added to the rarity bonus when the item is taken on a hunt.
	HuntBonus float64
	// BondMultiplier scales bond gained while observing; zero means no effect.
	BondMultiplier float64
	// Consumable items are removed from the inventory when used.
	Consumable bool
	// ResetsCooldown clears one named cooldown, SkipsCooldowns clears all of them.
	ResetsCooldown bool
	SkipsCooldowns bool
	// UnlocksTitle permits a custom profile title.
	UnlocksTitle bool
}

type Item struct {
	ID          string
	Name        string
	Emoji       string
	Category    ItemCategory
	Price       int64
	Description string
	Effect      ItemEffect
}

// Usable reports whether the item does something through /use.
func (i Item) Usable() bool {
	return i.Effect.ResetsCooldown || i.Effect.SkipsCooldowns
}

var items = []Item{
	{ID: "basic_trap", Name: "Basic Trap", Emoji: "🪤", Category: CategoryEquipment, Price: 50, Description: "Improves rare bird chances by 10%", Effect: ItemEffect{HuntBonus: 0.10}},
	{ID: "advanced_trap", Name: "Advanced Trap", Emoji: "🎯", Category: CategoryEquipment, Price: 200, Description: "Improves rare bird chances by 15%", Effect: ItemEffect{HuntBonus: 0.15}},
	{ID: "master_trap", Name: "Master Trap", Emoji: "🏹", Category: CategoryEquipment, Price: 500, Description: "Improves rare bird chances by 20%", Effect: ItemEffect{HuntBonus: 0.20}},

	{ID: "bird_call", Name: "Bird Call", Emoji: "📯", Category: CategoryAttractants, Price: 75, Description: "Attracts birds during a hunt (+5%)", Effect: ItemEffect{HuntBonus: 0.05, Consumable: true}},
	{ID: "seed_mix", Name: "Premium Seed Mix", Emoji: "🌾", Category: CategoryAttractants, Price: 100, Description: "A feast no bird can resist (+8%)", Effect: ItemEffect{HuntBonus: 0.08, Consumable: true}},
	{ID: "artificial_nest", Name: "Artificial Nest", Emoji: "🪺", Category: CategoryAttractants, Price: 150, Description: "Invites nesting species nearby (+12%)", Effect: ItemEffect{HuntBonus: 0.12, Consumable: true}},

	{ID: "basic_camera", Name: "Basic Camera", Emoji: "📷", Category: CategoryCameras, Price: 120, Description: "Observation bond +10%", Effect: ItemEffect{BondMultiplier: 1.10}},
	{ID: "premium_camera", Name: "Premium Camera", Emoji: "📸", Category: CategoryCameras, Price: 300, Description: "Observation bond +25%", Effect: ItemEffect{BondMultiplier: 1.25}},
	{ID: "professional_camera", Name: "Professional Camera", Emoji: "🎥", Category: CategoryCameras, Price: 800, Description: "Observation bond +50%", Effect: ItemEffect{BondMultiplier: 1.50}},

	{ID: "energy_drink", Name: "Energy Drink", Emoji: "⚡", Category: CategoryBoosters, Price: 25, Description: "Resets one cooldown", Effect: ItemEffect{Consumable: true, ResetsCooldown: true}},
	{ID: "lucky_charm", Name: "Lucky Charm", Emoji: "🍀", Category: CategoryBoosters, Price: 100, Description: "Next hunt gets +10% rare chance", Effect: ItemEffect{HuntBonus: 0.10, Consumable: true}},
	{ID: "time_skip", Name: "Time Skip", Emoji: "⏭️", Category: CategoryBoosters, Price: 200, Description: "Skips every active cooldown", Effect: ItemEffect{Consumable: true, SkipsCooldowns: true}},

	{ID: "golden_badge", Name: "Golden Badge", Emoji: "🏅", Category: CategoryCosmetic, Price: 500, Description: "Shows off on your profile"},
	{ID: "custom_title", Name: "Custom Title", Emoji: "🏷️", Category: CategoryCosmetic, Price: 1000, Description: "Unlocks a custom profile title", Effect: ItemEffect{UnlocksTitle: true}},
	{ID: "album_theme", Name: "Album Theme", Emoji: "🎨", Category: CategoryCosmetic, Price: 750, Description: "A golden frame for your album"},
}

var itemsByID = make(map[string]Item, len(items))

func init() {
	for _, it := range items {
		itemsByID[it.ID] = it
	}
}

func AllItems() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func ItemByID(id string) (Item, bool) {
	it, ok := itemsByID[strings.ToLower(strings.TrimSpace(id))]
	return it, ok
}

func ItemsInCategory(c ItemCategory) []Item {
	var out []Item
	for _, it := range items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// HuntEquipment returns the items that can be brought on a hunt.
func HuntEquipment() []Item {
	var out []Item
	for _, it := range items {
		if it.Effect.HuntBonus > 0 {
			out = append(out, it)
		}
	}
	return out
}

// BestCamera returns the strongest camera among the owned item ids.
func BestCamera(owned map[string]int) (Item, bool) {
	var best Item
	found := false
	for _, it := range ItemsInCategory(CategoryCameras) {
		if owned[it.ID] <= 0 {
			continue
		}
		if !found || it.Effect.BondMultiplier > best.Effect.BondMultiplier {
			best, found = it, true
		}
	}
	return best, found
}
