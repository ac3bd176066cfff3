package catalog

import "strings"

type Species struct {
	ID             string
	Name           string
	ScientificName string
	Rarity         Rarity
	BaseValue      int64
	Habitat        string
	Description    string
}

var species = []Species{
	// common
	{"house_sparrow", "House Sparrow", "Passer domesticus", Common, 20, "Towns and farmland", "A chatty little bird that thrives wherever people live."},
	{"american_robin", "American Robin", "Turdus migratorius", Common, 25, "Lawns and woodland edges", "Its orange breast is a sure sign of spring."},
	{"rock_pigeon", "Rock Pigeon", "Columba livia", Common, 15, "City streets", "Found on nearly every city square in the world."},
	{"european_starling", "European Starling", "Sturnus vulgaris", Common, 20, "Fields and cities", "Famous for huge swirling murmurations."},
	{"mourning_dove", "Mourning Dove", "Zenaida macroura", Common, 25, "Open country", "Its soft cooing is often mistaken for an owl."},
	{"black_capped_chickadee", "Black-capped Chickadee", "Poecile atricapillus", Common, 30, "Mixed forests", "Curious and bold, it calls its own name."},
	{"mallard", "Mallard", "Anas platyrhynchos", Common, 30, "Ponds and rivers", "The ancestor of most domestic ducks."},
	{"blue_jay", "Blue Jay", "Cyanocitta cristata", Common, 35, "Oak forests", "A clever mimic that can imitate hawk calls."},
	// uncommon
	{"northern_cardinal", "Northern Cardinal", "Cardinalis cardinalis", Uncommon, 50, "Thickets and gardens", "The brilliant red male sings all year round."},
	{"cedar_waxwing", "Cedar Waxwing", "Bombycilla cedrorum", Uncommon, 60, "Berry-rich woodland", "Travels in polite flocks that pass berries to each other."},
	{"belted_kingfisher", "Belted Kingfisher", "Megaceryle alcyon", Uncommon, 65, "Streams and lakes", "Dives headfirst after fish with a rattling call."},
	{"downy_woodpecker", "Downy Woodpecker", "Dryobates pubescens", Uncommon, 55, "Deciduous forests", "The smallest woodpecker in North America."},
	{"eastern_bluebird", "Eastern Bluebird", "Sialia sialis", Uncommon, 70, "Meadows", "Nest boxes brought it back from steep decline."},
	{"great_blue_heron", "Great Blue Heron", "Ardea herodias", Uncommon, 80, "Marshes", "Stands motionless for minutes before striking."},
	// rare
	{"snowy_owl", "Snowy Owl", "Bubo scandiacus", Rare, 120, "Arctic tundra", "Hunts by day during the endless arctic summer."},
	{"scarlet_tanager", "Scarlet Tanager", "Piranga olivacea", Rare, 100, "Forest canopy", "Blazing red with jet-black wings."},
	{"painted_bunting", "Painted Bunting", "Passerina ciris", Rare, 130, "Southern scrub", "Looks as if painted by a child with every crayon."},
	{"roseate_spoonbill", "Roseate Spoonbill", "Platalea ajaja", Rare, 140, "Coastal wetlands", "Sweeps its spoon-shaped bill through shallow water."},
	{"pileated_woodpecker", "Pileated Woodpecker", "Dryocopus pileatus", Rare, 110, "Old-growth forest", "Carves rectangular holes big enough to topple small trees."},
	// epic
	{"bald_eagle", "Bald Eagle", "Haliaeetus leucocephalus", Epic, 300, "Lakes and coasts", "Builds the largest nests of any North American bird."},
	{"peregrine_falcon", "Peregrine Falcon", "Falco peregrinus", Epic, 350, "Cliffs and skyscrapers", "The fastest animal on Earth in a hunting dive."},
	{"atlantic_puffin", "Atlantic Puffin", "Fratercula arctica", Epic, 280, "Sea cliffs", "Carries a dozen fish crosswise in its colorful bill."},
	{"resplendent_quetzal", "Resplendent Quetzal", "Pharomachrus mocinno", Epic, 400, "Cloud forests", "Its tail streamers can be longer than its body."},
	// legendary
	{"california_condor", "California Condor", "Gymnogyps californianus", Legendary, 1000, "Rugged canyons", "Brought back from just 27 individuals."},
	{"ivory_billed_woodpecker", "Ivory-billed Woodpecker", "Campephilus principalis", Legendary, 1200, "Swamp forests", "Rumored sightings keep hope alive for this ghost bird."},
	{"harpy_eagle", "Harpy Eagle", "Harpia harpyja", Legendary, 900, "Rainforest canopy", "Its talons rival a grizzly bear's claws."},
}

var (
	speciesByID     = make(map[string]Species, len(species))
	speciesByRarity = make(map[Rarity][]Species, len(Rarities))
)

func init() {
	for _, s := range species {
		speciesByID[s.ID] = s
		speciesByRarity[s.Rarity] = append(speciesByRarity[s.Rarity], s)
	}
}

// AllSpecies returns a copy of the species list in catalog order.
func AllSpecies() []Species {
	out := make([]Species, len(species))
	copy(out, species)
	return out
}

func SpeciesByID(id string) (Species, bool) {
	s, ok := speciesByID[id]
	return s, ok
}

// SpeciesOfRarity returns the species belonging to one tier.
func SpeciesOfRarity(r Rarity) []Species {
	return speciesByRarity[r]
}

// FindSpecies matches an id or display name, case-insensitively.
func FindSpecies(query string) (Species, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if s, ok := speciesByID[q]; ok {
		return s, true
	}
	for _, s := range species {
		if strings.ToLower(s.Name) == q {
			return s, true
		}
	}
	return Species{}, false
}
