package planet

import (
	"fmt"
	"math"

	"planets-explorer/internal/procgen"
)

var (
	resourceRarities      = []ResourceRarity{ResourceCommon, ResourceUncommon, ResourceRare, ResourceUltraRare}
	resourceRarityWeights = []float64{0.5, 0.3, 0.15, 0.05}

	resourceHues = map[ResourceRarity]procgen.Span{
		ResourceCommon:    {Min: 0, Max: 60},
		ResourceUncommon:  {Min: 180, Max: 240},
		ResourceRare:      {Min: 270, Max: 330},
		ResourceUltraRare: {Min: 0, Max: 30},
	}

	resourceDescriptions = []string{
		"A crystalline substance with energy-storing properties.",
		"A valuable mineral used in advanced technology.",
		"A rare element with unique molecular properties.",
		"A metamorphic compound formed under extreme pressure.",
		"An exotic material with unusual physical characteristics.",
		"A precious metal highly valued across the galaxy.",
		"A glowing substance with potential biological applications.",
		"A scarce resource needed for advanced starship components.",
		"A dense material used in construction and engineering.",
		"An energy-rich substance that powers various technologies.",
	}
)

// Tier is the zero-based position of the rarity on the four-tier scale.
func (r ResourceRarity) Tier() int {
	for i, candidate := range resourceRarities {
		if candidate == r {
			return i
		}
	}
	return 0
}

// GenerateResources draws count resources from a stream seeded with seed.
// Names reseed per item from seed+i; everything else shares the stream.
func GenerateResources(seed int64, count int) []Resource {
	r := procgen.New(seed)
	resources := make([]Resource, 0, count)

	for i := 0; i < count; i++ {
		rarity := procgen.PickWeighted(r, resourceRarities, resourceRarityWeights)

		base := float64((rarity.Tier() + 1) * 200)
		value := int(math.Floor(base * (0.8 + float64(r.Next()*0.4))))

		hue := resourceHues[rarity]
		color := procgen.HSL{
			H: r.Range(hue.Min, hue.Max),
			S: r.Range(70, 100),
			L: r.Range(40, 60),
		}

		resources = append(resources, Resource{
			ID:          fmt.Sprintf("resource-%d-%d", seed, i),
			Name:        procgen.ResourceName(seed + int64(i)),
			Rarity:      rarity,
			Value:       value,
			Description: procgen.Pick(r, resourceDescriptions),
			Color:       color,
		})
	}

	return resources
}
