package planet

import (
	"fmt"
	"strings"

	"planets-explorer/internal/procgen"
)

var (
	floraTypes = []string{
		"Plant", "Tree", "Fungus", "Flower", "Bush",
		"Vine", "Root", "Fern", "Cactus", "Shrub",
	}

	floraDescriptors = []string{
		"Glowing", "Towering", "Twisted", "Bulbous", "Spiny",
		"Webbed", "Fibrous", "Floating", "Crystalline", "Mossy",
		"Spotted", "Striped", "Hollow", "Serrated", "Smooth",
	}

	floraHeightSpread = map[LifeRarity]float64{
		LifeCommon:   5,
		LifeUncommon: 15,
		LifeRare:     25,
	}
)

// drawLifeRarity is shared by flora and fauna. The second draw only happens
// when the first misses Rare.
func drawLifeRarity(r *procgen.Random) LifeRarity {
	if r.Next() > 0.95 {
		return LifeRare
	}
	if r.Next() > 0.7 {
		return LifeUncommon
	}
	return LifeCommon
}

// Multiplier scales fauna size by rarity.
func (l LifeRarity) Multiplier() float64 {
	switch l {
	case LifeRare:
		return 3
	case LifeUncommon:
		return 1.5
	default:
		return 1
	}
}

// GenerateFlora draws count plants from a stream seeded with seed.
func GenerateFlora(seed int64, count int) []Flora {
	r := procgen.New(seed)
	flora := make([]Flora, 0, count)

	for i := 0; i < count; i++ {
		kind := procgen.Pick(r, floraTypes)
		descriptor := procgen.Pick(r, floraDescriptors)
		rarity := drawLifeRarity(r)
		height := 0.2 + float64(r.Next()*floraHeightSpread[rarity])

		k, d := strings.ToLower(kind), strings.ToLower(descriptor)
		descriptions := []string{
			fmt.Sprintf("A peculiar %s with %s features.", k, d),
			fmt.Sprintf("This %s %s emits a faint bioluminescence.", d, k),
			fmt.Sprintf("The %s structure of this %s adapts well to the local climate.", d, k),
			fmt.Sprintf("This %s has evolved unique properties to survive in this environment.", k),
			fmt.Sprintf("A strange %s with unusual growth patterns.", k),
		}

		flora = append(flora, Flora{
			ID:          fmt.Sprintf("flora-%d-%d", seed, i),
			Name:        descriptor + " " + kind,
			Rarity:      rarity,
			Height:      procgen.RoundTenth(height),
			Description: procgen.Pick(r, descriptions),
		})
	}

	return flora
}
