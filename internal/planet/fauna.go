package planet

import (
	"fmt"
	"strings"

	"planets-explorer/internal/procgen"
)

type bodyProfile struct {
	height float64 // metres
	weight float64 // kilograms
}

var (
	bodyTypes = []string{
		"Quadruped", "Biped", "Avian", "Aquatic", "Insectoid",
		"Reptilian", "Blob", "Mechanical", "Floating", "Worm",
	}

	bodyProfiles = map[string]bodyProfile{
		"Quadruped":  {height: 1, weight: 100},
		"Biped":      {height: 1.5, weight: 80},
		"Avian":      {height: 0.4, weight: 8},
		"Aquatic":    {height: 0.8, weight: 30},
		"Insectoid":  {height: 0.3, weight: 2},
		"Reptilian":  {height: 0.6, weight: 40},
		"Blob":       {height: 0.4, weight: 20},
		"Mechanical": {height: 1.2, weight: 200},
		"Floating":   {height: 0.5, weight: 10},
		"Worm":       {height: 2, weight: 300},
	}

	faunaDescriptors = []string{
		"Horned", "Spotted", "Spined", "Armored", "Massive",
		"Tiny", "Glowing", "Swift", "Sluggish", "Camouflaged",
		"Furred", "Scaled", "Bioluminescent", "Tentacled", "Winged",
	}

	diets        = []Diet{DietHerbivore, DietCarnivore, DietOmnivore}
	temperaments = []Temperament{TemperamentDocile, TemperamentSkittish, TemperamentTerritorial, TemperamentPredatory}
)

// drawTemperament conditions on diet: carnivores lean predatory, herbivores
// lean docile, omnivores are uniform.
func drawTemperament(r *procgen.Random, diet Diet) Temperament {
	switch diet {
	case DietCarnivore:
		if r.Next() > 0.7 {
			return TemperamentPredatory
		}
		if r.Next() > 0.5 {
			return TemperamentTerritorial
		}
		return TemperamentSkittish
	case DietHerbivore:
		if r.Next() > 0.8 {
			return TemperamentTerritorial
		}
		if r.Next() > 0.4 {
			return TemperamentSkittish
		}
		return TemperamentDocile
	default:
		return procgen.Pick(r, temperaments)
	}
}

// GenerateFauna draws count creatures from a stream seeded with seed.
// Planets pass seed+1000 so fauna never correlates with flora.
func GenerateFauna(seed int64, count int) []Fauna {
	r := procgen.New(seed)
	fauna := make([]Fauna, 0, count)

	for i := 0; i < count; i++ {
		body := procgen.Pick(r, bodyTypes)
		descriptor := procgen.Pick(r, faunaDescriptors)
		diet := procgen.Pick(r, diets)
		rarity := drawLifeRarity(r)

		profile := bodyProfiles[body]
		mult := rarity.Multiplier()
		height := profile.height * (0.5 + float64(r.Next()*1.5)) * mult
		weight := profile.weight * (0.7 + float64(r.Next()*1.3)) * mult

		temperament := drawTemperament(r, diet)

		b, d := strings.ToLower(body), strings.ToLower(descriptor)
		descriptions := []string{
			fmt.Sprintf("A %s %s creature with %s features.", strings.ToLower(string(temperament)), b, d),
			fmt.Sprintf("This %s adapts well to the local environment.", strings.ToLower(string(diet))),
			fmt.Sprintf("The %s appendages of this creature serve as both defense and tools.", d),
			"This unique species has evolved specialized sensory organs.",
			"A fascinating specimen with unusual metabolic processes.",
		}

		fauna = append(fauna, Fauna{
			ID:          fmt.Sprintf("fauna-%d-%d", seed, i),
			Name:        descriptor + " " + body,
			BodyType:    body,
			Diet:        diet,
			Rarity:      rarity,
			Height:      procgen.RoundTenth(height),
			Weight:      procgen.RoundTenth(weight),
			Temperament: temperament,
			Description: procgen.Pick(r, descriptions),
		})
	}

	return fauna
}
