package planet

import (
	"fmt"

	"planets-explorer/internal/procgen"
)

const (
	minSize    = 1000.0
	sizeSpread = 9000.0

	faunaSeedOffset = 1000
)

// Generate derives a planet from seed. It is a pure function of seed: the
// same seed always yields an identical record, and every int64 is valid.
//
// The main stream is consumed in a fixed order (type, biome, atmosphere,
// hues, weather, temperature, radiation, toxicity, sentinels, counts, size).
// Reordering any step changes every planet.
func Generate(seed int64) PlanetRecord {
	r := procgen.New(seed)

	planetType := procgen.Pick(r, PlanetTypes)
	tr := traits[planetType]

	biome := procgen.Pick(r, tr.Biomes)
	atmosphere := procgen.Pick(r, tr.Atmospheres)

	surfaceHue, waterHue, atmosphereHue := tr.SurfaceHue, tr.WaterHue, tr.AtmosphereHue
	if tr.RandomHues {
		surfaceHue = float64(r.Next() * 360)
		waterHue = float64(r.Next() * 360)
		atmosphereHue = float64(r.Next() * 360)
	}

	weather := tr.Weather.resolve(r, weatherTypes, nil)
	temperature := tr.Temperature.resolve(r, temperatureTypes, nil)
	radiation := tr.Radiation.resolve(r, levels, baselineLevelWeights)
	toxicity := tr.Toxicity.resolve(r, levels, baselineLevelWeights)
	sentinels := procgen.PickNormalized(r, sentinelLevels, sentinelWeights(tr.SentinelModifier))

	resourceCount := max(1, 3+r.Intn(5)+tr.ResourceBonus)
	floraCount := tr.Flora.sample(r)
	faunaCount := tr.Fauna.sample(r)

	size := minSize + float64(r.Next()*sizeSpread)

	tone := ToneFor(atmosphere)

	return PlanetRecord{
		ID:          fmt.Sprintf("planet-%d", seed),
		Name:        procgen.Name(seed),
		Seed:        seed,
		Type:        planetType,
		Biome:       biome,
		Atmosphere:  atmosphere,
		Size:        size,
		Resources:   GenerateResources(seed, resourceCount),
		Flora:       GenerateFlora(seed, floraCount),
		Fauna:       GenerateFauna(seed+faunaSeedOffset, faunaCount),
		Sentinels:   sentinels,
		Weather:     weather,
		Temperature: temperature,
		Radiation:   radiation,
		Toxicity:    toxicity,
		Color: Colors{
			Surface:    procgen.Color(seed, surfaceHue, tr.SurfaceSaturation, tr.SurfaceLightness),
			Water:      procgen.Color(seed+1, waterHue, tr.WaterSaturation, tr.WaterLightness),
			Atmosphere: procgen.Color(seed+2, atmosphereHue, tone.Saturation, tone.Lightness),
		},
	}
}
