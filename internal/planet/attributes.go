package planet

import (
	"fmt"

	"planets-explorer/internal/procgen"
)

// Split resolves an attribute with a single draw: a draw above Threshold
// yields Above, anything else Below.
type Split[T any] struct {
	Threshold float64
	Above     T
	Below     T
}

// Rule is the per-type override for one derived attribute. Fixed wins
// without consuming a draw; otherwise Split applies; otherwise the generic
// table is sampled, with Weights replacing the generic weights when set.
type Rule[T comparable] struct {
	Fixed   T
	Split   *Split[T]
	Weights []float64
}

func (rule Rule[T]) resolve(r *procgen.Random, outcomes []T, genericWeights []float64) T {
	var zero T
	if rule.Fixed != zero {
		return rule.Fixed
	}
	if rule.Split != nil {
		if r.Next() > rule.Split.Threshold {
			return rule.Split.Above
		}
		return rule.Split.Below
	}

	weights := rule.Weights
	if weights == nil {
		weights = genericWeights
	}
	if weights == nil {
		return procgen.Pick(r, outcomes)
	}
	return procgen.PickWeighted(r, outcomes, weights)
}

// CountRange yields Base + floor(draw*Spread). A zero Spread consumes no draw.
type CountRange struct {
	Base   int
	Spread int
}

func (c CountRange) sample(r *procgen.Random) int {
	return c.Base + r.Intn(c.Spread)
}

// Max is the largest count the range can produce.
func (c CountRange) Max() int {
	if c.Spread == 0 {
		return c.Base
	}
	return c.Base + c.Spread - 1
}

// Traits is everything a planet type decides about the planets drawn for it.
type Traits struct {
	Biomes      []Biome
	Atmospheres []Atmosphere

	SurfaceHue    float64
	WaterHue      float64
	AtmosphereHue float64
	// RandomHues replaces the three base hues with three independent draws.
	RandomHues bool

	Weather     Rule[Weather]
	Temperature Rule[Temperature]
	Radiation   Rule[Level]
	Toxicity    Rule[Level]

	SentinelModifier float64
	ResourceBonus    int
	Flora            CountRange
	Fauna            CountRange

	SurfaceSaturation procgen.Span
	SurfaceLightness  procgen.Span
	WaterSaturation   procgen.Span
	WaterLightness    procgen.Span
}

var (
	baselineLevelWeights = []float64{0.6, 0.25, 0.1, 0.04, 0.01}
	elevatedLevelWeights = []float64{0.2, 0.2, 0.3, 0.2, 0.1}

	// None, Limited, Normal, Aggressive, Frenzied.
	sentinelBaseWeights = []float64{0.2, 0.4, 0.25, 0.1, 0.05}

	defaultSurfaceSaturation = procgen.Span{Min: 60, Max: 85}
	defaultSurfaceLightness  = procgen.Span{Min: 30, Max: 50}
	defaultWaterSaturation   = procgen.Span{Min: 70, Max: 90}
	defaultWaterLightness    = procgen.Span{Min: 40, Max: 60}
	greySaturation           = procgen.Span{Min: 0, Max: 20}
)

// AtmosphereTone is the saturation/lightness pair for an atmosphere colour.
type AtmosphereTone struct {
	Saturation procgen.Span
	Lightness  procgen.Span
}

var defaultAtmosphereTone = AtmosphereTone{
	Saturation: procgen.Span{Min: 60, Max: 80},
	Lightness:  procgen.Span{Min: 60, Max: 80},
}

var atmosphereTones = map[Atmosphere]AtmosphereTone{
	AtmosphereNone: {
		Saturation: procgen.Span{Min: 0, Max: 10},
		Lightness:  procgen.Span{Min: 80, Max: 95},
	},
	AtmosphereHighlyToxic: {
		Saturation: procgen.Span{Min: 80, Max: 100},
		Lightness:  procgen.Span{Min: 50, Max: 70},
	},
}

// ToneFor returns the colour range used for an atmosphere.
func ToneFor(a Atmosphere) AtmosphereTone {
	if tone, ok := atmosphereTones[a]; ok {
		return tone
	}
	return defaultAtmosphereTone
}

var traits = map[PlanetType]Traits{
	PlanetTypeLush: {
		Biomes:      []Biome{BiomeVerdant, BiomeTropical},
		Atmospheres: []Atmosphere{AtmosphereBreathable, AtmosphereOxygen},
		SurfaceHue:  120, WaterHue: 210, AtmosphereHue: 200,
		Temperature:      Rule[Temperature]{Split: &Split[Temperature]{Threshold: 0.6, Above: TemperatureWarm, Below: TemperatureMild}},
		SentinelModifier: 1.5,
		ResourceBonus:    2,
		Flora:            CountRange{Base: 5, Spread: 6},
		Fauna:            CountRange{Base: 3, Spread: 6},
	},
	PlanetTypeDesert: {
		Biomes:      []Biome{BiomeScorched, BiomeMineral},
		Atmospheres: []Atmosphere{AtmosphereDusty, AtmosphereNitrogen},
		SurfaceHue:  30, WaterHue: 40, AtmosphereHue: 30,
		Weather:          Rule[Weather]{Split: &Split[Weather]{Threshold: 0.5, Above: WeatherDusty, Below: WeatherBurning}},
		Temperature:      Rule[Temperature]{Split: &Split[Temperature]{Threshold: 0.3, Above: TemperatureScorching, Below: TemperatureHot}},
		SentinelModifier: 1,
		Flora:            CountRange{Base: 1, Spread: 3},
		Fauna:            CountRange{Base: 1, Spread: 4},
	},
	PlanetTypeToxic: {
		Biomes:      []Biome{BiomeMarshy, BiomeToxic},
		Atmospheres: []Atmosphere{AtmosphereHighlyToxic, AtmosphereCorrosive},
		SurfaceHue:  100, WaterHue: 120, AtmosphereHue: 90,
		Weather:          Rule[Weather]{Split: &Split[Weather]{Threshold: 0.5, Above: WeatherToxic, Below: WeatherRainy}},
		Toxicity:         Rule[Level]{Split: &Split[Level]{Threshold: 0.5, Above: LevelExtreme, Below: LevelHigh}},
		SentinelModifier: 1,
		Flora:            CountRange{Base: 2, Spread: 4},
		Fauna:            CountRange{Base: 1, Spread: 3},
		WaterSaturation:  procgen.Span{Min: 80, Max: 100},
		WaterLightness:   procgen.Span{Min: 50, Max: 70},
	},
	PlanetTypeRadioactive: {
		Biomes:      []Biome{BiomeIrradiated},
		Atmospheres: []Atmosphere{AtmosphereRadioactive},
		SurfaceHue:  60, WaterHue: 70, AtmosphereHue: 60,
		Weather:          Rule[Weather]{Split: &Split[Weather]{Threshold: 0.7, Above: WeatherExtreme, Below: WeatherStormy}},
		Radiation:        Rule[Level]{Split: &Split[Level]{Threshold: 0.5, Above: LevelExtreme, Below: LevelHigh}},
		SentinelModifier: 1,
		Flora:            CountRange{Base: 1, Spread: 3},
		Fauna:            CountRange{Base: 1, Spread: 2},
	},
	PlanetTypeFrozen: {
		Biomes:      []Biome{BiomeFrozen},
		Atmospheres: []Atmosphere{AtmosphereNitrogen, AtmosphereArgon},
		SurfaceHue:  210, WaterHue: 210, AtmosphereHue: 220,
		Weather:          Rule[Weather]{Fixed: WeatherFreezing},
		Temperature:      Rule[Temperature]{Fixed: TemperatureFreezing},
		SentinelModifier: 1,
		Flora:            CountRange{Base: 1, Spread: 4},
		Fauna:            CountRange{Base: 1, Spread: 3},
	},
	PlanetTypeBarren: {
		Biomes:      []Biome{BiomeLifeless, BiomeMineral},
		Atmospheres: []Atmosphere{AtmosphereNone, AtmosphereDusty},
		SurfaceHue:  30, WaterHue: 30, AtmosphereHue: 30,
		SentinelModifier:  0.5,
		ResourceBonus:     -2,
		Flora:             CountRange{Base: 0, Spread: 2},
		Fauna:             CountRange{Base: 0, Spread: 2},
		SurfaceSaturation: greySaturation,
		SurfaceLightness:  procgen.Span{Min: 20, Max: 40},
		WaterSaturation:   greySaturation,
		WaterLightness:    procgen.Span{Min: 30, Max: 50},
	},
	PlanetTypeExotic: {
		Biomes:      []Biome{BiomeCorrupted, BiomeMetallic, BiomeFungal},
		Atmospheres: []Atmosphere{AtmosphereArgon, AtmosphereNone},
		SurfaceHue:  280, WaterHue: 290, AtmosphereHue: 270,
		Radiation:         Rule[Level]{Weights: elevatedLevelWeights},
		Toxicity:          Rule[Level]{Weights: elevatedLevelWeights},
		SentinelModifier:  1.5,
		ResourceBonus:     2,
		Flora:             CountRange{Base: 2, Spread: 5},
		Fauna:             CountRange{Base: 1, Spread: 4},
		SurfaceSaturation: procgen.Span{Min: 80, Max: 100},
		SurfaceLightness:  procgen.Span{Min: 40, Max: 60},
	},
	PlanetTypeVolcanic: {
		Biomes:      []Biome{BiomeScorched},
		Atmospheres: []Atmosphere{AtmosphereCorrosive, AtmosphereHighlyToxic},
		SurfaceHue:  0, WaterHue: 20, AtmosphereHue: 10,
		Weather:          Rule[Weather]{Fixed: WeatherBurning},
		Temperature:      Rule[Temperature]{Split: &Split[Temperature]{Threshold: 0.3, Above: TemperatureScorching, Below: TemperatureHot}},
		Toxicity:         Rule[Level]{Weights: elevatedLevelWeights},
		SentinelModifier: 1,
		Flora:            CountRange{Base: 0, Spread: 2},
		Fauna:            CountRange{Base: 0, Spread: 2},
	},
	PlanetTypeOcean: {
		Biomes:      []Biome{BiomeTropical},
		Atmospheres: []Atmosphere{AtmosphereBreathable, AtmosphereOxygen},
		SurfaceHue:  190, WaterHue: 200, AtmosphereHue: 195,
		Weather:          Rule[Weather]{Split: &Split[Weather]{Threshold: 0.5, Above: WeatherRainy, Below: WeatherStormy}},
		Temperature:      Rule[Temperature]{Split: &Split[Temperature]{Threshold: 0.6, Above: TemperatureWarm, Below: TemperatureMild}},
		SentinelModifier: 1,
		Flora:            CountRange{Base: 2, Spread: 4},
		Fauna:            CountRange{Base: 3, Spread: 5},
	},
	PlanetTypeAnomalous: {
		Biomes:            []Biome{BiomeCorrupted, BiomeMetallic},
		Atmospheres:       []Atmosphere{AtmosphereNone, AtmosphereArgon, AtmosphereNitrogen},
		RandomHues:        true,
		Radiation:         Rule[Level]{Weights: elevatedLevelWeights},
		SentinelModifier:  1,
		Flora:             CountRange{Base: 1, Spread: 3},
		Fauna:             CountRange{Base: 1, Spread: 3},
		SurfaceSaturation: procgen.Span{Min: 80, Max: 100},
		SurfaceLightness:  procgen.Span{Min: 40, Max: 60},
	},
	PlanetTypeDead: {
		Biomes:      []Biome{BiomeLifeless},
		Atmospheres: []Atmosphere{AtmosphereNone},
		SurfaceHue:  0, WaterHue: 0, AtmosphereHue: 0,
		SentinelModifier:  0.5,
		ResourceBonus:     -2,
		SurfaceSaturation: greySaturation,
		SurfaceLightness:  procgen.Span{Min: 20, Max: 40},
		WaterSaturation:   greySaturation,
		WaterLightness:    procgen.Span{Min: 30, Max: 50},
	},
}

func init() {
	for _, t := range PlanetTypes {
		tr, ok := traits[t]
		if !ok {
			panic(fmt.Sprintf("planet: no traits for type %s", t))
		}
		if tr.SurfaceSaturation == (procgen.Span{}) {
			tr.SurfaceSaturation = defaultSurfaceSaturation
			tr.SurfaceLightness = defaultSurfaceLightness
		}
		if tr.WaterSaturation == (procgen.Span{}) {
			tr.WaterSaturation = defaultWaterSaturation
			tr.WaterLightness = defaultWaterLightness
		}
		traits[t] = tr
	}
}

// TraitsFor returns the attribute table for a planet type.
func TraitsFor(t PlanetType) (Traits, bool) {
	tr, ok := traits[t]
	return tr, ok
}

// Biomes returns the biomes a planet type may carry.
func (t PlanetType) Biomes() []Biome {
	return traits[t].Biomes
}

// Atmospheres returns the atmospheres a planet type may carry.
func (t PlanetType) Atmospheres() []Atmosphere {
	return traits[t].Atmospheres
}

// sentinelWeights scales the base table by the type modifier: calmer worlds
// see more None, livelier worlds more Aggressive and Frenzied. The result no
// longer sums to 1 and must be sampled with PickNormalized.
func sentinelWeights(modifier float64) []float64 {
	w := make([]float64, len(sentinelBaseWeights))
	copy(w, sentinelBaseWeights)
	w[0] /= modifier
	w[3] *= modifier
	w[4] *= modifier * 1.2
	return w
}
