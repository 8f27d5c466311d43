package planet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planets-explorer/internal/procgen"
)

func TestTraits_EveryTypeHasTable(t *testing.T) {
	for _, pt := range PlanetTypes {
		tr, ok := TraitsFor(pt)
		require.True(t, ok, "type %s", pt)
		assert.NotEmpty(t, tr.Biomes, "type %s", pt)
		assert.NotEmpty(t, tr.Atmospheres, "type %s", pt)
		assert.Positive(t, tr.SentinelModifier, "type %s", pt)
		assert.NotZero(t, tr.SurfaceSaturation, "type %s", pt)
		assert.NotZero(t, tr.WaterSaturation, "type %s", pt)
	}

	_, ok := TraitsFor(PlanetType("Gas Giant"))
	assert.False(t, ok)
}

func TestTraits_PermittedSets(t *testing.T) {
	assert.Equal(t, []Biome{BiomeVerdant, BiomeTropical}, PlanetTypeLush.Biomes())
	assert.Equal(t, []Biome{BiomeCorrupted, BiomeMetallic, BiomeFungal}, PlanetTypeExotic.Biomes())
	assert.Equal(t, []Atmosphere{AtmosphereNone}, PlanetTypeDead.Atmospheres())
	assert.Equal(t, []Atmosphere{AtmosphereNone, AtmosphereArgon, AtmosphereNitrogen}, PlanetTypeAnomalous.Atmospheres())
}

func TestTraits_ColourRanges(t *testing.T) {
	dead, _ := TraitsFor(PlanetTypeDead)
	assert.Equal(t, procgen.Span{Min: 0, Max: 20}, dead.SurfaceSaturation)
	assert.Equal(t, procgen.Span{Min: 20, Max: 40}, dead.SurfaceLightness)

	lush, _ := TraitsFor(PlanetTypeLush)
	assert.Equal(t, procgen.Span{Min: 60, Max: 85}, lush.SurfaceSaturation)
	assert.Equal(t, procgen.Span{Min: 70, Max: 90}, lush.WaterSaturation)

	toxic, _ := TraitsFor(PlanetTypeToxic)
	assert.Equal(t, procgen.Span{Min: 50, Max: 70}, toxic.WaterLightness)

	assert.Equal(t, procgen.Span{Min: 0, Max: 10}, ToneFor(AtmosphereNone).Saturation)
	assert.Equal(t, procgen.Span{Min: 60, Max: 80}, ToneFor(AtmosphereBreathable).Lightness)
}

func TestRule_FixedConsumesNoDraw(t *testing.T) {
	r := procgen.New(5)
	rule := Rule[Weather]{Fixed: WeatherFreezing}

	assert.Equal(t, WeatherFreezing, rule.resolve(r, weatherTypes, nil))
	assert.Equal(t, procgen.New(5).Next(), r.Next())
}

func TestRule_SplitAndFallback(t *testing.T) {
	split := Rule[Level]{Split: &Split[Level]{Threshold: 0.5, Above: LevelExtreme, Below: LevelHigh}}
	for seed := int64(0); seed < 200; seed++ {
		assert.Contains(t, []Level{LevelHigh, LevelExtreme}, split.resolve(procgen.New(seed), levels, baselineLevelWeights))
	}

	// With no override the generic weighted table decides.
	generic := Rule[Level]{}
	for seed := int64(0); seed < 50; seed++ {
		want := procgen.PickWeighted(procgen.New(seed), levels, baselineLevelWeights)
		assert.Equal(t, want, generic.resolve(procgen.New(seed), levels, baselineLevelWeights))
	}

	// Without generic weights the pick is uniform.
	for seed := int64(0); seed < 50; seed++ {
		want := procgen.Pick(procgen.New(seed), temperatureTypes)
		assert.Equal(t, want, Rule[Temperature]{}.resolve(procgen.New(seed), temperatureTypes, nil))
	}
}

func TestSentinelWeights(t *testing.T) {
	neutral := sentinelWeights(1)
	assert.InDelta(t, 0.2, neutral[0], 1e-12)
	assert.InDelta(t, 0.1, neutral[3], 1e-12)
	assert.InDelta(t, 0.06, neutral[4], 1e-12, "frenzied keeps its 1.2 boost")

	calm := sentinelWeights(0.5)
	assert.InDelta(t, 0.4, calm[0], 1e-12)
	assert.InDelta(t, 0.05, calm[3], 1e-12)
	assert.InDelta(t, 0.03, calm[4], 1e-12)

	lively := sentinelWeights(1.5)
	assert.InDelta(t, 0.2/1.5, lively[0], 1e-12)
	assert.InDelta(t, 0.09, lively[4], 1e-12)

	// The base table is never mutated.
	assert.Equal(t, []float64{0.2, 0.4, 0.25, 0.1, 0.05}, sentinelBaseWeights)
}

func TestCountRange(t *testing.T) {
	r := procgen.New(9)
	assert.Equal(t, 0, CountRange{}.sample(r))
	assert.Equal(t, procgen.New(9).Next(), r.Next(), "empty range consumes no draw")

	assert.Equal(t, 10, CountRange{Base: 5, Spread: 6}.Max())
	assert.Equal(t, 1, CountRange{Base: 0, Spread: 2}.Max())
	assert.Equal(t, 0, CountRange{}.Max())
}

func TestPlanetRecord_MarkDiscoveredIsOneWay(t *testing.T) {
	p := Generate(3)
	first := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.True(t, p.MarkDiscovered(first))
	assert.True(t, p.Discovered)
	require.NotNil(t, p.DiscoveryDate)
	assert.Equal(t, first, *p.DiscoveryDate)

	assert.False(t, p.MarkDiscovered(first.Add(time.Hour)))
	assert.Equal(t, first, *p.DiscoveryDate)
}
