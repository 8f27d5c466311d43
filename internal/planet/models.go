package planet

import (
	"time"

	"planets-explorer/internal/procgen"
)

type PlanetType string

const (
	PlanetTypeLush        PlanetType = "Lush"
	PlanetTypeDesert      PlanetType = "Desert"
	PlanetTypeToxic       PlanetType = "Toxic"
	PlanetTypeRadioactive PlanetType = "Radioactive"
	PlanetTypeFrozen      PlanetType = "Frozen"
	PlanetTypeBarren      PlanetType = "Barren"
	PlanetTypeExotic      PlanetType = "Exotic"
	PlanetTypeVolcanic    PlanetType = "Volcanic"
	PlanetTypeOcean       PlanetType = "Ocean"
	PlanetTypeAnomalous   PlanetType = "Anomalous"
	PlanetTypeDead        PlanetType = "Dead"
)

// PlanetTypes is the draw order used by Generate. Reordering it changes
// every planet produced from a given seed.
var PlanetTypes = []PlanetType{
	PlanetTypeLush,
	PlanetTypeDesert,
	PlanetTypeToxic,
	PlanetTypeRadioactive,
	PlanetTypeFrozen,
	PlanetTypeBarren,
	PlanetTypeExotic,
	PlanetTypeVolcanic,
	PlanetTypeOcean,
	PlanetTypeAnomalous,
	PlanetTypeDead,
}

type Biome string

const (
	BiomeVerdant    Biome = "Verdant"
	BiomeTropical   Biome = "Tropical"
	BiomeScorched   Biome = "Scorched"
	BiomeIrradiated Biome = "Irradiated"
	BiomeFrozen     Biome = "Frozen"
	BiomeLifeless   Biome = "Lifeless"
	BiomeCorrupted  Biome = "Corrupted"
	BiomeMetallic   Biome = "Metallic"
	BiomeMarshy     Biome = "Marshy"
	BiomeMineral    Biome = "Mineral"
	BiomeFungal     Biome = "Fungal"
	BiomeToxic      Biome = "Toxic"
)

type Atmosphere string

const (
	AtmosphereBreathable  Atmosphere = "Breathable"
	AtmosphereHighlyToxic Atmosphere = "Highly Toxic"
	AtmosphereRadioactive Atmosphere = "Radioactive"
	AtmosphereCorrosive   Atmosphere = "Corrosive"
	AtmosphereNone        Atmosphere = "None"
	AtmosphereNitrogen    Atmosphere = "Nitrogen-Rich"
	AtmosphereArgon       Atmosphere = "Argon-Rich"
	AtmosphereDusty       Atmosphere = "Dusty"
	AtmosphereOxygen      Atmosphere = "Oxygen-Rich"
)

type Weather string

const (
	WeatherCalm     Weather = "Calm"
	WeatherDusty    Weather = "Dusty"
	WeatherRainy    Weather = "Rainy"
	WeatherStormy   Weather = "Stormy"
	WeatherExtreme  Weather = "Extreme"
	WeatherBurning  Weather = "Burning"
	WeatherFreezing Weather = "Freezing"
	WeatherToxic    Weather = "Toxic"
)

var weatherTypes = []Weather{
	WeatherCalm, WeatherDusty, WeatherRainy, WeatherStormy,
	WeatherExtreme, WeatherBurning, WeatherFreezing, WeatherToxic,
}

type Temperature string

const (
	TemperatureFreezing  Temperature = "Freezing"
	TemperatureCold      Temperature = "Cold"
	TemperatureMild      Temperature = "Mild"
	TemperatureWarm      Temperature = "Warm"
	TemperatureHot       Temperature = "Hot"
	TemperatureScorching Temperature = "Scorching"
)

var temperatureTypes = []Temperature{
	TemperatureFreezing, TemperatureCold, TemperatureMild,
	TemperatureWarm, TemperatureHot, TemperatureScorching,
}

// Level is the shared ordinal scale for radiation and toxicity.
type Level string

const (
	LevelNone     Level = "None"
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
	LevelExtreme  Level = "Extreme"
)

var levels = []Level{LevelNone, LevelLow, LevelModerate, LevelHigh, LevelExtreme}

type SentinelActivity string

const (
	SentinelNone       SentinelActivity = "None"
	SentinelLimited    SentinelActivity = "Limited"
	SentinelNormal     SentinelActivity = "Normal"
	SentinelAggressive SentinelActivity = "Aggressive"
	SentinelFrenzied   SentinelActivity = "Frenzied"
)

var sentinelLevels = []SentinelActivity{
	SentinelNone, SentinelLimited, SentinelNormal, SentinelAggressive, SentinelFrenzied,
}

// ResourceRarity is the four-tier scale used by resources.
type ResourceRarity string

const (
	ResourceCommon    ResourceRarity = "Common"
	ResourceUncommon  ResourceRarity = "Uncommon"
	ResourceRare      ResourceRarity = "Rare"
	ResourceUltraRare ResourceRarity = "Ultra Rare"
)

// LifeRarity is the three-tier scale used by flora and fauna.
type LifeRarity string

const (
	LifeCommon   LifeRarity = "Common"
	LifeUncommon LifeRarity = "Uncommon"
	LifeRare     LifeRarity = "Rare"
)

type Diet string

const (
	DietHerbivore Diet = "Herbivore"
	DietCarnivore Diet = "Carnivore"
	DietOmnivore  Diet = "Omnivore"
)

type Temperament string

const (
	TemperamentDocile      Temperament = "Docile"
	TemperamentSkittish    Temperament = "Skittish"
	TemperamentTerritorial Temperament = "Territorial"
	TemperamentPredatory   Temperament = "Predatory"
)

type Resource struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Rarity      ResourceRarity `json:"rarity"`
	Value       int            `json:"value"`
	Description string         `json:"description"`
	Color       procgen.HSL    `json:"color"`
}

type Flora struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Rarity      LifeRarity `json:"rarity"`
	Height      float64    `json:"height"` // metres
	Description string     `json:"description"`
}

type Fauna struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	BodyType    string      `json:"bodyType"`
	Diet        Diet        `json:"diet"`
	Rarity      LifeRarity  `json:"rarity"`
	Height      float64     `json:"height"` // metres
	Weight      float64     `json:"weight"` // kilograms
	Temperament Temperament `json:"temperament"`
	Description string      `json:"description"`
}

type Colors struct {
	Surface    procgen.HSL `json:"surface"`
	Water      procgen.HSL `json:"water"`
	Atmosphere procgen.HSL `json:"atmosphere"`
}

type PlanetRecord struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Seed          int64            `json:"seed"`
	Type          PlanetType       `json:"type"`
	Biome         Biome            `json:"biome"`
	Atmosphere    Atmosphere       `json:"atmosphere"`
	Size          float64          `json:"size"` // kilometres
	Resources     []Resource       `json:"resources"`
	Flora         []Flora          `json:"flora"`
	Fauna         []Fauna          `json:"fauna"`
	Sentinels     SentinelActivity `json:"sentinels"`
	Weather       Weather          `json:"weather"`
	Temperature   Temperature      `json:"temperature"`
	Radiation     Level            `json:"radiation"`
	Toxicity      Level            `json:"toxicity"`
	Color         Colors           `json:"color"`
	Discovered    bool             `json:"discovered"`
	DiscoveryDate *time.Time       `json:"discoveryDate,omitempty"`
}

// MarkDiscovered records the first discovery. Later calls keep the original
// date; discovery is never undone.
func (p *PlanetRecord) MarkDiscovered(at time.Time) bool {
	if p.Discovered {
		return false
	}
	at = at.UTC()
	p.Discovered = true
	p.DiscoveryDate = &at
	return true
}
