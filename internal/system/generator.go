package system

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"planets-explorer/internal/planet"
	"planets-explorer/internal/procgen"
)

const (
	minPlanets    = 1
	planetSpread  = 6
	chartedChance = 0.95
	seedsPerSlot  = 10
)

type Options struct {
	// IncludePlanets generates the full planet list with orbits.
	IncludePlanets bool
}

// ID returns the identifier of the system at index in galaxy galaxySeed.
func ID(galaxySeed int64, index int) string {
	return fmt.Sprintf("system-%d-%d", galaxySeed, index)
}

// ParseID reverses ID.
func ParseID(id string) (galaxySeed int64, index int, err error) {
	rest, ok := strings.CutPrefix(id, "system-")
	sep := strings.LastIndex(rest, "-")
	if !ok || sep <= 0 {
		return 0, 0, fmt.Errorf("invalid system id %q", id)
	}

	galaxySeed, err = strconv.ParseInt(rest[:sep], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid galaxy seed in system id %q: %w", id, err)
	}
	index, err = strconv.Atoi(rest[sep+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid index in system id %q: %w", id, err)
	}
	if index < 0 || ID(galaxySeed, index) != id {
		return 0, 0, fmt.Errorf("invalid system id %q", id)
	}
	return galaxySeed, index, nil
}

// PlanetSeed is the seed of the planet in orbit slot of a system.
func PlanetSeed(galaxySeed int64, index, slot int) int64 {
	return (galaxySeed+int64(index))*seedsPerSlot + int64(slot)
}

// Generate derives the system at index of galaxy galaxySeed. The stream is
// seeded from galaxySeed+index so every index yields its own system.
//
// The star class is cosmetic. Whether the system hosts a black hole is a
// separate draw that only changes orbits.
func Generate(galaxySeed int64, index int, tuning Tuning, opts Options) StarSystemRecord {
	r := procgen.New(galaxySeed + int64(index))

	starType := procgen.Pick(r, StarTypes)

	theta := float64(r.Next() * 2 * math.Pi)
	radius := float64(math.Sqrt(r.Next()) * tuning.GalaxyRadius)
	height := float64((r.Next()*2 - 1) * tuning.VerticalSpread)

	planets := minPlanets + r.Intn(planetSpread)
	discovered := r.Next() > chartedChance
	hasBlackHole := r.Next() < tuning.BlackHoleChance

	rec := StarSystemRecord{
		ID:           ID(galaxySeed, index),
		Name:         procgen.Name(galaxySeed + int64(index)),
		GalaxySeed:   galaxySeed,
		Index:        index,
		Position:     [3]float64{radius * math.Cos(theta), height, radius * math.Sin(theta)},
		StarType:     starType,
		StarColor:    starType.Color(),
		Planets:      planets,
		Discovered:   discovered,
		HasBlackHole: hasBlackHole,
	}

	if opts.IncludePlanets {
		rec.PlanetList = orbits(r, galaxySeed, index, planets, hasBlackHole, tuning)
	}

	return rec
}

// orbits lays planets out at fixed spacing; speed falls with the square
// root of the radius.
func orbits(r *procgen.Random, galaxySeed int64, index, count int, hasBlackHole bool, tuning Tuning) []OrbitalBody {
	minRadius, speedFactor := tuning.orbitParams(hasBlackHole)
	bodies := make([]OrbitalBody, 0, count)

	for i := 0; i < count; i++ {
		orbitRadius := minRadius + float64(i)*tuning.OrbitSpacing
		bodies = append(bodies, OrbitalBody{
			PlanetRecord:  planet.Generate(PlanetSeed(galaxySeed, index, i)),
			OrbitIndex:    i,
			OrbitRadius:   orbitRadius,
			OrbitSpeed:    speedFactor / math.Sqrt(orbitRadius),
			RotationSpeed: tuning.RotationSpeedMin + float64(r.Next()*tuning.RotationSpeedRange),
		})
	}

	return bodies
}
