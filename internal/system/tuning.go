package system

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the constants of galaxy layout and orbital mechanics. The
// zero value is not usable; start from DefaultTuning.
type Tuning struct {
	GalaxyRadius   float64 `yaml:"galaxy_radius"`
	VerticalSpread float64 `yaml:"vertical_spread"`

	OrbitSpacing   float64 `yaml:"orbit_spacing"`
	MinOrbitRadius float64 `yaml:"min_orbit_radius"`
	SpeedFactor    float64 `yaml:"speed_factor"`

	BlackHoleChance         float64 `yaml:"black_hole_chance"`
	BlackHoleMinOrbitRadius float64 `yaml:"black_hole_min_orbit_radius"`
	BlackHoleSpeedFactor    float64 `yaml:"black_hole_speed_factor"`

	RotationSpeedMin   float64 `yaml:"rotation_speed_min"`
	RotationSpeedRange float64 `yaml:"rotation_speed_range"`
}

func DefaultTuning() Tuning {
	return Tuning{
		GalaxyRadius:            100,
		VerticalSpread:          10,
		OrbitSpacing:            2.5,
		MinOrbitRadius:          4,
		SpeedFactor:             1,
		BlackHoleChance:         0.1,
		BlackHoleMinOrbitRadius: 8,
		BlackHoleSpeedFactor:    2,
		RotationSpeedMin:        0.1,
		RotationSpeedRange:      0.4,
	}
}

// LoadTuning reads a YAML file over the defaults: keys missing from the
// file keep their default value.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return tuning, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	if err := tuning.Validate(); err != nil {
		return tuning, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}

	return tuning, nil
}

func (t Tuning) Validate() error {
	if t.GalaxyRadius <= 0 {
		return fmt.Errorf("galaxy_radius must be positive")
	}
	if t.VerticalSpread < 0 {
		return fmt.Errorf("vertical_spread must not be negative")
	}
	if t.OrbitSpacing <= 0 {
		return fmt.Errorf("orbit_spacing must be positive")
	}
	if t.MinOrbitRadius <= 0 || t.BlackHoleMinOrbitRadius <= 0 {
		return fmt.Errorf("minimum orbit radii must be positive")
	}
	if t.SpeedFactor <= 0 || t.BlackHoleSpeedFactor <= 0 {
		return fmt.Errorf("speed factors must be positive")
	}
	if t.BlackHoleChance < 0 || t.BlackHoleChance > 1 {
		return fmt.Errorf("black_hole_chance must be within [0, 1]")
	}
	if t.RotationSpeedRange < 0 {
		return fmt.Errorf("rotation_speed_range must not be negative")
	}
	return nil
}

// orbitParams returns the minimum radius and speed factor for a system.
func (t Tuning) orbitParams(hasBlackHole bool) (minRadius, speedFactor float64) {
	if hasBlackHole {
		return t.BlackHoleMinOrbitRadius, t.BlackHoleSpeedFactor
	}
	return t.MinOrbitRadius, t.SpeedFactor
}
