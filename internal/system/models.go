package system

import (
	"time"

	"planets-explorer/internal/planet"
)

type StarType string

const (
	StarClassO      StarType = "Class O (Blue)"
	StarClassB      StarType = "Class B (Blue-White)"
	StarClassA      StarType = "Class A (White)"
	StarClassF      StarType = "Class F (Yellow-White)"
	StarClassG      StarType = "Class G (Yellow)"
	StarClassK      StarType = "Class K (Orange)"
	StarClassM      StarType = "Class M (Red)"
	StarRedDwarf    StarType = "Red Dwarf"
	StarBinary      StarType = "Binary System"
	StarBlackHole   StarType = "Black Hole"
	StarNeutronStar StarType = "Neutron Star"
)

// StarTypes is the draw order for star classification.
var StarTypes = []StarType{
	StarClassO, StarClassB, StarClassA, StarClassF, StarClassG, StarClassK,
	StarClassM, StarRedDwarf, StarBinary, StarBlackHole, StarNeutronStar,
}

var starColors = map[StarType]string{
	StarClassO:      "#9bb0ff",
	StarClassB:      "#aabfff",
	StarClassA:      "#cad7ff",
	StarClassF:      "#f8f7ff",
	StarClassG:      "#fff4ea",
	StarClassK:      "#ffd2a1",
	StarClassM:      "#ffcc6f",
	StarRedDwarf:    "#ff8f60",
	StarBinary:      "#e8e8ff",
	StarBlackHole:   "#000000",
	StarNeutronStar: "#efefff",
}

// Color returns the display colour for a star class.
func (s StarType) Color() string {
	return starColors[s]
}

// OrbitalBody is a planet placed in a system. The planet fields are
// flattened into the same JSON object.
type OrbitalBody struct {
	planet.PlanetRecord
	OrbitIndex    int     `json:"orbitIndex"`
	OrbitRadius   float64 `json:"orbitRadius"`
	OrbitSpeed    float64 `json:"orbitSpeed"`
	RotationSpeed float64 `json:"rotationSpeed"`
}

type StarSystemRecord struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	GalaxySeed    int64         `json:"galaxySeed"`
	Index         int           `json:"index"`
	Position      [3]float64    `json:"position"` // x, y (vertical), z
	StarType      StarType      `json:"starType"`
	StarColor     string        `json:"starColor"`
	Planets       int           `json:"planets"`
	Discovered    bool          `json:"discovered"`
	DiscoveryDate *time.Time    `json:"discoveryDate,omitempty"`
	HasBlackHole  bool          `json:"hasBlackHole"`
	PlanetList    []OrbitalBody `json:"planetList,omitempty"`
}

// MarkDiscovered stamps the first explorer discovery. Systems charted at
// generation time are already flagged but carry no date until then.
func (s *StarSystemRecord) MarkDiscovered(at time.Time) bool {
	if s.DiscoveryDate != nil {
		return false
	}
	at = at.UTC()
	s.Discovered = true
	s.DiscoveryDate = &at
	return true
}
