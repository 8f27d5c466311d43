package galaxy

import "planets-explorer/internal/system"

// DefaultSystemCount is used when a caller does not choose a size.
const DefaultSystemCount = 50

type GalaxyRecord struct {
	Seed    int64                     `json:"seed"`
	Systems []system.StarSystemRecord `json:"systems"`
}
