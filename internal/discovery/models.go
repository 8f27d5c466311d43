package discovery

import (
	"encoding/json"
	"time"
)

type EntityType string

const (
	EntityPlanet EntityType = "planet"
	EntitySystem EntityType = "system"
)

func (t EntityType) Valid() bool {
	return t == EntityPlanet || t == EntitySystem
}

// Discovery is a stored first discovery of a planet or a star system.
// Payload is the marked record as persisted; Data exposes it to clients.
type Discovery struct {
	ID           string          `db:"id" json:"id"`
	EntityID     string          `db:"entity_id" json:"entityId"`
	EntityType   EntityType      `db:"entity_type" json:"type"`
	Seed         int64           `db:"seed" json:"seed"`
	Name         string          `db:"name" json:"name"`
	DiscoveredBy *string         `db:"discovered_by" json:"discoveredBy,omitempty"`
	DiscoveredAt time.Time       `db:"discovered_at" json:"discoveredAt"`
	Payload      string          `db:"payload" json:"-"`
	Data         json.RawMessage `db:"-" json:"data"`
}

// SaveRequest is the body of POST /api/discoveries/save.
type SaveRequest struct {
	Type EntityType      `json:"type"`
	Data json.RawMessage `json:"data"`
}

// planetClaim and systemClaim carry the identifying fields a client sends;
// everything else is regenerated server side.
type planetClaim struct {
	ID   string `json:"id"`
	Seed *int64 `json:"seed"`
}

type systemClaim struct {
	ID string `json:"id"`
}

func (d *Discovery) hydrate() {
	d.Data = json.RawMessage(d.Payload)
	d.DiscoveredAt = d.DiscoveredAt.UTC()
}
