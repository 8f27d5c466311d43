package discovery

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"planets-explorer/internal/planet"
	"planets-explorer/internal/shared/errors"
	"planets-explorer/internal/system"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type Service struct {
	repo   Repository
	tuning system.Tuning
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, tuning system.Tuning, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tuning: tuning,
		logger: logger,
		now:    time.Now,
	}
}

// Save regenerates the claimed entity from its seed, marks it discovered
// and stores it. A client cannot inject attributes: only the identifying
// fields of the payload are read. If the entity was discovered before, the
// original discovery is returned and created is false.
func (s *Service) Save(ctx context.Context, req SaveRequest, explorer string) (Discovery, bool, error) {
	logger := s.logger.With("component", "discovery_service", "operation", "save", "type", req.Type)

	if !req.Type.Valid() {
		return Discovery{}, false, errors.Validationf("type must be %q or %q", EntityPlanet, EntitySystem)
	}
	if len(req.Data) == 0 {
		return Discovery{}, false, errors.Validation("data is required")
	}

	var (
		d   Discovery
		err error
	)
	switch req.Type {
	case EntityPlanet:
		d, err = s.planetDiscovery(req.Data)
	case EntitySystem:
		d, err = s.systemDiscovery(req.Data)
	}
	if err != nil {
		return Discovery{}, false, err
	}

	d.ID = uuid.NewString()
	d.EntityType = req.Type
	if explorer != "" {
		d.DiscoveredBy = &explorer
	}

	stored, created, err := s.repo.Save(ctx, d)
	if err != nil {
		return Discovery{}, false, errors.WrapInternal("failed to save discovery", err)
	}

	logger.Info("Discovery saved", "entity_id", stored.EntityID, "created", created)
	return stored, created, nil
}

func (s *Service) planetDiscovery(data json.RawMessage) (Discovery, error) {
	var claim planetClaim
	if err := json.Unmarshal(data, &claim); err != nil {
		return Discovery{}, errors.WrapValidation("invalid planet data", err)
	}
	if claim.Seed == nil {
		return Discovery{}, errors.Validation("planet seed is required")
	}

	rec := planet.Generate(*claim.Seed)
	if claim.ID != "" && claim.ID != rec.ID {
		return Discovery{}, errors.Validationf("planet id %q does not match seed %d", claim.ID, *claim.Seed)
	}

	at := s.timestamp()
	rec.MarkDiscovered(at)

	return s.discovery(rec.ID, rec.Seed, rec.Name, at, rec)
}

func (s *Service) systemDiscovery(data json.RawMessage) (Discovery, error) {
	var claim systemClaim
	if err := json.Unmarshal(data, &claim); err != nil {
		return Discovery{}, errors.WrapValidation("invalid system data", err)
	}
	if claim.ID == "" {
		return Discovery{}, errors.Validation("system id is required")
	}

	galaxySeed, index, err := system.ParseID(claim.ID)
	if err != nil {
		return Discovery{}, errors.WrapValidation("invalid system id", err)
	}

	rec := system.Generate(galaxySeed, index, s.tuning, system.Options{IncludePlanets: true})

	at := s.timestamp()
	rec.MarkDiscovered(at)

	return s.discovery(rec.ID, galaxySeed, rec.Name, at, rec)
}

func (s *Service) discovery(entityID string, seed int64, name string, at time.Time, record any) (Discovery, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return Discovery{}, errors.WrapInternal("failed to encode discovery", err)
	}

	return Discovery{
		EntityID:     entityID,
		Seed:         seed,
		Name:         name,
		DiscoveredAt: at,
		Payload:      string(payload),
	}, nil
}

// timestamp is truncated to what every supported database keeps.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Service) Get(ctx context.Context, entityID string) (Discovery, error) {
	d, err := s.repo.GetByEntityID(ctx, entityID)
	if err != nil {
		if errors.Is(err, errors.ErrorTypeNotFound) {
			return Discovery{}, err
		}
		return Discovery{}, errors.WrapInternal("failed to get discovery", err)
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, entityType EntityType, limit int) ([]Discovery, error) {
	if entityType != "" && !entityType.Valid() {
		return nil, errors.Validationf("type must be %q or %q", EntityPlanet, EntitySystem)
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		return nil, errors.Validationf("limit must not exceed %d", MaxListLimit)
	}

	discoveries, err := s.repo.List(ctx, entityType, limit)
	if err != nil {
		return nil, errors.WrapInternal("failed to list discoveries", err)
	}
	return discoveries, nil
}
