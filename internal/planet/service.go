package planet

import (
	"log/slog"
	"math/rand/v2"
)

// MaxRandomSeed bounds server-chosen seeds to [0, MaxRandomSeed).
const MaxRandomSeed = 1_000_000

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service")

	return &Service{
		logger: logger,
	}
}

// Generate returns the planet for seed.
func (s *Service) Generate(seed int64) PlanetRecord {
	logger := s.logger.With("component", "planet_service", "operation", "generate", "seed", seed)

	p := Generate(seed)

	logger.Debug("Planet generated",
		"type", p.Type,
		"resources", len(p.Resources),
		"flora", len(p.Flora),
		"fauna", len(p.Fauna),
	)
	return p
}

// RandomSeed picks a seed for callers that did not supply one.
func (s *Service) RandomSeed() int64 {
	return rand.Int64N(MaxRandomSeed)
}
