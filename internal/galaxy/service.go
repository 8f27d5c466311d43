package galaxy

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"sync"

	"planets-explorer/internal/system"
)

// MaxRandomSeed bounds server-chosen galaxy seeds to [0, MaxRandomSeed).
const MaxRandomSeed = 1_000_000

type Service struct {
	cache     Cache
	tuning    system.Tuning
	tuningKey string
	workers   int
	logger    *slog.Logger
}

// NewService wires the galaxy generator to a cache. cache may be nil, in
// which case every request is generated. workers <= 0 uses GOMAXPROCS.
func NewService(cache Cache, tuning system.Tuning, workers int, logger *slog.Logger) *Service {
	logger.Debug("Initializing galaxy service", "workers", workers)

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("%+v", tuning)))

	return &Service{
		cache:     cache,
		tuning:    tuning,
		tuningKey: fmt.Sprintf("%x", sum[:6]),
		workers:   workers,
		logger:    logger,
	}
}

func (s *Service) Tuning() system.Tuning {
	return s.tuning
}

// RandomSeed picks a galaxy seed for callers that did not supply one.
func (s *Service) RandomSeed() int64 {
	return rand.Int64N(MaxRandomSeed)
}

// Generate returns the galaxy for seed, from the cache when possible. The
// result is identical to the sequential Generate regardless of worker count.
func (s *Service) Generate(ctx context.Context, seed int64, count int, opts system.Options) (GalaxyRecord, error) {
	logger := s.logger.With("component", "galaxy_service", "operation", "generate", "seed", seed, "count", count, "include_planets", opts.IncludePlanets)

	key := s.cacheKey(seed, count, opts)
	if rec, ok := s.fromCache(ctx, logger, key); ok {
		logger.Debug("Galaxy served from cache")
		return rec, nil
	}

	systems, err := s.generateSystems(ctx, seed, count, opts)
	if err != nil {
		return GalaxyRecord{}, err
	}
	rec := GalaxyRecord{Seed: seed, Systems: systems}

	s.store(ctx, logger, key, rec)

	logger.Info("Galaxy generated", "systems", len(systems))
	return rec, nil
}

// System returns one system with its planets.
func (s *Service) System(ctx context.Context, seed int64, index int) (system.StarSystemRecord, error) {
	if err := ctx.Err(); err != nil {
		return system.StarSystemRecord{}, err
	}

	logger := s.logger.With("component", "galaxy_service", "operation", "system", "seed", seed, "index", index)
	rec := system.Generate(seed, index, s.tuning, system.Options{IncludePlanets: true})
	logger.Debug("System generated", "planets", rec.Planets, "has_black_hole", rec.HasBlackHole)

	return rec, nil
}

// generateSystems fans indices out over the worker pool. Each worker writes
// only its own slots, so output order matches the index order.
func (s *Service) generateSystems(ctx context.Context, seed int64, count int, opts system.Options) ([]system.StarSystemRecord, error) {
	systems := make([]system.StarSystemRecord, count)
	if count == 0 {
		return systems, ctx.Err()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < min(s.workers, count); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				systems[i] = system.Generate(seed, i, s.tuning, opts)
			}
		}()
	}

feed:
	for i := 0; i < count; i++ {
		select {
		case indices <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indices)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("galaxy generation cancelled: %w", err)
	}
	return systems, nil
}

func (s *Service) cacheKey(seed int64, count int, opts system.Options) string {
	return fmt.Sprintf("galaxy:%s:%d:%d:%t", s.tuningKey, seed, count, opts.IncludePlanets)
}

// fromCache treats every cache failure as a miss.
func (s *Service) fromCache(ctx context.Context, logger *slog.Logger, key string) (GalaxyRecord, bool) {
	if s.cache == nil {
		return GalaxyRecord{}, false
	}

	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Galaxy cache read failed", "error", err)
		return GalaxyRecord{}, false
	}
	if !ok {
		return GalaxyRecord{}, false
	}

	var rec GalaxyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		logger.Warn("Discarding corrupt galaxy cache entry", "error", err)
		return GalaxyRecord{}, false
	}
	return rec, true
}

func (s *Service) store(ctx context.Context, logger *slog.Logger, key string, rec GalaxyRecord) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(rec)
	if err != nil {
		logger.Warn("Failed to encode galaxy for cache", "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		logger.Warn("Galaxy cache write failed", "error", err)
	}
}
