package discovery

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"planets-explorer/internal/shared/database"
	"planets-explorer/internal/shared/errors"
)

type Repository interface {
	// Save stores d unless its entity was already discovered. It returns
	// the stored row and whether this call created it.
	Save(ctx context.Context, d Discovery) (Discovery, bool, error)
	GetByEntityID(ctx context.Context, entityID string) (Discovery, error)
	// List returns discoveries newest first. An empty entityType lists all.
	List(ctx context.Context, entityType EntityType, limit int) ([]Discovery, error)
}

// SQLRepository works on both postgres and sqlite; queries are written
// with ? placeholders and rebound for the driver.
type SQLRepository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewSQLRepository(db *database.DB, logger *slog.Logger) *SQLRepository {
	logger.Debug("Initializing discovery repository", "driver", db.DriverName())

	return &SQLRepository{
		db:     db,
		logger: logger,
	}
}

const discoveryColumns = `id, entity_id, entity_type, seed, name, discovered_by, discovered_at, payload`

func (r *SQLRepository) Save(ctx context.Context, d Discovery) (Discovery, bool, error) {
	logger := r.logger.With(
		"component", "discovery_repository",
		"operation", "save",
		"entity_id", d.EntityID,
		"type", d.EntityType,
	)
	logger.Debug("Saving discovery")

	query := r.db.Rebind(`
		INSERT INTO discoveries (` + discoveryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (entity_id) DO NOTHING
	`)

	result, err := r.db.ExecContext(ctx, query,
		d.ID, d.EntityID, d.EntityType, d.Seed, d.Name, d.DiscoveredBy, d.DiscoveredAt.UTC(), d.Payload)
	if err != nil {
		logger.Error("Failed to insert discovery", "error", err)
		return Discovery{}, false, fmt.Errorf("failed to insert discovery: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Discovery{}, false, fmt.Errorf("failed to read insert result: %w", err)
	}

	stored, err := r.GetByEntityID(ctx, d.EntityID)
	if err != nil {
		return Discovery{}, false, err
	}

	created := affected > 0
	if created {
		logger.Info("Discovery recorded", "discovery_id", stored.ID)
	} else {
		logger.Debug("Entity already discovered", "discovery_id", stored.ID)
	}
	return stored, created, nil
}

func (r *SQLRepository) GetByEntityID(ctx context.Context, entityID string) (Discovery, error) {
	logger := r.logger.With("component", "discovery_repository", "operation", "get", "entity_id", entityID)

	query := r.db.Rebind(`SELECT ` + discoveryColumns + ` FROM discoveries WHERE entity_id = ?`)

	var d Discovery
	if err := r.db.GetContext(ctx, &d, query, entityID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return Discovery{}, errors.NotFoundf("discovery %s not found", entityID)
		}
		logger.Error("Failed to get discovery", "error", err)
		return Discovery{}, fmt.Errorf("failed to get discovery: %w", err)
	}

	d.hydrate()
	return d, nil
}

func (r *SQLRepository) List(ctx context.Context, entityType EntityType, limit int) ([]Discovery, error) {
	logger := r.logger.With("component", "discovery_repository", "operation", "list", "type", entityType)

	query := `SELECT ` + discoveryColumns + ` FROM discoveries`
	var args []any
	if entityType != "" {
		query += ` WHERE entity_type = ?`
		args = append(args, entityType)
	}
	query += ` ORDER BY discovered_at DESC, id LIMIT ?`
	args = append(args, limit)

	discoveries := []Discovery{}
	if err := r.db.SelectContext(ctx, &discoveries, r.db.Rebind(query), args...); err != nil {
		logger.Error("Failed to list discoveries", "error", err)
		return nil, fmt.Errorf("failed to list discoveries: %w", err)
	}

	for i := range discoveries {
		discoveries[i].hydrate()
	}

	logger.Debug("Discoveries listed", "count", len(discoveries))
	return discoveries, nil
}
