package history

import (
	"context"
	"encoding/json"
	"fmt"

	"pickuppoint/internal/entities"
	"pickuppoint/internal/repository"
)

const historyColumns = `id, package_id, event_type, previous_status, new_status, actor_id, meta, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append writes one immutable audit record. There is no update or delete on
// this table. A meta payload that cannot be serialized yields
// repository.ErrMetaSerialization without writing anything; the caller decides
// whether to retry without meta.
func (r *Repository) Append(ctx context.Context, entry entities.HistoryEntry) (int64, error) {
	var meta []byte
	if entry.Meta != nil {
		var err error
		meta, err = json.Marshal(entry.Meta)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", repository.ErrMetaSerialization, err)
		}
	}

	var previousStatus, newStatus *string
	if entry.PreviousStatus != nil {
		status := entry.PreviousStatus.String()
		previousStatus = &status
	}
	if entry.NewStatus != nil {
		status := entry.NewStatus.String()
		newStatus = &status
	}

	query := `INSERT INTO package_history (package_id, event_type, previous_status, new_status, actor_id, meta)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.PackageID,
		entry.EventType.String(),
		previousStatus,
		newStatus,
		entry.ActorID,
		meta,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected history repository append error: %w", err)
	}

	return id, nil
}

func (r *Repository) List(ctx context.Context, packageID int64, limit uint64) ([]entities.HistoryEntry, error) {
	query := `SELECT ` + historyColumns + `
		FROM package_history
		WHERE package_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, packageID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}
	defer rows.Close()

	entryModels := make([]HistoryEntryDB, 0, 8)
	for rows.Next() {
		var entryModel HistoryEntryDB
		err := rows.Scan(
			&entryModel.ID,
			&entryModel.PackageID,
			&entryModel.EventType,
			&entryModel.PreviousStatus,
			&entryModel.NewStatus,
			&entryModel.ActorID,
			&entryModel.Meta,
			&entryModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected history repository list error: %w", err)
		}
		entryModels = append(entryModels, entryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}

	return ToDomainList(entryModels), nil
}

// HasEvent reports whether the package already has a ledger entry of the
// given type. Backs the storage-warning idempotency guard.
func (r *Repository) HasEvent(ctx context.Context, packageID int64, eventType entities.HistoryEventType) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM package_history
		WHERE package_id = $1 AND event_type = $2
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, packageID, eventType.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected history repository has event error: %w", err)
	}

	return exists, nil
}
