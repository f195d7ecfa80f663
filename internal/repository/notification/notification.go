package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pickuppoint/internal/entities"
	"pickuppoint/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, entry entities.NotificationEntry) (int64, error) {
	var meta []byte
	if entry.Meta != nil {
		var err error
		meta, err = json.Marshal(entry.Meta)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", repository.ErrMetaSerialization, err)
		}
	}

	query := `INSERT INTO notification_log (package_id, channel, status, message, meta)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.PackageID,
		entry.Channel.String(),
		entry.Status.String(),
		entry.Message,
		meta,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository append error: %w", err)
	}

	return id, nil
}

func (r *Repository) List(ctx context.Context, packageID int64, limit uint64) ([]entities.NotificationEntry, error) {
	query := `SELECT id, package_id, channel, status, message, meta, created_at
		FROM notification_log
		WHERE package_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, packageID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.NotificationEntry, 0, 8)
	for rows.Next() {
		var (
			entry     entities.NotificationEntry
			channel   string
			status    string
			meta      []byte
			createdAt time.Time
		)
		err := rows.Scan(&entry.ID, &entry.PackageID, &channel, &status, &entry.Message, &meta, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}

		entry.Channel = entities.NotificationChannelType(channel)
		entry.Status = entities.NotificationStatusType(status)
		entry.CreatedAt = createdAt
		if len(meta) > 0 {
			var metaMap map[string]any
			if err := json.Unmarshal(meta, &metaMap); err == nil {
				entry.Meta = metaMap
			}
		}

		entries = append(entries, entry)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return entries, nil
}
