package history

import (
	"encoding/json"

	"pickuppoint/internal/entities"
)

func ToDomain(h *HistoryEntryDB) *entities.HistoryEntry {
	if h == nil {
		return nil
	}

	entry := &entities.HistoryEntry{
		ID:        h.ID,
		PackageID: h.PackageID,
		EventType: entities.HistoryEventType(h.EventType),
		ActorID:   h.ActorID,
		CreatedAt: h.CreatedAt,
	}

	if h.PreviousStatus != nil {
		status := entities.PackageStatusType(*h.PreviousStatus)
		entry.PreviousStatus = &status
	}
	if h.NewStatus != nil {
		status := entities.PackageStatusType(*h.NewStatus)
		entry.NewStatus = &status
	}

	if len(h.Meta) > 0 {
		// битая meta не роняет чтение истории
		var meta map[string]any
		if err := json.Unmarshal(h.Meta, &meta); err == nil {
			entry.Meta = meta
		}
	}

	return entry
}

func ToDomainList(entriesDB []HistoryEntryDB) []entities.HistoryEntry {
	if len(entriesDB) == 0 {
		return []entities.HistoryEntry{}
	}

	result := make([]entities.HistoryEntry, len(entriesDB))
	for i, entryDB := range entriesDB {
		result[i] = *ToDomain(&entryDB)
	}
	return result
}
