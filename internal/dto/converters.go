package dto

import "pickuppoint/internal/entities"

func FromPackage(pkg *entities.Package) Package {
	return Package{
		ID:               pkg.ID,
		Tracking:         pkg.Tracking,
		CustomerName:     pkg.CustomerName,
		CustomerPhone:    pkg.CustomerPhone,
		CustomerEmail:    pkg.CustomerEmail,
		CourierID:        pkg.CourierID,
		PickupLocationID: pkg.PickupLocationID,
		Status:           pkg.Status.String(),
		ExpectedAt:       pkg.ExpectedAt,
		ArchivedAt:       pkg.ArchivedAt,
		QrCodePath:       pkg.QrCodePath,
		Notes:            pkg.Notes,
		CreatedAt:        pkg.CreatedAt,
		UpdatedAt:        pkg.UpdatedAt,
	}
}

func FromNotificationEntry(entry entities.NotificationEntry) NotificationEntry {
	return NotificationEntry{
		ID:        entry.ID,
		Channel:   entry.Channel.String(),
		Status:    entry.Status.String(),
		Message:   entry.Message,
		Meta:      entry.Meta,
		CreatedAt: entry.CreatedAt,
	}
}

func FromHistoryEntry(entry entities.HistoryEntry) HistoryEntry {
	converted := HistoryEntry{
		ID:        entry.ID,
		EventType: entry.EventType.String(),
		ActorID:   entry.ActorID,
		Meta:      entry.Meta,
		CreatedAt: entry.CreatedAt,
	}
	if entry.PreviousStatus != nil {
		previous := entry.PreviousStatus.String()
		converted.PreviousStatus = &previous
	}
	if entry.NewStatus != nil {
		next := entry.NewStatus.String()
		converted.NewStatus = &next
	}
	return converted
}
