package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"pickuppoint/internal/dto"
	"pickuppoint/internal/entities"
	"pickuppoint/internal/service/pickup"
	"pickuppoint/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var packageCreateDTO dto.PackageCreate
	err := json.NewDecoder(r.Body).Decode(&packageCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packageModify := entities.PackageModify{
		Tracking:         &packageCreateDTO.Tracking,
		CustomerName:     &packageCreateDTO.CustomerName,
		CourierID:        packageCreateDTO.CourierID,
		PickupLocationID: packageCreateDTO.PickupLocationID,
		ExpectedAt:       packageCreateDTO.ExpectedAt,
	}
	if packageCreateDTO.CustomerPhone != "" {
		packageModify.CustomerPhone = &packageCreateDTO.CustomerPhone
	}
	if packageCreateDTO.CustomerEmail != "" {
		packageModify.CustomerEmail = &packageCreateDTO.CustomerEmail
	}
	if packageCreateDTO.Status != "" {
		status := entities.PackageStatusType(packageCreateDTO.Status)
		packageModify.Status = &status
	}
	if packageCreateDTO.Notes != "" {
		packageModify.Notes = &packageCreateDTO.Notes
	}

	created, err := h.service.CreatePackage(r.Context(), packageModify)
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrMissingRequiredFields),
			errors.Is(err, pickup.ErrInvalidEmail),
			errors.Is(err, pickup.ErrInvalidPhone),
			errors.Is(err, pickup.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pickup.ErrDuplicateTracking):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromPackage(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
