package package_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var packageUpdateDTO dto.PackageUpdate
	err = json.NewDecoder(r.Body).Decode(&packageUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packageModify := entities.PackageModify{
		ID:               &id,
		Tracking:         packageUpdateDTO.Tracking,
		CustomerName:     packageUpdateDTO.CustomerName,
		CustomerPhone:    packageUpdateDTO.CustomerPhone,
		CustomerEmail:    packageUpdateDTO.CustomerEmail,
		CourierID:        packageUpdateDTO.CourierID,
		PickupLocationID: packageUpdateDTO.PickupLocationID,
		ExpectedAt:       packageUpdateDTO.ExpectedAt,
		Notes:            packageUpdateDTO.Notes,
	}

	updated, err := h.service.UpdatePackage(r.Context(), packageModify)
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrMissingRequiredFields),
			errors.Is(err, pickup.ErrInvalidEmail),
			errors.Is(err, pickup.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pickup.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, pickup.ErrDuplicateTracking):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromPackage(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
