package packages_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"pickuppoint/internal/dto"
	"pickuppoint/internal/entities"
	"pickuppoint/pkg/logger"
)

const defaultLimit = 100

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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packagesList, err := h.service.ListPackages(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.PackageList{
		Packages: make([]dto.Package, 0, len(packagesList)),
	}
	for i := range packagesList {
		response.Packages = append(response.Packages, dto.FromPackage(&packagesList[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.PackageFilter, error) {
	query := r.URL.Query()

	filter := entities.PackageFilter{
		Search: query.Get("search"),
		Limit:  defaultLimit,
	}

	if raw := query.Get("status"); raw != "" {
		status := entities.PackageStatusType(raw)
		filter.Status = &status
	}
	if raw := query.Get("courier_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.PackageFilter{}, err
		}
		filter.CourierID = &id
	}
	if raw := query.Get("pickup_location_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.PackageFilter{}, err
		}
		filter.PickupLocationID = &id
	}
	if raw := query.Get("created_from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.PackageFilter{}, err
		}
		filter.CreatedFrom = &from
	}
	if raw := query.Get("created_to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.PackageFilter{}, err
		}
		filter.CreatedTo = &to
	}
	if raw := query.Get("include_archived"); raw != "" {
		includeArchived, err := strconv.ParseBool(raw)
		if err != nil {
			return entities.PackageFilter{}, err
		}
		filter.IncludeArchived = includeArchived
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return entities.PackageFilter{}, err
		}
		filter.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return entities.PackageFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}
