package package_get

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

// ServeHTTP resolves the path parameter as a numeric id first and falls
// back to a tracking number lookup, so both /packages/42 and
// /packages/TRK-1001 work.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	var (
		packageEntity *entities.Package
		err           error
	)
	if id, parseErr := strconv.ParseInt(key, 10, 64); parseErr == nil {
		packageEntity, err = h.service.GetPackage(r.Context(), id)
	} else {
		packageEntity, err = h.service.GetPackageByTracking(r.Context(), key)
	}
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromPackage(packageEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
