package confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pickuppoint/internal/dto"
	"pickuppoint/internal/service/otp"
	"pickuppoint/internal/service/pickup"
	"pickuppoint/internal/service/qrcode"
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

	var confirmDTO dto.ConfirmRequest
	err = json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil || confirmDTO.Input == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	confirmed, err := h.service.ConfirmPickup(r.Context(), id, confirmDTO.Input, confirmDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, pickup.ErrQrMismatch),
			errors.Is(err, qrcode.ErrUnrecognizedCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, otp.ErrInvalidCode):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, otp.ErrNoActiveOtp):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, otp.ErrMaxAttemptsExceeded):
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromPackage(confirmed))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
