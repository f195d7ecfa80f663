package otp_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pickuppoint/internal/dto"
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

// ServeHTTP reissues the pickup code. The plaintext code appears in this
// response exactly once and is never retrievable again.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// тело опционально
	var issueRequestDTO dto.OtpIssueRequest
	err = json.NewDecoder(r.Body).Decode(&issueRequestDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	issue, err := h.service.IssueOtp(r.Context(), id, issueRequestDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OtpIssueResponse{
		OtpID:     issue.OtpID,
		Code:      issue.Code,
		ExpiresAt: issue.ExpiresAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
