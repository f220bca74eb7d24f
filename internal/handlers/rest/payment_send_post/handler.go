package payment_send_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/gateway/invoicing"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/internal/service/payment"
	"rolloff/pkg/logger"
)

type paymentSendRequest struct {
	PaymentID int64 `json:"payment_id"`
}

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
	var paymentSendDTO paymentSendRequest
	err := json.NewDecoder(r.Body).Decode(&paymentSendDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentEntity, err := h.service.Send(r.Context(), paymentSendDTO.PaymentID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidPaymentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrPaymentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrPaymentNotDraft):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, invoicing.ErrProviderUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromPayment(paymentEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
