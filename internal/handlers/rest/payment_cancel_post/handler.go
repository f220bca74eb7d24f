package payment_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/gateway/invoicing"
	"rolloff/internal/service/payment"
)

type paymentCancelRequest struct {
	PaymentID int64  `json:"payment_id"`
	Reason    string `json:"reason"`
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
	var paymentCancelDTO paymentCancelRequest
	err := json.NewDecoder(r.Body).Decode(&paymentCancelDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Cancel(r.Context(), paymentCancelDTO.PaymentID, paymentCancelDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidPaymentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrPaymentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrPaymentTerminal):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, invoicing.ErrProviderUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
