package payment_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"rolloff/internal/gateway/invoicing"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/internal/service/payment"
	"rolloff/pkg/logger"
)

type paymentCreateRequest struct {
	OrderID int64   `json:"order_id"`
	DueDate *string `json:"due_date"`
}

type Handler struct {
	log        handlerLogger
	service    Service
	defaultDue time.Duration
}

func New(log handlerLogger, service Service, defaultDue time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		service:    service,
		defaultDue: defaultDue,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var paymentCreateDTO paymentCreateRequest
	err := json.NewDecoder(r.Body).Decode(&paymentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dueDate := time.Now().UTC().Add(h.defaultDue)
	if paymentCreateDTO.DueDate != nil {
		dueDate, err = dto.ParseDate(*paymentCreateDTO.DueDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	paymentEntity, err := h.service.Create(r.Context(), paymentCreateDTO.OrderID, dueDate)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrPaymentAlreadyActive):
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
