package order_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/internal/service/order"
	"rolloff/pkg/logger"
)

type orderUpdateRequest struct {
	ID int64 `json:"id"`

	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Zip           *string `json:"zip"`

	ServiceDescription *string `json:"service_description"`

	AssignedTo *string `json:"assigned_to"`

	ScheduledDeliveryDate *string `json:"scheduled_delivery_date"`
	ScheduledPickupDate   *string `json:"scheduled_pickup_date"`

	QuotedPriceCents *int64 `json:"quoted_price_cents"`
	FinalPriceCents  *int64 `json:"final_price_cents"`

	InternalNotes *string `json:"internal_notes"`
	DriverNotes   *string `json:"driver_notes"`
}

type errorResponse struct {
	Error string `json:"error"`
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
	var orderUpdateDTO orderUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		ID:                 &orderUpdateDTO.ID,
		CustomerName:       orderUpdateDTO.CustomerName,
		CustomerPhone:      orderUpdateDTO.CustomerPhone,
		CustomerEmail:      orderUpdateDTO.CustomerEmail,
		Address:            orderUpdateDTO.Address,
		City:               orderUpdateDTO.City,
		State:              orderUpdateDTO.State,
		Zip:                orderUpdateDTO.Zip,
		ServiceDescription: orderUpdateDTO.ServiceDescription,
		AssignedTo:         orderUpdateDTO.AssignedTo,
		QuotedPriceCents:   orderUpdateDTO.QuotedPriceCents,
		FinalPriceCents:    orderUpdateDTO.FinalPriceCents,
		InternalNotes:      orderUpdateDTO.InternalNotes,
		DriverNotes:        orderUpdateDTO.DriverNotes,
	}

	if orderUpdateDTO.ScheduledDeliveryDate != nil {
		deliveryDate, err := dto.ParseDate(*orderUpdateDTO.ScheduledDeliveryDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		orderModifyEntity.ScheduledDeliveryDate = &deliveryDate
	}
	if orderUpdateDTO.ScheduledPickupDate != nil {
		pickupDate, err := dto.ParseDate(*orderUpdateDTO.ScheduledPickupDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		orderModifyEntity.ScheduledPickupDate = &pickupDate
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrUnknownDriver),
			errors.Is(err, order.ErrInvalidTransition):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Error: err.Error()}); encodeErr != nil {
		h.log.With(
			logger.NewField("error", encodeErr),
		).Error("encode JSON response")
	}
}
