package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/internal/service/order"
	"rolloff/pkg/logger"
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
	var status *entities.OrderStatusType
	if raw := r.URL.Query().Get("status"); raw != "" {
		statusValue := entities.OrderStatusType(raw)
		status = &statusValue
	}

	orderEntities, err := h.service.GetOrders(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i := range orderEntities {
		orderDTOs[i] = dto.FromOrder(&orderEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
