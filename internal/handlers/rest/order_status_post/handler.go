package order_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/internal/service/order"
	"rolloff/pkg/logger"
)

type orderStatusRequest struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
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
	var statusDTO orderStatusRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.ChangeStatus(r.Context(), statusDTO.OrderID, entities.OrderStatusType(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidStatus):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, err)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrDumpsterNotAssigned):
			h.writeError(w, http.StatusConflict, err)
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

// writeError carries the sentinel text so the operator sees which rule
// rejected the transition, not just a bare status code.
func (h *Handler) writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Error: err.Error()}); encodeErr != nil {
		h.log.With(
			logger.NewField("error", encodeErr),
		).Error("encode JSON response")
	}
}
