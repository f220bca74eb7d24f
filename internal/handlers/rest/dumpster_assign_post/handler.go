package dumpster_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"rolloff/internal/service/assignment"
	"rolloff/pkg/logger"
)

type dumpsterAssignRequest struct {
	OrderID    int64 `json:"order_id"`
	DumpsterID int64 `json:"dumpster_id"`
}

type dumpsterAssignResponse struct {
	DumpsterID   int64     `json:"dumpster_id"`
	DumpsterName string    `json:"dumpster_name"`
	OrderID      int64     `json:"order_id"`
	Address      string    `json:"address"`
	AssignedAt   time.Time `json:"assigned_at"`
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
	var dumpsterAssignDTO dumpsterAssignRequest
	err := json.NewDecoder(r.Body).Decode(&dumpsterAssignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.Assign(r.Context(), dumpsterAssignDTO.OrderID, dumpsterAssignDTO.DumpsterID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidDumpsterID),
			errors.Is(err, assignment.ErrHomeYardNotAssignable):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrDumpsterNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrDumpsterUnavailable),
			errors.Is(err, assignment.ErrOrderAlreadyHasDumpster),
			errors.Is(err, assignment.ErrOrderClosed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dumpsterAssignResponse{
		DumpsterID:   assignmentEntity.DumpsterID,
		DumpsterName: assignmentEntity.DumpsterName,
		OrderID:      assignmentEntity.OrderID,
		Address:      assignmentEntity.Address,
		AssignedAt:   assignmentEntity.AssignedAt,
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
