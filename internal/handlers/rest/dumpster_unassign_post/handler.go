package dumpster_unassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/service/assignment"
	"rolloff/pkg/logger"
)

type dumpsterUnassignRequest struct {
	OrderID int64 `json:"order_id"`
}

type dumpsterUnassignResponse struct {
	DumpsterID   int64  `json:"dumpster_id"`
	DumpsterName string `json:"dumpster_name"`
	OrderID      int64  `json:"order_id"`
	Status       string `json:"status"`
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
	var dumpsterUnassignDTO dumpsterUnassignRequest
	err := json.NewDecoder(r.Body).Decode(&dumpsterUnassignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	releaseEntity, err := h.service.Unassign(r.Context(), dumpsterUnassignDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dumpsterUnassignResponse{
		DumpsterID:   releaseEntity.DumpsterID,
		DumpsterName: releaseEntity.DumpsterName,
		OrderID:      releaseEntity.OrderID,
		Status:       releaseEntity.Status,
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
