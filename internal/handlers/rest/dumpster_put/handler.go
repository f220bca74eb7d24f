package dumpster_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/internal/service/dumpster"
	"rolloff/pkg/logger"
)

type dumpsterUpdateRequest struct {
	ID     int64   `json:"id"`
	Name   *string `json:"name"`
	Status *string `json:"status"`
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
	var dumpsterUpdateDTO dumpsterUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&dumpsterUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dumpsterModifyEntity := entities.DumpsterModify{
		ID:   &dumpsterUpdateDTO.ID,
		Name: dumpsterUpdateDTO.Name,
	}
	if dumpsterUpdateDTO.Status != nil {
		statusType := entities.DumpsterStatusType(*dumpsterUpdateDTO.Status)
		dumpsterModifyEntity.Status = &statusType
	}

	dumpsterEntity, err := h.service.UpdateDumpster(r.Context(), dumpsterModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, dumpster.ErrInvalidDumpsterID),
			errors.Is(err, dumpster.ErrInvalidName),
			errors.Is(err, dumpster.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dumpster.ErrDumpsterNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dumpster.ErrDumpsterInUse),
			errors.Is(err, dumpster.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromDumpster(dumpsterEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
