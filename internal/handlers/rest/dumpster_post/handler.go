package dumpster_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/service/dumpster"
	"rolloff/pkg/logger"
)

type dumpsterCreateRequest struct {
	Name   string  `json:"name"`
	Status *string `json:"status"`
}

type dumpsterCreateResponse struct {
	ID int64 `json:"id"`
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
	var dumpsterCreateDTO dumpsterCreateRequest
	err := json.NewDecoder(r.Body).Decode(&dumpsterCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dumpsterModifyEntity := entities.DumpsterModify{
		Name: &dumpsterCreateDTO.Name,
	}
	if dumpsterCreateDTO.Status != nil {
		statusType := entities.DumpsterStatusType(*dumpsterCreateDTO.Status)
		dumpsterModifyEntity.Status = &statusType
	}

	id, err := h.service.CreateDumpster(r.Context(), dumpsterModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, dumpster.ErrMissingRequiredFields),
			errors.Is(err, dumpster.ErrInvalidName),
			errors.Is(err, dumpster.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dumpster.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dumpsterCreateResponse{
		ID: id,
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
