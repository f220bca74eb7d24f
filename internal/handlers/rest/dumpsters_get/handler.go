package dumpsters_get

import (
	"encoding/json"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	service    Service
	assignment AssignmentService
}

func New(log handlerLogger, service Service, assignment AssignmentService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		service:    service,
		assignment: assignment,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		dumpsterEntities []entities.Dumpster
		err              error
	)

	// ?assignable=true narrows the fleet to dumpsters the resolver would accept
	if r.URL.Query().Get("assignable") == "true" {
		dumpsterEntities, err = h.assignment.ListAssignable(r.Context())
	} else {
		dumpsterEntities, err = h.service.GetDumpsters(r.Context())
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	dumpsterDTOs := make([]dto.Dumpster, len(dumpsterEntities))
	for i := range dumpsterEntities {
		dumpsterDTOs[i] = dto.FromDumpster(&dumpsterEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dumpsterDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
