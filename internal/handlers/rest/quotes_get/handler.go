package quotes_get

import (
	"encoding/json"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/handlers/rest/dto"
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
	var status *entities.QuoteStatusType
	if raw := r.URL.Query().Get("status"); raw != "" {
		statusValue := entities.QuoteStatusType(raw)
		status = &statusValue
	}

	quoteEntities, err := h.service.GetQuotes(r.Context(), status)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	quoteDTOs := make([]dto.Quote, len(quoteEntities))
	for i := range quoteEntities {
		quoteDTOs[i] = dto.FromQuote(&quoteEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(quoteDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
