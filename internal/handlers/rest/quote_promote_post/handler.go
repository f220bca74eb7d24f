package quote_promote_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/internal/service/quote"
	"rolloff/pkg/logger"
)

type quotePromoteRequest struct {
	QuoteID int64 `json:"quote_id"`

	// unsaved admin edits, applied over the stored quote
	CustomerName       *string `json:"customer_name"`
	CustomerPhone      *string `json:"customer_phone"`
	CustomerEmail      *string `json:"customer_email"`
	Address            *string `json:"address"`
	City               *string `json:"city"`
	State              *string `json:"state"`
	Zip                *string `json:"zip"`
	ServiceDescription *string `json:"service_description"`
	DropoffDate        *string `json:"dropoff_date"`
	DropoffTime        *string `json:"dropoff_time"`
	PickupDate         *string `json:"pickup_date"`
	QuotedPriceCents   *int64  `json:"quoted_price_cents"`
	AssignedTo         *string `json:"assigned_to"`
	Notes              *string `json:"notes"`
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
	var promoteDTO quotePromoteRequest
	err := json.NewDecoder(r.Body).Decode(&promoteDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	overrides := entities.QuoteOverrides{
		CustomerName:       promoteDTO.CustomerName,
		CustomerPhone:      promoteDTO.CustomerPhone,
		CustomerEmail:      promoteDTO.CustomerEmail,
		Address:            promoteDTO.Address,
		City:               promoteDTO.City,
		State:              promoteDTO.State,
		Zip:                promoteDTO.Zip,
		ServiceDescription: promoteDTO.ServiceDescription,
		DropoffTime:        promoteDTO.DropoffTime,
		QuotedPriceCents:   promoteDTO.QuotedPriceCents,
		AssignedTo:         promoteDTO.AssignedTo,
		Notes:              promoteDTO.Notes,
	}

	if promoteDTO.DropoffDate != nil {
		dropoffDate, err := dto.ParseDate(*promoteDTO.DropoffDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		overrides.DropoffDate = &dropoffDate
	}
	if promoteDTO.PickupDate != nil {
		pickupDate, err := dto.ParseDate(*promoteDTO.PickupDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		overrides.PickupDate = &pickupDate
	}

	orderEntity, err := h.service.Promote(r.Context(), promoteDTO.QuoteID, overrides)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrInvalidQuoteID),
			errors.Is(err, quote.ErrMissingDropoffDate),
			errors.Is(err, quote.ErrMissingDropoffTime):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, quote.ErrQuoteNotFound):
			h.writeError(w, http.StatusNotFound, err)
		case errors.Is(err, quote.ErrQuoteAlreadyAccepted):
			h.writeError(w, http.StatusConflict, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// writeError includes the sentinel text so the admin UI can tell the operator
// which field blocked the promotion.
func (h *Handler) writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Error: err.Error()}); encodeErr != nil {
		h.log.With(
			logger.NewField("error", encodeErr),
		).Error("encode JSON response")
	}
}
