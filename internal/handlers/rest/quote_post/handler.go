package quote_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/internal/service/quote"
	"rolloff/pkg/logger"
)

type quoteCreateRequest struct {
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Zip           *string `json:"zip"`

	ServiceDescription *string `json:"service_description"`

	DropoffDate *string `json:"dropoff_date"`
	DropoffTime *string `json:"dropoff_time"`
	PickupDate  *string `json:"pickup_date"`

	QuotedPriceCents *int64  `json:"quoted_price_cents"`
	Notes            *string `json:"notes"`
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
	var quoteCreateDTO quoteCreateRequest
	err := json.NewDecoder(r.Body).Decode(&quoteCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	quoteModifyEntity := entities.QuoteModify{
		CustomerName:       quoteCreateDTO.CustomerName,
		CustomerPhone:      quoteCreateDTO.CustomerPhone,
		CustomerEmail:      quoteCreateDTO.CustomerEmail,
		Address:            quoteCreateDTO.Address,
		City:               quoteCreateDTO.City,
		State:              quoteCreateDTO.State,
		Zip:                quoteCreateDTO.Zip,
		ServiceDescription: quoteCreateDTO.ServiceDescription,
		DropoffTime:        quoteCreateDTO.DropoffTime,
		QuotedPriceCents:   quoteCreateDTO.QuotedPriceCents,
		Notes:              quoteCreateDTO.Notes,
	}

	if quoteCreateDTO.DropoffDate != nil {
		dropoffDate, err := dto.ParseDate(*quoteCreateDTO.DropoffDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		quoteModifyEntity.DropoffDate = &dropoffDate
	}
	if quoteCreateDTO.PickupDate != nil {
		pickupDate, err := dto.ParseDate(*quoteCreateDTO.PickupDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		quoteModifyEntity.PickupDate = &pickupDate
	}

	quoteEntity, err := h.service.CreateQuote(r.Context(), quoteModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromQuote(quoteEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
