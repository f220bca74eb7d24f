package quote_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolloff/internal/entities"
	"rolloff/internal/handlers/rest/dto"
	"rolloff/internal/service/quote"
	"rolloff/pkg/logger"
)

type quoteUpdateRequest struct {
	ID int64 `json:"id"`

	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Zip           *string `json:"zip"`

	ServiceDescription *string `json:"service_description"`

	Status *string `json:"status"`

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
	var quoteUpdateDTO quoteUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&quoteUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	quoteModifyEntity := entities.QuoteModify{
		ID:                 &quoteUpdateDTO.ID,
		CustomerName:       quoteUpdateDTO.CustomerName,
		CustomerPhone:      quoteUpdateDTO.CustomerPhone,
		CustomerEmail:      quoteUpdateDTO.CustomerEmail,
		Address:            quoteUpdateDTO.Address,
		City:               quoteUpdateDTO.City,
		State:              quoteUpdateDTO.State,
		Zip:                quoteUpdateDTO.Zip,
		ServiceDescription: quoteUpdateDTO.ServiceDescription,
		DropoffTime:        quoteUpdateDTO.DropoffTime,
		QuotedPriceCents:   quoteUpdateDTO.QuotedPriceCents,
		Notes:              quoteUpdateDTO.Notes,
	}

	if quoteUpdateDTO.Status != nil {
		statusValue := entities.QuoteStatusType(*quoteUpdateDTO.Status)
		quoteModifyEntity.Status = &statusValue
	}
	if quoteUpdateDTO.DropoffDate != nil {
		dropoffDate, err := dto.ParseDate(*quoteUpdateDTO.DropoffDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		quoteModifyEntity.DropoffDate = &dropoffDate
	}
	if quoteUpdateDTO.PickupDate != nil {
		pickupDate, err := dto.ParseDate(*quoteUpdateDTO.PickupDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		quoteModifyEntity.PickupDate = &pickupDate
	}

	quoteEntity, err := h.service.UpdateQuote(r.Context(), quoteModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrInvalidQuoteID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, quote.ErrQuoteNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromQuote(quoteEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
