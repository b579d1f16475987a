package price_compare_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"moveservice/internal/entities"
	"moveservice/internal/handlers/rest/dto"
	"moveservice/internal/pkg/timeband"
	"moveservice/internal/service/pricing"
	"moveservice/pkg/logger"
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
	var compareDTO dto.PriceCompareRequest
	err := json.NewDecoder(r.Body).Decode(&compareDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	traffic := entities.TrafficLevel(compareDTO.Traffic)
	if traffic.Rank() < 0 {
		traffic = timeband.SuggestTraffic(compareDTO.Time)
	}

	prices, err := h.service.EstimateSeries(r.Context(), compareDTO.Distances, pricing.Query{
		Category:  entities.VehicleCategoryName(compareDTO.Category),
		Traffic:   traffic,
		TimeOfDay: compareDTO.Time,
		IsPeak:    timeband.IsPeak(compareDTO.Time),
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownCategory),
			errors.Is(err, pricing.ErrInvalidDistance),
			errors.Is(err, pricing.ErrEmptySeries):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pricing.ErrModelUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// Сравнительная серия отдается монотонной по дистанции.
	response := dto.PriceCompareResponse{
		Prices: pricing.NormalizeRunningMax(prices),
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
