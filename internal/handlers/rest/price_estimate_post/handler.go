package price_estimate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"moveservice/internal/entities"
	"moveservice/internal/handlers/rest/dto"
	"moveservice/internal/pkg/geodistance"
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
	var estimateDTO dto.PriceEstimateRequest
	err := json.NewDecoder(r.Body).Decode(&estimateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	distanceKm := geodistance.Resolve(
		estimateDTO.Distance,
		dto.ToCoordinate(estimateDTO.Origin),
		dto.ToCoordinate(estimateDTO.Destination),
	)

	traffic := entities.TrafficLevel(estimateDTO.Traffic)
	if traffic.Rank() < 0 {
		traffic = timeband.SuggestTraffic(estimateDTO.Time)
	}

	price, err := h.service.Estimate(r.Context(), pricing.Query{
		DistanceKm: distanceKm,
		Category:   entities.VehicleCategoryName(estimateDTO.Category),
		Traffic:    traffic,
		TimeOfDay:  estimateDTO.Time,
		IsPeak:     timeband.IsPeak(estimateDTO.Time),
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownCategory),
			errors.Is(err, pricing.ErrInvalidDistance):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pricing.ErrModelUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PriceEstimateResponse{
		Price:      price,
		DistanceKm: distanceKm,
		Traffic:    traffic.String(),
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
