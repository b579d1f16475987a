package booking_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"moveservice/internal/entities"
	"moveservice/internal/handlers/rest/dto"
	"moveservice/internal/service/booking"
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
	actorID, err := strconv.ParseInt(r.Header.Get("X-Actor-ID"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var createDTO dto.BookingCreateRequest
	err = json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingEntity, err := h.service.CreateBooking(r.Context(), booking.CreateInput{
		SenderID:      actorID,
		Origin:        createDTO.Origin,
		Destination:   createDTO.Destination,
		OriginCoord:   dto.ToCoordinate(createDTO.OriginCoord),
		DestCoord:     dto.ToCoordinate(createDTO.DestCoord),
		DistanceText:  createDTO.Distance,
		ScheduledDate: createDTO.ScheduledDate,
		ScheduledTime: createDTO.ScheduledTime,
		Category:      entities.VehicleCategoryName(createDTO.Category),
		Traffic:       entities.TrafficLevel(createDTO.Traffic),
		PaymentMethod: entities.PaymentMethod(createDTO.PaymentMethod),
		PaymentDue:    entities.PaymentDuePoint(createDTO.PaymentDue),
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingRequiredFields),
			errors.Is(err, booking.ErrInvalidActorID),
			errors.Is(err, booking.ErrInvalidPlace),
			errors.Is(err, booking.ErrUnknownCategory),
			errors.Is(err, booking.ErrInvalidPaymentMethod),
			errors.Is(err, booking.ErrInvalidPaymentDue),
			errors.Is(err, pricing.ErrInvalidDistance):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrActorNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, pricing.ErrModelUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromBooking(bookingEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
