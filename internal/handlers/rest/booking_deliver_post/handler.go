package booking_deliver_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"moveservice/internal/handlers/rest/dto"
	"moveservice/internal/service/booking"
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

	idStr := mux.Vars(r)["id"]
	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingEntity, err := h.service.Deliver(r.Context(), actorID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidBookingID),
			errors.Is(err, booking.ErrInvalidActorID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrPaymentNotSatisfied):
			w.WriteHeader(http.StatusPaymentRequired)
		case errors.Is(err, booking.ErrNotAuthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, booking.ErrBookingNotFound),
			errors.Is(err, booking.ErrActorNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromBooking(bookingEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
