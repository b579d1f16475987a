package rating_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"moveservice/internal/handlers/rest/dto"
	"moveservice/internal/service/booking"
	"moveservice/internal/service/rating"
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

	var ratingDTO dto.RatingCreateRequest
	err = json.NewDecoder(r.Body).Decode(&ratingDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record, err := h.service.RateBooking(r.Context(), rating.RateInput{
		ActorID:   actorID,
		BookingID: ratingDTO.BookingID,
		Score:     ratingDTO.Score,
		Feedback:  ratingDTO.Feedback,
	})
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrInvalidBookingID),
			errors.Is(err, rating.ErrInvalidActorID),
			errors.Is(err, rating.ErrInvalidScore):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rating.ErrNotAuthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, booking.ErrBookingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rating.ErrNotDelivered),
			errors.Is(err, rating.ErrAlreadyRated):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromRating(record)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
