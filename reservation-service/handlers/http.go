package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/application"
	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/remote"
)

// ReservationHandlers contains reservation HTTP handlers
type ReservationHandlers struct {
	createReservation *application.CreateReservation
	getReservation    *application.GetReservation
	listReservations  *application.ListReservations
	updateReservation *application.UpdateReservation
	cancelReservation *application.CancelReservation
}

// NewReservationHandlers creates new reservation handlers
func NewReservationHandlers(
	createReservation *application.CreateReservation,
	getReservation *application.GetReservation,
	listReservations *application.ListReservations,
	updateReservation *application.UpdateReservation,
	cancelReservation *application.CancelReservation,
) *ReservationHandlers {
	return &ReservationHandlers{
		createReservation: createReservation,
		getReservation:    getReservation,
		listReservations:  listReservations,
		updateReservation: updateReservation,
		cancelReservation: cancelReservation,
	}
}

// CreateReservation handles reservation creation requests
func (h *ReservationHandlers) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateReservationCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.createReservation.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// GetReservation handles reservation retrieval requests
func (h *ReservationHandlers) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	response, err := h.getReservation.Execute(r.Context(), &application.GetReservationQuery{ReservationID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// ListReservations handles reservation listing requests
func (h *ReservationHandlers) ListReservations(w http.ResponseWriter, r *http.Request) {
	query := &application.ListReservationsQuery{}

	if raw := r.URL.Query().Get("guest_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid guest_id")
			return
		}
		query.GuestID = &id
	}
	if raw := r.URL.Query().Get("room_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid room_id")
			return
		}
		query.RoomID = &id
	}

	responses, err := h.listReservations.Execute(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses)
}

// UpdateReservation handles reservation update requests
func (h *ReservationHandlers) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var cmd application.UpdateReservationCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.ReservationID = id

	response, err := h.updateReservation.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// CancelReservation handles reservation cancellation requests
func (h *ReservationHandlers) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.cancelReservation.Execute(r.Context(), &application.CancelReservationCommand{ReservationID: id}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers reservation routes
func (h *ReservationHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", h.CreateReservation)
		r.Get("/", h.ListReservations)
		r.Get("/{id}", h.GetReservation)
		r.Patch("/{id}", h.UpdateReservation)
		r.Delete("/{id}", h.CancelReservation)
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeErrorMessage(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrReservationNotFound), errors.Is(err, domain.ErrRoomNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrRoomUnavailable):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidStay), errors.Is(err, domain.ErrInvalidReference):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, remote.ErrUnreachable):
		writeErrorMessage(w, http.StatusBadGateway, err.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, err.Error())
	}
}
