package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/application"
	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/domain"
)

// GuestHandlers contains guest HTTP handlers
type GuestHandlers struct {
	registerGuest *application.RegisterGuest
	getGuest      *application.GetGuest
	listGuests    *application.ListGuests
	updateGuest   *application.UpdateGuest
	deleteGuest   *application.DeleteGuest
}

// NewGuestHandlers creates new guest handlers
func NewGuestHandlers(
	registerGuest *application.RegisterGuest,
	getGuest *application.GetGuest,
	listGuests *application.ListGuests,
	updateGuest *application.UpdateGuest,
	deleteGuest *application.DeleteGuest,
) *GuestHandlers {
	return &GuestHandlers{
		registerGuest: registerGuest,
		getGuest:      getGuest,
		listGuests:    listGuests,
		updateGuest:   updateGuest,
		deleteGuest:   deleteGuest,
	}
}

// RegisterGuest handles guest registration requests
func (h *GuestHandlers) RegisterGuest(w http.ResponseWriter, r *http.Request) {
	var cmd application.RegisterGuestCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.registerGuest.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// GetGuest handles guest retrieval requests
func (h *GuestHandlers) GetGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	response, err := h.getGuest.Execute(r.Context(), &application.GetGuestQuery{GuestID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// ListGuests handles guest listing requests
func (h *GuestHandlers) ListGuests(w http.ResponseWriter, r *http.Request) {
	responses, err := h.listGuests.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses)
}

// UpdateGuest handles partial guest update requests
func (h *GuestHandlers) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var cmd application.UpdateGuestCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.GuestID = id

	response, err := h.updateGuest.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// DeleteGuest handles guest deletion requests
func (h *GuestHandlers) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteGuest.Execute(r.Context(), &application.DeleteGuestCommand{GuestID: id}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers guest routes
func (h *GuestHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/guests", func(r chi.Router) {
		r.Post("/", h.RegisterGuest)
		r.Get("/", h.ListGuests)
		r.Get("/{id}", h.GetGuest)
		r.Patch("/{id}", h.UpdateGuest)
		r.Delete("/{id}", h.DeleteGuest)
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
	case errors.Is(err, domain.ErrGuestNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidGuest):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, err.Error())
	}
}
