package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rafifdzaky27/tubes-iae-pria/room-service/application"
	"github.com/rafifdzaky27/tubes-iae-pria/room-service/domain"
)

// RoomHandlers contains room HTTP handlers
type RoomHandlers struct {
	createRoom    *application.CreateRoom
	getRoom       *application.GetRoom
	listRooms     *application.ListRooms
	updateRoom    *application.UpdateRoom
	setRoomStatus *application.SetRoomStatus
}

// NewRoomHandlers creates new room handlers
func NewRoomHandlers(
	createRoom *application.CreateRoom,
	getRoom *application.GetRoom,
	listRooms *application.ListRooms,
	updateRoom *application.UpdateRoom,
	setRoomStatus *application.SetRoomStatus,
) *RoomHandlers {
	return &RoomHandlers{
		createRoom:    createRoom,
		getRoom:       getRoom,
		listRooms:     listRooms,
		updateRoom:    updateRoom,
		setRoomStatus: setRoomStatus,
	}
}

// CreateRoom handles room creation requests
func (h *RoomHandlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateRoomCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.createRoom.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// GetRoom handles room retrieval requests
func (h *RoomHandlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	response, err := h.getRoom.Execute(r.Context(), &application.GetRoomQuery{RoomID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// ListRooms handles room listing requests
func (h *RoomHandlers) ListRooms(w http.ResponseWriter, r *http.Request) {
	query := &application.ListRoomsQuery{Status: r.URL.Query().Get("status")}

	responses, err := h.listRooms.Execute(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses)
}

// ListAvailableRooms handles availability listing requests
func (h *RoomHandlers) ListAvailableRooms(w http.ResponseWriter, r *http.Request) {
	query := &application.ListRoomsQuery{Status: string(domain.RoomStatusAvailable)}

	responses, err := h.listRooms.Execute(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses)
}

// UpdateRoom handles partial room update requests
func (h *RoomHandlers) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var cmd application.UpdateRoomCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.RoomID = id

	response, err := h.updateRoom.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// SetRoomStatus handles room status transition requests
func (h *RoomHandlers) SetRoomStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var cmd application.SetRoomStatusCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.RoomID = id

	response, err := h.setRoomStatus.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers room routes
func (h *RoomHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", h.CreateRoom)
		r.Get("/", h.ListRooms)
		r.Get("/available", h.ListAvailableRooms)
		r.Get("/{id}", h.GetRoom)
		r.Patch("/{id}", h.UpdateRoom)
		r.Put("/{id}/status", h.SetRoomStatus)
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
	case errors.Is(err, domain.ErrRoomNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidRoomStatus), errors.Is(err, domain.ErrInvalidRoom):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, err.Error())
	}
}
