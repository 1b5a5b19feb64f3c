package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/application"
	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/remote"
)

// BillHandlers contains bill HTTP handlers
type BillHandlers struct {
	generateBill     *application.GenerateBill
	getBill          *application.GetBill
	listBills        *application.ListBills
	updateBillStatus *application.UpdateBillStatus
}

// NewBillHandlers creates new bill handlers
func NewBillHandlers(
	generateBill *application.GenerateBill,
	getBill *application.GetBill,
	listBills *application.ListBills,
	updateBillStatus *application.UpdateBillStatus,
) *BillHandlers {
	return &BillHandlers{
		generateBill:     generateBill,
		getBill:          getBill,
		listBills:        listBills,
		updateBillStatus: updateBillStatus,
	}
}

// GenerateBill handles bill generation requests
func (h *BillHandlers) GenerateBill(w http.ResponseWriter, r *http.Request) {
	var cmd application.GenerateBillCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.generateBill.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// GetBill handles bill retrieval requests
func (h *BillHandlers) GetBill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	response, err := h.getBill.Execute(r.Context(), &application.GetBillQuery{BillID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// ListBills handles bill listing requests
func (h *BillHandlers) ListBills(w http.ResponseWriter, r *http.Request) {
	responses, err := h.listBills.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses)
}

// UpdateBillStatus handles payment status transition requests
func (h *BillHandlers) UpdateBillStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var cmd application.UpdateBillStatusCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd.BillID = id

	response, err := h.updateBillStatus.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers bill routes
func (h *BillHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/bills", func(r chi.Router) {
		r.Post("/", h.GenerateBill)
		r.Get("/", h.ListBills)
		r.Get("/{id}", h.GetBill)
		r.Put("/{id}/status", h.UpdateBillStatus)
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
	case errors.Is(err, domain.ErrBillNotFound), errors.Is(err, domain.ErrReservationNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidPaymentStatus), errors.Is(err, domain.ErrInvalidBill):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, remote.ErrUnreachable), errors.Is(err, domain.ErrRateUnavailable):
		writeErrorMessage(w, http.StatusBadGateway, err.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, err.Error())
	}
}
