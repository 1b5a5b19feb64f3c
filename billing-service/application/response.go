package application

import (
	"time"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/domain"
)

// BillResponse is the bill representation returned over HTTP. Reservation
// is a best-effort snapshot and may be absent when the reservation service
// could not be reached.
type BillResponse struct {
	ID            int64               `json:"id"`
	ReservationID int64               `json:"reservation_id"`
	TotalAmount   float64             `json:"total_amount"`
	PaymentStatus string              `json:"payment_status"`
	GeneratedAt   time.Time           `json:"generated_at"`
	Reservation   *domain.Reservation `json:"reservation,omitempty"`
}

func newBillResponse(bill *domain.Bill) *BillResponse {
	return &BillResponse{
		ID:            bill.ID.Int64(),
		ReservationID: bill.ReservationID.Int64(),
		TotalAmount:   bill.TotalAmount,
		PaymentStatus: string(bill.PaymentStatus),
		GeneratedAt:   bill.GeneratedAt,
	}
}
