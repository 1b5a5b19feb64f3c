package domain

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// PaymentStatus represents the payment state of a bill
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

var (
	ErrBillNotFound         = errors.New("bill not found")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidBill          = errors.New("invalid bill")
	ErrRateUnavailable      = errors.New("room rate unavailable")
)

// NewPaymentStatus parses a raw status string against the closed status set
func NewPaymentStatus(raw string) (PaymentStatus, error) {
	status := PaymentStatus(raw)
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled:
		return status, nil
	default:
		return "", errors.Wrapf(ErrInvalidPaymentStatus, "status %q", raw)
	}
}

// Bill represents the charge generated for a reservation's stay
type Bill struct {
	ID            models.ID
	ReservationID models.ID
	TotalAmount   float64
	PaymentStatus PaymentStatus
	GeneratedAt   time.Time
}

// NewBill creates a pending bill for a reservation
func NewBill(reservationID models.ID, totalAmount float64) (*Bill, error) {
	if reservationID.IsZero() {
		return nil, errors.Wrap(ErrInvalidBill, "reservation_id is required")
	}
	if totalAmount < 0 {
		return nil, errors.Wrap(ErrInvalidBill, "total_amount must not be negative")
	}

	return &Bill{
		ReservationID: reservationID,
		TotalAmount:   totalAmount,
		PaymentStatus: PaymentStatusPending,
		GeneratedAt:   time.Now(),
	}, nil
}

// SetPaymentStatus transitions the bill to the given payment status
func (b *Bill) SetPaymentStatus(status PaymentStatus) {
	b.PaymentStatus = status
}

// BillRepository persists bills
type BillRepository interface {
	Save(ctx context.Context, bill *Bill) error
	Update(ctx context.Context, bill *Bill) error
	FindByID(ctx context.Context, id models.ID) (*Bill, error)
	FindByReservationID(ctx context.Context, reservationID models.ID) (*Bill, error)
	FindAll(ctx context.Context) ([]*Bill, error)
}
