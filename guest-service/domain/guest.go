package domain

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

var (
	ErrGuestNotFound = errors.New("guest not found")
	ErrInvalidGuest  = errors.New("invalid guest")
	ErrEmailTaken    = errors.New("email already registered")
)

// Guest represents a registered hotel guest
type Guest struct {
	ID         models.ID
	FullName   string
	Email      string
	Phone      string
	Address    string
	Timestamps models.Timestamps
}

// NewGuest creates a new guest record
func NewGuest(fullName, email, phone, address string) (*Guest, error) {
	if fullName == "" {
		return nil, errors.Wrap(ErrInvalidGuest, "full_name is required")
	}
	if !validEmail(email) {
		return nil, errors.Wrapf(ErrInvalidGuest, "email %q", email)
	}
	if phone == "" {
		return nil, errors.Wrap(ErrInvalidGuest, "phone is required")
	}

	return &Guest{
		FullName:   fullName,
		Email:      strings.ToLower(email),
		Phone:      phone,
		Address:    address,
		Timestamps: models.NewTimestamps(),
	}, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// GuestRepository persists guests
type GuestRepository interface {
	Save(ctx context.Context, guest *Guest) error
	Update(ctx context.Context, guest *Guest) error
	Delete(ctx context.Context, id models.ID) error
	FindByID(ctx context.Context, id models.ID) (*Guest, error)
	FindByEmail(ctx context.Context, email string) (*Guest, error)
	FindAll(ctx context.Context) ([]*Guest, error)
}
