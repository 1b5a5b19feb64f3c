package domain

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// RoomStatus represents the lifecycle state of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusReserved    RoomStatus = "reserved"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrInvalidRoomStatus = errors.New("invalid room status")
	ErrInvalidRoom       = errors.New("invalid room")
)

// NewRoomStatus parses a raw status string against the closed status set
func NewRoomStatus(raw string) (RoomStatus, error) {
	status := RoomStatus(raw)
	switch status {
	case RoomStatusAvailable, RoomStatusReserved, RoomStatusOccupied, RoomStatusMaintenance:
		return status, nil
	default:
		return "", errors.Wrapf(ErrInvalidRoomStatus, "status %q", raw)
	}
}

// Room represents a bookable hotel room
type Room struct {
	ID            models.ID
	Number        string
	Type          string
	PricePerNight float64
	Status        RoomStatus
	Timestamps    models.Timestamps
}

// NewRoom creates a new room in the available state
func NewRoom(number, roomType string, pricePerNight float64) (*Room, error) {
	if number == "" {
		return nil, errors.Wrap(ErrInvalidRoom, "number is required")
	}
	if roomType == "" {
		return nil, errors.Wrap(ErrInvalidRoom, "type is required")
	}
	if pricePerNight < 0 {
		return nil, errors.Wrap(ErrInvalidRoom, "price_per_night must not be negative")
	}

	return &Room{
		Number:        number,
		Type:          roomType,
		PricePerNight: pricePerNight,
		Status:        RoomStatusAvailable,
		Timestamps:    models.NewTimestamps(),
	}, nil
}

// Available reports whether the room can accept a new reservation
func (r *Room) Available() bool {
	return r.Status == RoomStatusAvailable
}

// SetStatus transitions the room to the given status
func (r *Room) SetStatus(status RoomStatus) {
	r.Status = status
	r.Timestamps = r.Timestamps.Update()
}

// RoomRepository persists rooms
type RoomRepository interface {
	Save(ctx context.Context, room *Room) error
	Update(ctx context.Context, room *Room) error
	FindByID(ctx context.Context, id models.ID) (*Room, error)
	FindAll(ctx context.Context) ([]*Room, error)
	FindByStatus(ctx context.Context, status RoomStatus) ([]*Room, error)
}
