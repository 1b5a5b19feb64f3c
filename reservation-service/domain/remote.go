package domain

import (
	"context"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// RoomStatus mirrors the status set owned by the inventory service. The
// orchestrator treats it as a resource lock: only available rooms may be
// attached to a new reservation.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusReserved    RoomStatus = "reserved"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Room is a read-only snapshot of an inventory-service room
type Room struct {
	ID            models.ID  `json:"id"`
	Number        string     `json:"number"`
	Type          string     `json:"type"`
	PricePerNight float64    `json:"price_per_night"`
	Status        RoomStatus `json:"status"`
}

// Guest is a read-only snapshot of a directory-service guest
type Guest struct {
	ID       models.ID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
}

// InventoryGateway is the typed contract to the room inventory service.
// GetRoom returns (nil, nil) when the room does not exist; SetRoomStatus
// fails when it does not. Neither call retries internally.
type InventoryGateway interface {
	GetRoom(ctx context.Context, id models.ID) (*Room, error)
	SetRoomStatus(ctx context.Context, id models.ID, status RoomStatus) (*Room, error)
	ListAvailableRooms(ctx context.Context) ([]*Room, error)
}

// DirectoryGateway is the typed contract to the guest directory service.
// GetGuest returns (nil, nil) when the guest does not exist.
type DirectoryGateway interface {
	GetGuest(ctx context.Context, id models.ID) (*Guest, error)
}
