package infrastructure

import (
	"context"
	"fmt"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/remote"
)

// InventoryHTTPClient implements InventoryGateway against the room
// inventory service's HTTP API.
type InventoryHTTPClient struct {
	client *remote.Client
}

// NewInventoryHTTPClient creates an inventory client for the given base URL
func NewInventoryHTTPClient(baseURL string, opts ...remote.Option) *InventoryHTTPClient {
	return &InventoryHTTPClient{client: remote.NewClient(baseURL, opts...)}
}

// GetRoom fetches a room snapshot, returning (nil, nil) when absent
func (c *InventoryHTTPClient) GetRoom(ctx context.Context, id models.ID) (*domain.Room, error) {
	var room domain.Room
	found, err := c.client.Get(ctx, fmt.Sprintf("/rooms/%d", id.Int64()), &room)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &room, nil
}

// SetRoomStatus transitions a room's status and returns the updated room
func (c *InventoryHTTPClient) SetRoomStatus(ctx context.Context, id models.ID, status domain.RoomStatus) (*domain.Room, error) {
	body := struct {
		Status string `json:"status"`
	}{Status: string(status)}

	var room domain.Room
	if err := c.client.Put(ctx, fmt.Sprintf("/rooms/%d/status", id.Int64()), body, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// ListAvailableRooms fetches all rooms currently in available status
func (c *InventoryHTTPClient) ListAvailableRooms(ctx context.Context) ([]*domain.Room, error) {
	var rooms []*domain.Room
	if _, err := c.client.Get(ctx, "/rooms/available", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}
