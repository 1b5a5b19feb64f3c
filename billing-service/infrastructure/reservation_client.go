package infrastructure

import (
	"context"
	"fmt"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/remote"
)

// ReservationHTTPClient implements ReservationGateway against the
// reservation service's HTTP API.
type ReservationHTTPClient struct {
	client *remote.Client
}

// NewReservationHTTPClient creates a reservation client for the given base URL
func NewReservationHTTPClient(baseURL string, opts ...remote.Option) *ReservationHTTPClient {
	return &ReservationHTTPClient{client: remote.NewClient(baseURL, opts...)}
}

// GetReservation fetches a reservation snapshot, returning (nil, nil) when absent
func (c *ReservationHTTPClient) GetReservation(ctx context.Context, id models.ID) (*domain.Reservation, error) {
	var reservation domain.Reservation
	found, err := c.client.Get(ctx, fmt.Sprintf("/reservations/%d", id.Int64()), &reservation)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &reservation, nil
}
