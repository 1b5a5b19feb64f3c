package infrastructure

import (
	"context"
	"fmt"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/remote"
)

// DirectoryHTTPClient implements DirectoryGateway against the guest
// directory service's HTTP API.
type DirectoryHTTPClient struct {
	client *remote.Client
}

// NewDirectoryHTTPClient creates a directory client for the given base URL
func NewDirectoryHTTPClient(baseURL string, opts ...remote.Option) *DirectoryHTTPClient {
	return &DirectoryHTTPClient{client: remote.NewClient(baseURL, opts...)}
}

// GetGuest fetches a guest snapshot, returning (nil, nil) when absent
func (c *DirectoryHTTPClient) GetGuest(ctx context.Context, id models.ID) (*domain.Guest, error) {
	var guest domain.Guest
	found, err := c.client.Get(ctx, fmt.Sprintf("/guests/%d", id.Int64()), &guest)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &guest, nil
}
