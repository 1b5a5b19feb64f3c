package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/domain"
)

// ListBills lists base bill records without enrichment
type ListBills struct {
	billRepository domain.BillRepository
}

// NewListBills creates a new ListBills use case
func NewListBills(billRepository domain.BillRepository) *ListBills {
	return &ListBills{billRepository: billRepository}
}

// Execute executes the list-bills query
func (uc *ListBills) Execute(ctx context.Context) ([]*BillResponse, error) {
	bills, err := uc.billRepository.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bills")
	}

	responses := make([]*BillResponse, len(bills))
	for i, bill := range bills {
		responses[i] = newBillResponse(bill)
	}

	return responses, nil
}
