package usecase

import (
	"context"

	"github.com/payday-labs/sndeploy/internal/domain"
)

// QueryTransactionStatus performs a single status lookup
type QueryTransactionStatus struct {
	client StarknetClient
}

// NewQueryTransactionStatus creates a new QueryTransactionStatus use case
func NewQueryTransactionStatus(client StarknetClient) *QueryTransactionStatus {
	return &QueryTransactionStatus{client: client}
}

// Run returns the current status without waiting
func (uc *QueryTransactionStatus) Run(ctx context.Context, hash domain.Felt) (domain.TransactionStatus, error) {
	return uc.client.GetTransactionStatus(ctx, hash)
}
