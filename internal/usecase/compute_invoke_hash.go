package usecase

import (
	"fmt"

	"github.com/payday-labs/sndeploy/internal/domain"
)

// ComputeInvokeHashParams contains the inputs of a version 0 invoke hash
type ComputeInvokeHashParams struct {
	Address  domain.Felt
	Calldata []domain.Felt
}

// ComputeInvokeHash computes the transaction hash of an invocation
type ComputeInvokeHash struct {
	hasher TransactionHasher
}

// NewComputeInvokeHash creates a new ComputeInvokeHash use case
func NewComputeInvokeHash(hasher TransactionHasher) *ComputeInvokeHash {
	return &ComputeInvokeHash{hasher: hasher}
}

// Run returns the hash; it has no side effects
func (uc *ComputeInvokeHash) Run(params ComputeInvokeHashParams) (domain.Felt, error) {
	hash, err := uc.hasher.InvokeTransactionHash(params.Address, params.Calldata)
	if err != nil {
		return domain.Felt{}, fmt.Errorf("failed to compute invoke transaction hash: %w", err)
	}
	return hash, nil
}
