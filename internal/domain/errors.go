package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidFelt is returned when a value cannot be represented as a field element
	ErrInvalidFelt = errors.New("invalid felt")

	// ErrDeploymentFailed is returned when the network accepts no deployment transaction
	ErrDeploymentFailed = errors.New("failed to deploy contract")

	// ErrCompilationFailed is returned when the contract compiler exits with an error
	ErrCompilationFailed = errors.New("compilation failed")

	// ErrTransactionRejected is returned when a transaction ends in a rejected state
	ErrTransactionRejected = errors.New("transaction rejected")

	// ErrCacheCorrupted is returned when the address cache file cannot be decoded
	ErrCacheCorrupted = errors.New("address cache corrupted")

	// ErrInvalidContractPath is returned for empty or malformed contract paths
	ErrInvalidContractPath = errors.New("invalid contract path")
)

// TransactionRejectedErr carries the final status of a rejected transaction
type TransactionRejectedErr struct {
	Hash   Felt
	Status TransactionStatus
	Reason string
}

func (e TransactionRejectedErr) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("transaction %s %s: %s", e.Hash, e.Status, e.Reason)
	}
	return fmt.Sprintf("transaction %s %s", e.Hash, e.Status)
}

func (e TransactionRejectedErr) Unwrap() error {
	return ErrTransactionRejected
}
