package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/payday-labs/sndeploy/internal/domain"
)

// AwaitInvocationResult is the settled state of an invocation
type AwaitInvocationResult struct {
	Hash     domain.Felt
	Status   domain.TransactionStatus
	Accepted bool
}

// AwaitInvocation reports an invocation hash, waits for it and reports the final status
type AwaitInvocation struct {
	client StarknetClient
	log    *slog.Logger
}

// NewAwaitInvocation creates a new AwaitInvocation use case
func NewAwaitInvocation(client StarknetClient, log *slog.Logger) *AwaitInvocation {
	return &AwaitInvocation{
		client: client,
		log:    log.With("component", "AwaitInvocation"),
	}
}

// Run blocks until the invocation settles. A rejected transaction is reported
// through the reporter and returned as a result, not as an error.
func (uc *AwaitInvocation) Run(ctx context.Context, invocation domain.Invocation, reporter InvocationReporter) (*AwaitInvocationResult, error) {
	reporter.TransactionSubmitted(invocation.Hash)

	if err := uc.client.WaitForTransaction(ctx, invocation.Hash); err != nil {
		var rejected domain.TransactionRejectedErr
		if !errors.As(err, &rejected) {
			return nil, fmt.Errorf("waiting for %s: %w", invocation.Hash, err)
		}
		uc.log.Debug("invocation rejected while waiting", "hash", invocation.Hash, "status", rejected.Status)
	}

	status, err := uc.client.GetTransactionStatus(ctx, invocation.Hash)
	if err != nil {
		return nil, fmt.Errorf("querying status of %s: %w", invocation.Hash, err)
	}

	reporter.TransactionSettled(invocation.Hash, status)

	return &AwaitInvocationResult{
		Hash:     invocation.Hash,
		Status:   status,
		Accepted: status.IsAccepted(),
	}, nil
}
