package usecase

import (
	"context"

	"github.com/payday-labs/sndeploy/internal/domain"
)

// AddressCache persists deployed contract addresses keyed by cache key
type AddressCache interface {
	// Lookup returns the cached address and whether the key was present.
	// A missing or empty cache file is a miss, not an error.
	Lookup(ctx context.Context, key string) (domain.Felt, bool, error)
	// Store writes the address under key, keeping every other entry
	Store(ctx context.Context, key string, address domain.Felt) error
	// Entries returns all cached addresses sorted by key
	Entries(ctx context.Context) ([]domain.CachedAddress, error)
	// Remove deletes key, returning domain.ErrNotFound when absent
	Remove(ctx context.Context, key string) error
}

// ContractCompiler turns contract sources into deployable artifacts
type ContractCompiler interface {
	Compile(ctx context.Context, contractPath string) (*domain.CompilationArtifacts, error)
	ReadArtifact(ctx context.Context, artifacts *domain.CompilationArtifacts) (*domain.CompiledContract, error)
	RemoveArtifact(ctx context.Context, artifacts *domain.CompilationArtifacts) error
}

// StarknetClient is the network client used to deploy and track transactions
type StarknetClient interface {
	DeployContract(ctx context.Context, contract *domain.CompiledContract, constructorArgs []domain.Felt) (*domain.DeploymentResult, error)
	WaitForTransaction(ctx context.Context, hash domain.Felt) error
	GetTransactionStatus(ctx context.Context, hash domain.Felt) (domain.TransactionStatus, error)
	GetTransaction(ctx context.Context, hash domain.Felt) (*domain.Transaction, error)
}

// TransactionHasher computes canonical transaction hashes
type TransactionHasher interface {
	InvokeTransactionHash(address domain.Felt, calldata []domain.Felt) (domain.Felt, error)
}

// InvocationReporter is notified while an invocation settles
type InvocationReporter interface {
	TransactionSubmitted(hash domain.Felt)
	TransactionSettled(hash domain.Felt, status domain.TransactionStatus)
}

// Confirmer asks the user to confirm destructive actions
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// CachedAddressSelector lets the user pick a cache entry
type CachedAddressSelector interface {
	SelectCachedAddress(ctx context.Context, entries []domain.CachedAddress, prompt string) (*domain.CachedAddress, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Message  string
	Spinner  bool
	Metadata interface{}
}

// Deployment progress stages
const (
	StageCacheHit   = "cache-hit"
	StageCompiling  = "compiling"
	StageSubmitting = "submitting"
	StageWaiting    = "waiting"
	StageCaching    = "caching"
	StageCompleted  = "completed"
)

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
