package usecase_test

import (
	"context"

	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/stretchr/testify/mock"
)

// MockAddressCache is a mock implementation of AddressCache
type MockAddressCache struct {
	mock.Mock
}

func (m *MockAddressCache) Lookup(ctx context.Context, key string) (domain.Felt, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.Felt), args.Bool(1), args.Error(2)
}

func (m *MockAddressCache) Store(ctx context.Context, key string, address domain.Felt) error {
	args := m.Called(ctx, key, address)
	return args.Error(0)
}

func (m *MockAddressCache) Entries(ctx context.Context) ([]domain.CachedAddress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CachedAddress), args.Error(1)
}

func (m *MockAddressCache) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockCompiler is a mock implementation of ContractCompiler
type MockCompiler struct {
	mock.Mock
}

func (m *MockCompiler) Compile(ctx context.Context, contractPath string) (*domain.CompilationArtifacts, error) {
	args := m.Called(ctx, contractPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompilationArtifacts), args.Error(1)
}

func (m *MockCompiler) ReadArtifact(ctx context.Context, artifacts *domain.CompilationArtifacts) (*domain.CompiledContract, error) {
	args := m.Called(ctx, artifacts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompiledContract), args.Error(1)
}

func (m *MockCompiler) RemoveArtifact(ctx context.Context, artifacts *domain.CompilationArtifacts) error {
	args := m.Called(ctx, artifacts)
	return args.Error(0)
}

// MockStarknetClient is a mock implementation of StarknetClient
type MockStarknetClient struct {
	mock.Mock
}

func (m *MockStarknetClient) DeployContract(ctx context.Context, contract *domain.CompiledContract, constructorArgs []domain.Felt) (*domain.DeploymentResult, error) {
	args := m.Called(ctx, contract, constructorArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeploymentResult), args.Error(1)
}

func (m *MockStarknetClient) WaitForTransaction(ctx context.Context, hash domain.Felt) error {
	args := m.Called(ctx, hash)
	return args.Error(0)
}

func (m *MockStarknetClient) GetTransactionStatus(ctx context.Context, hash domain.Felt) (domain.TransactionStatus, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).(domain.TransactionStatus), args.Error(1)
}

func (m *MockStarknetClient) GetTransaction(ctx context.Context, hash domain.Felt) (*domain.Transaction, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// MockHasher is a mock implementation of TransactionHasher
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) InvokeTransactionHash(address domain.Felt, calldata []domain.Felt) (domain.Felt, error) {
	args := m.Called(address, calldata)
	return args.Get(0).(domain.Felt), args.Error(1)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	args := m.Called(ctx, message)
	return args.Bool(0), args.Error(1)
}

// MockSelector is a mock implementation of CachedAddressSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectCachedAddress(ctx context.Context, entries []domain.CachedAddress, prompt string) (*domain.CachedAddress, error) {
	args := m.Called(ctx, entries, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedAddress), args.Error(1)
}

// recordingReporter records invocation callbacks in order
type recordingReporter struct {
	calls []string
	hash  domain.Felt
	final domain.TransactionStatus
}

func (r *recordingReporter) TransactionSubmitted(hash domain.Felt) {
	r.calls = append(r.calls, "submitted")
	r.hash = hash
}

func (r *recordingReporter) TransactionSettled(hash domain.Felt, status domain.TransactionStatus) {
	r.calls = append(r.calls, "settled")
	r.final = status
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  {}
func (m *MockProgressSink) Error(message string) {}

func (m *MockProgressSink) stages() []string {
	stages := make([]string, len(m.events))
	for i, e := range m.events {
		stages[i] = e.Stage
	}
	return stages
}
