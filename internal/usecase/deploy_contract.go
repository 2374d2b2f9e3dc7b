package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	// ContractPath is the contract source path without the .cairo extension
	ContractPath    string
	ConstructorArgs []domain.Felt
}

// DeployContractResult is the outcome of a deployment attempt
type DeployContractResult struct {
	ContractPath    string
	CacheKey        string
	ContractAddress domain.Felt
	// TransactionHash is zero when the address came from the cache
	TransactionHash domain.Felt
	Cached          bool
	Network         string
}

// DeployContract compiles, deploys and caches a contract address
type DeployContract struct {
	config   *config.RuntimeConfig
	cache    AddressCache
	compiler ContractCompiler
	client   StarknetClient
	sink     ProgressSink
	log      *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	cache AddressCache,
	compiler ContractCompiler,
	client StarknetClient,
	sink ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:   cfg,
		cache:    cache,
		compiler: compiler,
		client:   client,
		sink:     sink,
		log:      log.With("component", "DeployContract"),
	}
}

// Run executes the deployment, short-circuiting on a cache hit
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	contractPath := strings.TrimSuffix(params.ContractPath, ".cairo")
	if contractPath == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidContractPath)
	}

	key := domain.CacheKey(contractPath)
	result := &DeployContractResult{
		ContractPath: contractPath,
		CacheKey:     key,
		Network:      uc.networkName(),
	}

	if !uc.config.BypassCache {
		address, found, err := uc.cache.Lookup(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read address cache: %w", err)
		}
		if found {
			uc.log.Debug("cache hit", "key", key, "address", address)
			uc.sink.OnProgress(ctx, ProgressEvent{
				Stage:    StageCacheHit,
				Message:  fmt.Sprintf("Found local contract: %s", address),
				Metadata: address,
			})
			result.ContractAddress = address
			result.Cached = true
			return result, nil
		}
	} else {
		uc.log.Debug("address cache bypassed", "key", key)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageCompiling,
		Message: fmt.Sprintf("Compiling %s", contractPath),
		Spinner: true,
	})

	artifacts, err := uc.compiler.Compile(ctx, contractPath)
	if err != nil {
		return nil, err
	}

	compiled, err := uc.compiler.ReadArtifact(ctx, artifacts)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageSubmitting,
		Message: "Submitting deployment",
		Spinner: true,
	})

	deployment, deployErr := uc.client.DeployContract(ctx, compiled, params.ConstructorArgs)

	// The compiled artifact is intermediate; it goes regardless of the submission outcome
	if err := uc.compiler.RemoveArtifact(ctx, artifacts); err != nil {
		uc.log.Warn("failed to remove compiled artifact", "path", artifacts.CompiledPath, "error", err)
	}

	if deployErr != nil {
		return nil, fmt.Errorf("deployment submission failed: %w", deployErr)
	}
	if deployment == nil || deployment.TransactionHash.IsZero() {
		return nil, domain.ErrDeploymentFailed
	}
	result.TransactionHash = deployment.TransactionHash

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:    StageWaiting,
		Message:  fmt.Sprintf("Deployment initialized: %s, waiting for acceptance", deployment.TransactionHash),
		Spinner:  true,
		Metadata: deployment.TransactionHash,
	})

	if err := uc.client.WaitForTransaction(ctx, deployment.TransactionHash); err != nil {
		return nil, fmt.Errorf("waiting for deployment %s: %w", deployment.TransactionHash, err)
	}

	tx, err := uc.client.GetTransaction(ctx, deployment.TransactionHash)
	if err != nil {
		return nil, fmt.Errorf("fetching deployment %s: %w", deployment.TransactionHash, err)
	}

	address := tx.ContractAddress
	if address.IsZero() {
		address = deployment.ContractAddress
	}
	if address.IsZero() {
		return nil, fmt.Errorf("%w: no contract address for transaction %s", domain.ErrDeploymentFailed, deployment.TransactionHash)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageCaching,
		Message: "Caching contract address",
	})

	if err := uc.cache.Store(ctx, key, address); err != nil {
		return nil, fmt.Errorf("failed to cache address: %w", err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageCompleted,
		Message: "Deployment complete",
	})

	result.ContractAddress = address
	return result, nil
}

func (uc *DeployContract) networkName() string {
	if uc.config.Network == nil {
		return ""
	}
	return uc.config.Network.Name
}
