package app

import (
	"log/slog"

	"github.com/payday-labs/sndeploy/internal/domain/config"
	"github.com/payday-labs/sndeploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract         *usecase.DeployContract
	ComputeInvokeHash      *usecase.ComputeInvokeHash
	AwaitInvocation        *usecase.AwaitInvocation
	QueryTransactionStatus *usecase.QueryTransactionStatus
	ListCachedAddresses    *usecase.ListCachedAddresses
	ForgetCachedAddress    *usecase.ForgetCachedAddress
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployContract *usecase.DeployContract,
	computeInvokeHash *usecase.ComputeInvokeHash,
	awaitInvocation *usecase.AwaitInvocation,
	queryTransactionStatus *usecase.QueryTransactionStatus,
	listCachedAddresses *usecase.ListCachedAddresses,
	forgetCachedAddress *usecase.ForgetCachedAddress,
) (*App, error) {
	return &App{
		Config:                 cfg,
		Log:                    log,
		DeployContract:         deployContract,
		ComputeInvokeHash:      computeInvokeHash,
		AwaitInvocation:        awaitInvocation,
		QueryTransactionStatus: queryTransactionStatus,
		ListCachedAddresses:    listCachedAddresses,
		ForgetCachedAddress:    forgetCachedAddress,
	}, nil
}
