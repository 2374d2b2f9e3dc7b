//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/payday-labs/sndeploy/internal/adapters"
	"github.com/payday-labs/sndeploy/internal/config"
	"github.com/payday-labs/sndeploy/internal/logging"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewComputeInvokeHash,
		usecase.NewAwaitInvocation,
		usecase.NewQueryTransactionStatus,
		usecase.NewListCachedAddresses,
		usecase.NewForgetCachedAddress,

		// App
		NewApp,
	)
	return nil, nil
}
