package adapters

import (
	"github.com/google/wire"
	"github.com/payday-labs/sndeploy/internal/adapters/compiler"
	"github.com/payday-labs/sndeploy/internal/adapters/interactive"
	"github.com/payday-labs/sndeploy/internal/adapters/repository/accounts"
	"github.com/payday-labs/sndeploy/internal/adapters/starknet"
	"github.com/payday-labs/sndeploy/internal/usecase"
)

// RepositorySet provides file-backed storage
var RepositorySet = wire.NewSet(
	accounts.NewCacheStore,
	wire.Bind(new(usecase.AddressCache), new(*accounts.CacheStore)),
)

// CompilerSet provides the Cairo compiler
var CompilerSet = wire.NewSet(
	compiler.NewCairoCompiler,
	wire.Bind(new(usecase.ContractCompiler), new(*compiler.CairoCompiler)),
)

// StarknetSet provides network access and hashing
var StarknetSet = wire.NewSet(
	starknet.NewClient,
	wire.Bind(new(usecase.StarknetClient), new(*starknet.Client)),

	starknet.NewHasher,
	wire.Bind(new(usecase.TransactionHasher), new(*starknet.Hasher)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmAdapter)),

	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.CachedAddressSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	CompilerSet,
	StarknetSet,
	InteractiveSet,
)
