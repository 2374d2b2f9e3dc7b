package config

import (
	"time"

	"github.com/payday-labs/sndeploy/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	CacheFile   string

	// Context settings
	Network  *Network
	Compiler CompilerConfig

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration
	PollInterval   time.Duration

	// BypassCache skips address cache lookups (ACCOUNT_CACHE or --no-cache)
	BypassCache bool

	// ConfigSource is the project file that was loaded, empty when none
	ConfigSource string
}

// Network represents a StarkNet network the helper talks to
type Network struct {
	Name    string      `json:"name"`
	RPCURL  string      `json:"rpcUrl"`
	ChainID domain.Felt `json:"chainId"`
}

// CompilerConfig describes how contracts are compiled
type CompilerConfig struct {
	Command         string
	AccountContract bool
}
