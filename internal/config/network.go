package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
	"github.com/samber/lo"
)

// DefaultNetwork is the network used when none is configured
const DefaultNetwork = "testnet"

// builtinNetworks maps well-known network names to their chain id short strings
var builtinNetworks = map[string]string{
	"testnet": "SN_GOERLI",
	"goerli":  "SN_GOERLI",
	"sepolia": "SN_SEPOLIA",
	"mainnet": "SN_MAIN",
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Examples: testnet -> TESTNET_RPC_URL, my-devnet -> MY_DEVNET_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// ParseChainID accepts a short string (SN_GOERLI) or a 0x-prefixed felt
func ParseChainID(raw string) (domain.Felt, error) {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		return domain.ParseFelt(raw)
	}
	return domain.FeltFromShortString(raw)
}

// NetworkResolver resolves network names against the project file and built-ins
type NetworkResolver struct {
	project *config.ProjectFile
}

// NewNetworkResolver creates a resolver; project may be nil
func NewNetworkResolver(project *config.ProjectFile) *NetworkResolver {
	return &NetworkResolver{project: project}
}

// Resolve returns the network configuration for name.
// The RPC URL may be empty when nothing configures it; only network calls need it.
func (r *NetworkResolver) Resolve(name string) (*config.Network, error) {
	if name == "" {
		name = DefaultNetwork
	}

	var section config.NetworkSection
	var declared bool
	if r.project != nil {
		section, declared = r.project.Networks[name]
	}

	chainRaw := section.ChainID
	if chainRaw == "" {
		builtin, ok := builtinNetworks[name]
		if !ok && !declared {
			return nil, fmt.Errorf("network '%s' not found (known: %s)", name, strings.Join(r.Names(), ", "))
		}
		if !ok {
			return nil, fmt.Errorf("network '%s' has no chain_id in %s", name, config.ProjectFileName)
		}
		chainRaw = builtin
	}

	chainID, err := ParseChainID(chainRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid chain_id for network %s: %w", name, err)
	}

	rpcURL := section.RPCURL
	if rpcURL == "" {
		rpcURL = os.Getenv(GenerateEnvVarName(name))
	}

	return &config.Network{
		Name:    name,
		RPCURL:  rpcURL,
		ChainID: chainID,
	}, nil
}

// Names lists every resolvable network name, sorted
func (r *NetworkResolver) Names() []string {
	names := lo.Keys(builtinNetworks)
	if r.project != nil {
		names = append(names, lo.Keys(r.project.Networks)...)
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}
