package config

// ProjectFileName is the project configuration file looked up from the working directory
const ProjectFileName = "sndeploy.toml"

// ProjectFile mirrors the sndeploy.toml layout
type ProjectFile struct {
	CacheFile string                    `toml:"cache_file"`
	Network   string                    `toml:"network"`
	Compiler  *CompilerSection          `toml:"compiler"`
	Networks  map[string]NetworkSection `toml:"networks"`
}

// CompilerSection is the [compiler] table
type CompilerSection struct {
	Command         string `toml:"command"`
	AccountContract *bool  `toml:"account_contract"`
}

// NetworkSection is a [networks.<name>] table
type NetworkSection struct {
	RPCURL string `toml:"rpc_url"`
	// ChainID is either a short string (SN_GOERLI) or a 0x-prefixed felt
	ChainID string `toml:"chain_id"`
}
