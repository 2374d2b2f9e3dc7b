package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/payday-labs/sndeploy/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// BypassCacheEnv forces cache bypass when set to any value
const BypassCacheEnv = "ACCOUNT_CACHE"

// DefaultCacheFile is the address cache file name inside the project root
const DefaultCacheFile = "account.json"

// DefaultCompiler is the Cairo compiler binary
const DefaultCompiler = "starknet-compile"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	loadEnvFiles(projectRoot)

	project, err := LoadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		PollInterval:   v.GetDuration("poll_interval"),
		BypassCache:    v.GetBool("no_cache") || bypassCacheFromEnv(),
		Compiler: config.CompilerConfig{
			Command:         v.GetString("compiler"),
			AccountContract: true,
		},
	}
	if project != nil {
		cfg.ConfigSource = config.ProjectFileName
	}

	// Cache file: flag/env > project file > default
	cacheFile := v.GetString("cache_file")
	if cacheFile == "" && project != nil {
		cacheFile = project.CacheFile
	}
	if cacheFile == "" {
		cacheFile = DefaultCacheFile
	}
	if !filepath.IsAbs(cacheFile) {
		cacheFile = filepath.Join(projectRoot, cacheFile)
	}
	cfg.CacheFile = cacheFile

	if project != nil && project.Compiler != nil {
		if cfg.Compiler.Command == "" {
			cfg.Compiler.Command = project.Compiler.Command
		}
		if project.Compiler.AccountContract != nil {
			cfg.Compiler.AccountContract = *project.Compiler.AccountContract
		}
	}
	if cfg.Compiler.Command == "" {
		cfg.Compiler.Command = DefaultCompiler
	}

	networkName := v.GetString("network")
	if networkName == "" && project != nil {
		networkName = project.Network
	}
	network, err := NewNetworkResolver(project).Resolve(networkName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}
	if rpcURL := v.GetString("rpc_url"); rpcURL != "" {
		network.RPCURL = rpcURL
	}
	cfg.Network = network

	return cfg, nil
}

func bypassCacheFromEnv() bool {
	_, set := os.LookupEnv(BypassCacheEnv)
	return set
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("SNDEPLOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "0s")
	v.SetDefault("poll_interval", "5s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
