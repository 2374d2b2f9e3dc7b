package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/payday-labs/sndeploy/internal/domain/config"
)

// FindProjectRoot walks up from the current directory looking for sndeploy.toml.
// Falls back to the current directory when no project file exists.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, config.ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// loadEnvFiles loads .env files from the project root without overriding the environment
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// LoadProjectFile reads sndeploy.toml from the project root.
// A missing file yields nil without error.
func LoadProjectFile(projectRoot string) (*config.ProjectFile, error) {
	path := filepath.Join(projectRoot, config.ProjectFileName)

	var pf config.ProjectFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", config.ProjectFileName, err)
	}

	for name, n := range pf.Networks {
		n.RPCURL = os.ExpandEnv(n.RPCURL)
		pf.Networks[name] = n
	}

	return &pf, nil
}
