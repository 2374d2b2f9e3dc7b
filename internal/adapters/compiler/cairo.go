package compiler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
)

// SourceExtension is the Cairo source file extension
const SourceExtension = ".cairo"

// CairoCompiler runs starknet-compile against contract sources
type CairoCompiler struct {
	command         string
	accountContract bool
	projectRoot     string
	log             *slog.Logger
}

// NewCairoCompiler creates a compiler adapter from runtime configuration
func NewCairoCompiler(cfg *config.RuntimeConfig, log *slog.Logger) *CairoCompiler {
	return &CairoCompiler{
		command:         cfg.Compiler.Command,
		accountContract: cfg.Compiler.AccountContract,
		projectRoot:     cfg.ProjectRoot,
		log:             log.With("component", "CairoCompiler"),
	}
}

// ArtifactsFor returns the file layout for a contract path (without extension)
func ArtifactsFor(contractPath string) *domain.CompilationArtifacts {
	return &domain.CompilationArtifacts{
		SourcePath:   contractPath + SourceExtension,
		CompiledPath: contractPath + "_compiled.json",
		ABIPath:      contractPath + "_abi.json",
	}
}

// BuildArgs returns the compiler arguments for the artifacts
func (c *CairoCompiler) BuildArgs(artifacts *domain.CompilationArtifacts) []string {
	var args []string
	if c.accountContract {
		args = append(args, "--account_contract")
	}
	return append(args,
		artifacts.SourcePath,
		"--output", artifacts.CompiledPath,
		"--abi", artifacts.ABIPath,
	)
}

// Compile runs the compiler and fails when it exits non-zero
func (c *CairoCompiler) Compile(ctx context.Context, contractPath string) (*domain.CompilationArtifacts, error) {
	artifacts := ArtifactsFor(contractPath)
	args := c.BuildArgs(artifacts)

	start := time.Now()
	c.log.Debug("running compiler", "command", c.command, "args", args, "dir", c.projectRoot)

	cmd := exec.CommandContext(ctx, c.command, args...)
	cmd.Dir = c.projectRoot

	output, err := cmd.CombinedOutput()
	duration := time.Since(start)
	if err != nil {
		c.log.Error("compilation failed", "error", err, "output", string(output), "duration", duration)
		return nil, fmt.Errorf("%w: %s %s: %v\nOutput: %s",
			domain.ErrCompilationFailed, c.command, artifacts.SourcePath, err, strings.TrimSpace(string(output)))
	}

	c.log.Debug("compilation completed", "duration", duration)
	return artifacts, nil
}

// ReadArtifact reads the compiled artifact as text
func (c *CairoCompiler) ReadArtifact(ctx context.Context, artifacts *domain.CompilationArtifacts) (*domain.CompiledContract, error) {
	path := c.resolve(artifacts.CompiledPath)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compiled contract: %w", err)
	}
	return &domain.CompiledContract{
		Path:   artifacts.CompiledPath,
		Source: string(content),
	}, nil
}

// RemoveArtifact deletes the compiled artifact, keeping the ABI. Already absent is fine.
func (c *CairoCompiler) RemoveArtifact(ctx context.Context, artifacts *domain.CompilationArtifacts) error {
	err := os.Remove(c.resolve(artifacts.CompiledPath))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (c *CairoCompiler) resolve(path string) string {
	if filepath.IsAbs(path) || c.projectRoot == "" {
		return path
	}
	return filepath.Join(c.projectRoot, path)
}
