package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/payday-labs/sndeploy/internal/usecase"
)

// DeployRenderer renders deployment results
type DeployRenderer struct {
	out  io.Writer
	json bool
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, jsonOutput bool) *DeployRenderer {
	return &DeployRenderer{out: out, json: jsonOutput}
}

type deployJSON struct {
	Contract        string `json:"contract"`
	CacheKey        string `json:"cacheKey"`
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash,omitempty"`
	Cached          bool   `json:"cached"`
	Network         string `json:"network,omitempty"`
}

// RenderDeployment renders the result of DeployContract
func (r *DeployRenderer) RenderDeployment(result *usecase.DeployContractResult) error {
	if r.json {
		out := deployJSON{
			Contract: result.ContractPath,
			CacheKey: result.CacheKey,
			Address:  result.ContractAddress.Hex(),
			Cached:   result.Cached,
			Network:  result.Network,
		}
		if !result.TransactionHash.IsZero() {
			out.TransactionHash = result.TransactionHash.Hex()
		}
		return writeJSON(r.out, out)
	}

	magenta := color.New(color.FgMagenta)
	if result.Cached {
		magenta.Fprintf(r.out, "Found local contract: %s\n\n", result.ContractAddress)
		return nil
	}

	magenta.Fprintf(r.out, "Deployment Initialized: %s\n", result.TransactionHash)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s deployed at %s", result.ContractPath, result.ContractAddress)))
	magenta.Fprintf(r.out, "\tcached as %s\n\n", result.CacheKey)
	return nil
}
