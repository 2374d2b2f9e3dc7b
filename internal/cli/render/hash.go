package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/payday-labs/sndeploy/internal/domain"
)

// HashRenderer renders computed transaction hashes
type HashRenderer struct {
	out  io.Writer
	json bool
}

// NewHashRenderer creates a new hash renderer
func NewHashRenderer(out io.Writer, jsonOutput bool) *HashRenderer {
	return &HashRenderer{out: out, json: jsonOutput}
}

// RenderInvokeHash prints the hash of an invocation of address
func (r *HashRenderer) RenderInvokeHash(address domain.Felt, calldata []domain.Felt, hash domain.Felt) error {
	if r.json {
		return writeJSON(r.out, map[string]interface{}{
			"address":  address,
			"calldata": calldata,
			"hash":     hash,
		})
	}
	_, err := fmt.Fprintln(r.out, color.New(color.FgMagenta).Sprintf("Transaction Hash: %s", hash))
	return err
}
