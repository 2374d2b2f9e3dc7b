package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Output formats for cache listings
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// CacheRenderer renders address cache listings
type CacheRenderer struct {
	out    io.Writer
	format string
}

// NewCacheRenderer creates a new cache renderer
func NewCacheRenderer(out io.Writer, format string) *CacheRenderer {
	return &CacheRenderer{out: out, format: format}
}

type cacheEntryOutput struct {
	Contract string `json:"contract" yaml:"contract"`
	Key      string `json:"key" yaml:"key"`
	Address  string `json:"address" yaml:"address"`
}

// RenderList renders the cached addresses in the configured format
func (r *CacheRenderer) RenderList(result *usecase.CachedAddressList) error {
	entries := make([]cacheEntryOutput, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, cacheEntryOutput{
			Contract: domain.ContractPathFromKey(e.Key),
			Key:      e.Key,
			Address:  e.Address.Hex(),
		})
	}

	switch r.format {
	case FormatJSON:
		return writeJSON(r.out, entries)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(entries)
	case FormatTable, "":
	default:
		return fmt.Errorf("unknown output format %q (valid: table, json, yaml)", r.format)
	}

	if len(entries) == 0 {
		fmt.Fprintln(r.out, color.New(color.Faint).Sprintf("No cached contracts in %s", result.CacheFile))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"CONTRACT", "KEY", "ADDRESS"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})
	for _, e := range entries {
		t.AppendRow(table.Row{
			color.New(color.FgCyan, color.Bold).Sprint(e.Contract),
			e.Key,
			e.Address,
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\n%s\n", color.New(color.Faint).Sprintf("%d of %d cached contracts (%s)", len(entries), result.Total, result.CacheFile))
	return nil
}
