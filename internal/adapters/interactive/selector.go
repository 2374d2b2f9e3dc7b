package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectCachedAddress picks one entry from the address cache
func (s *SelectorAdapter) SelectCachedAddress(ctx context.Context, entries []domain.CachedAddress, prompt string) (*domain.CachedAddress, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no cached contracts to select from")
	}

	if len(entries) == 1 {
		return &entries[0], nil
	}

	options := formatEntryOptions(entries)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &entries[index], nil
}

// formatEntryOptions renders entries as "path/to/contract (0x...)"
func formatEntryOptions(entries []domain.CachedAddress) []string {
	options := make([]string, len(entries))
	for i, entry := range entries {
		name := color.New(color.FgWhite, color.Bold).Sprint(domain.ContractPathFromKey(entry.Key))
		address := color.New(color.FgBlue).Sprint(entry.Address.Hex())
		options[i] = fmt.Sprintf("%s (%s)", name, address)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.CachedAddressSelector = (*SelectorAdapter)(nil)
var _ usecase.Confirmer = (*ConfirmAdapter)(nil)
