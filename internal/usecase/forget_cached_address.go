package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
)

// ForgetCachedAddressParams contains parameters for removing a cache entry
type ForgetCachedAddressParams struct {
	// ContractPath selects the entry; when empty the user picks one
	ContractPath string
	// Force skips the confirmation prompt
	Force bool
}

// ForgetCachedAddressResult describes what was removed
type ForgetCachedAddressResult struct {
	CacheKey  string
	Address   domain.Felt
	Removed   bool
	Cancelled bool
}

// ForgetCachedAddress removes a contract from the address cache so the next deploy redeploys it
type ForgetCachedAddress struct {
	config    *config.RuntimeConfig
	cache     AddressCache
	confirmer Confirmer
	selector  CachedAddressSelector
}

// NewForgetCachedAddress creates a new ForgetCachedAddress use case
func NewForgetCachedAddress(
	cfg *config.RuntimeConfig,
	cache AddressCache,
	confirmer Confirmer,
	selector CachedAddressSelector,
) *ForgetCachedAddress {
	return &ForgetCachedAddress{
		config:    cfg,
		cache:     cache,
		confirmer: confirmer,
		selector:  selector,
	}
}

// Run removes the entry after confirmation
func (uc *ForgetCachedAddress) Run(ctx context.Context, params ForgetCachedAddressParams) (*ForgetCachedAddressResult, error) {
	key, err := uc.resolveKey(ctx, params.ContractPath)
	if err != nil {
		return nil, err
	}
	result := &ForgetCachedAddressResult{CacheKey: key}

	address, found, err := uc.cache.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrNotFound)
	}
	result.Address = address

	if !params.Force && !uc.config.NonInteractive {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Forget %s (%s)", key, address))
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Cancelled = true
			return result, nil
		}
	}

	if err := uc.cache.Remove(ctx, key); err != nil {
		return nil, err
	}
	result.Removed = true

	return result, nil
}

func (uc *ForgetCachedAddress) resolveKey(ctx context.Context, contractPath string) (string, error) {
	contractPath = strings.TrimSuffix(contractPath, ".cairo")
	if contractPath != "" {
		return domain.CacheKey(contractPath), nil
	}

	if uc.config.NonInteractive {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidContractPath)
	}

	entries, err := uc.cache.Entries(ctx)
	if err != nil {
		return "", err
	}
	selected, err := uc.selector.SelectCachedAddress(ctx, entries, "Select a contract to forget")
	if err != nil {
		return "", err
	}
	return selected.Key, nil
}
