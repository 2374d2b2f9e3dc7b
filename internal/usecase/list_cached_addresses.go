package usecase

import (
	"context"
	"strings"

	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// ListCachedAddressesParams contains parameters for listing the cache
type ListCachedAddressesParams struct {
	// Filter is a fuzzy pattern matched against cache keys
	Filter string
}

// CachedAddressList is the result of listing the cache
type CachedAddressList struct {
	Entries   []domain.CachedAddress
	CacheFile string
	Total     int
}

// ListCachedAddresses lists addresses stored in the cache
type ListCachedAddresses struct {
	config *config.RuntimeConfig
	cache  AddressCache
}

// NewListCachedAddresses creates a new ListCachedAddresses use case
func NewListCachedAddresses(cfg *config.RuntimeConfig, cache AddressCache) *ListCachedAddresses {
	return &ListCachedAddresses{config: cfg, cache: cache}
}

// Run returns all entries, filtered when a pattern is given.
// Fuzzy matches are ordered by score, unfiltered entries by key.
func (uc *ListCachedAddresses) Run(ctx context.Context, params ListCachedAddressesParams) (*CachedAddressList, error) {
	entries, err := uc.cache.Entries(ctx)
	if err != nil {
		return nil, err
	}

	result := &CachedAddressList{
		CacheFile: uc.config.CacheFile,
		Total:     len(entries),
	}

	pattern := strings.TrimSpace(params.Filter)
	if pattern == "" {
		result.Entries = entries
		return result, nil
	}

	keys := lo.Map(entries, func(e domain.CachedAddress, _ int) string { return e.Key })
	matches := fuzzy.Find(strings.ToUpper(pattern), keys)
	result.Entries = lo.Map(matches, func(m fuzzy.Match, _ int) domain.CachedAddress {
		return entries[m.Index]
	})

	return result, nil
}
