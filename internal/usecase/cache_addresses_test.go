package usecase_test

import (
	"context"
	"testing"

	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var cachedEntries = []domain.CachedAddress{
	{Key: "CONTRACTS/ACCOUNT_ADDRESS", Address: domain.FeltFromUint64(1)},
	{Key: "CONTRACTS/ERC20_ADDRESS", Address: domain.FeltFromUint64(2)},
	{Key: "CONTRACTS/VAULT_ADDRESS", Address: domain.FeltFromUint64(3)},
}

func TestListCachedAddresses(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{CacheFile: "/project/account.json"}

	t.Run("lists every entry without a filter", func(t *testing.T) {
		cache := new(MockAddressCache)
		cache.On("Entries", ctx).Return(cachedEntries, nil)

		result, err := usecase.NewListCachedAddresses(cfg, cache).Run(ctx, usecase.ListCachedAddressesParams{})

		require.NoError(t, err)
		assert.Equal(t, cachedEntries, result.Entries)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, "/project/account.json", result.CacheFile)
	})

	t.Run("fuzzy filter is case insensitive", func(t *testing.T) {
		cache := new(MockAddressCache)
		cache.On("Entries", ctx).Return(cachedEntries, nil)

		result, err := usecase.NewListCachedAddresses(cfg, cache).Run(ctx, usecase.ListCachedAddressesParams{Filter: "vlt"})

		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "CONTRACTS/VAULT_ADDRESS", result.Entries[0].Key)
		assert.Equal(t, 3, result.Total)
	})

	t.Run("no matches", func(t *testing.T) {
		cache := new(MockAddressCache)
		cache.On("Entries", ctx).Return(cachedEntries, nil)

		result, err := usecase.NewListCachedAddresses(cfg, cache).Run(ctx, usecase.ListCachedAddressesParams{Filter: "zzz"})

		require.NoError(t, err)
		assert.Empty(t, result.Entries)
	})
}

func TestForgetCachedAddress(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(nonInteractive bool) (*usecase.ForgetCachedAddress, *MockAddressCache, *MockConfirmer, *MockSelector) {
		cache := new(MockAddressCache)
		confirmer := new(MockConfirmer)
		selector := new(MockSelector)
		cfg := &config.RuntimeConfig{NonInteractive: nonInteractive}
		return usecase.NewForgetCachedAddress(cfg, cache, confirmer, selector), cache, confirmer, selector
	}

	t.Run("removes after confirmation", func(t *testing.T) {
		uc, cache, confirmer, _ := newUseCase(false)
		cache.On("Lookup", ctx, "CONTRACTS/VAULT_ADDRESS").Return(domain.FeltFromUint64(3), true, nil)
		confirmer.On("Confirm", ctx, mock.AnythingOfType("string")).Return(true, nil)
		cache.On("Remove", ctx, "CONTRACTS/VAULT_ADDRESS").Return(nil)

		result, err := uc.Run(ctx, usecase.ForgetCachedAddressParams{ContractPath: "contracts/vault.cairo"})

		require.NoError(t, err)
		assert.True(t, result.Removed)
		assert.Equal(t, domain.FeltFromUint64(3), result.Address)
		cache.AssertExpectations(t)
		confirmer.AssertExpectations(t)
	})

	t.Run("declined confirmation keeps the entry", func(t *testing.T) {
		uc, cache, confirmer, _ := newUseCase(false)
		cache.On("Lookup", ctx, "CONTRACTS/VAULT_ADDRESS").Return(domain.FeltFromUint64(3), true, nil)
		confirmer.On("Confirm", ctx, mock.AnythingOfType("string")).Return(false, nil)

		result, err := uc.Run(ctx, usecase.ForgetCachedAddressParams{ContractPath: "contracts/vault"})

		require.NoError(t, err)
		assert.True(t, result.Cancelled)
		assert.False(t, result.Removed)
		cache.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("force skips confirmation", func(t *testing.T) {
		uc, cache, confirmer, _ := newUseCase(false)
		cache.On("Lookup", ctx, "CONTRACTS/VAULT_ADDRESS").Return(domain.FeltFromUint64(3), true, nil)
		cache.On("Remove", ctx, "CONTRACTS/VAULT_ADDRESS").Return(nil)

		result, err := uc.Run(ctx, usecase.ForgetCachedAddressParams{ContractPath: "contracts/vault", Force: true})

		require.NoError(t, err)
		assert.True(t, result.Removed)
		confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})

	t.Run("unknown contract", func(t *testing.T) {
		uc, cache, _, _ := newUseCase(true)
		cache.On("Lookup", ctx, "CONTRACTS/NOPE_ADDRESS").Return(domain.Felt{}, false, nil)

		_, err := uc.Run(ctx, usecase.ForgetCachedAddressParams{ContractPath: "contracts/nope"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("selects an entry when no path is given", func(t *testing.T) {
		uc, cache, confirmer, selector := newUseCase(false)
		cache.On("Entries", ctx).Return(cachedEntries, nil)
		selector.On("SelectCachedAddress", ctx, cachedEntries, mock.AnythingOfType("string")).Return(&cachedEntries[1], nil)
		cache.On("Lookup", ctx, "CONTRACTS/ERC20_ADDRESS").Return(domain.FeltFromUint64(2), true, nil)
		confirmer.On("Confirm", ctx, mock.AnythingOfType("string")).Return(true, nil)
		cache.On("Remove", ctx, "CONTRACTS/ERC20_ADDRESS").Return(nil)

		result, err := uc.Run(ctx, usecase.ForgetCachedAddressParams{})

		require.NoError(t, err)
		assert.Equal(t, "CONTRACTS/ERC20_ADDRESS", result.CacheKey)
		selector.AssertExpectations(t)
	})

	t.Run("empty path in non-interactive mode", func(t *testing.T) {
		uc, _, _, selector := newUseCase(true)

		_, err := uc.Run(ctx, usecase.ForgetCachedAddressParams{})

		assert.ErrorIs(t, err, domain.ErrInvalidContractPath)
		selector.AssertNotCalled(t, "SelectCachedAddress", mock.Anything, mock.Anything, mock.Anything)
	})
}
