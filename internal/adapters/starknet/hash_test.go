package starknet

import (
	"testing"

	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testnetChainID(t *testing.T) domain.Felt {
	t.Helper()
	chainID, err := domain.FeltFromShortString("SN_GOERLI")
	require.NoError(t, err)
	return chainID
}

func TestGetSelectorFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"__execute__", "0x15d40a3d6ca2ac30f4031e42be28da9b056fef9bb7357ac5e85627ee876e5ad"},
		{"transfer", "0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSelectorFromName(tt.name).Hex())
		})
	}
}

func TestPedersen(t *testing.T) {
	a := domain.MustParseFelt("0x3d937c035c878245caf64531a5756109c53068da139362728feb561405371cb")
	b := domain.MustParseFelt("0x208a0a10250e382e1e4bbe2880906c2791bf6275695e02fbbc6aeff9cd8b31a")

	assert.Equal(t, "0x30e480bed5fe53fa909cc0f8c4d99b8f9f2c016be4c41e13a4848797979c662", Pedersen(a, b).Hex())
}

func TestComputeHashOnElements(t *testing.T) {
	elems := []domain.Felt{domain.FeltFromUint64(1), domain.FeltFromUint64(2)}

	// h(h(h(0, 1), 2), 2)
	expected := Pedersen(Pedersen(Pedersen(domain.Felt{}, elems[0]), elems[1]), domain.FeltFromUint64(2))
	assert.True(t, expected.Equal(ComputeHashOnElements(elems)))

	empty := Pedersen(domain.Felt{}, domain.Felt{})
	assert.True(t, empty.Equal(ComputeHashOnElements(nil)))
}

func TestTransactionHashPrefix(t *testing.T) {
	assert.Equal(t, "0x696e766f6b65", PrefixInvoke.Felt().Hex())
}

func TestInvokeTransactionHash(t *testing.T) {
	hasher := NewHasherForChain(testnetChainID(t))
	address := domain.MustParseFelt("0x4e3bd2d5e1c6b2ff4ddcf2e6b8c4a2e3b7d4f3a6b1c9e2d7f3a8b4c6d1e2f3a")
	calldata := []domain.Felt{domain.FeltFromUint64(1), domain.FeltFromUint64(2), domain.FeltFromUint64(3)}

	t.Run("pure", func(t *testing.T) {
		first, err := hasher.InvokeTransactionHash(address, calldata)
		require.NoError(t, err)
		second, err := hasher.InvokeTransactionHash(address, calldata)
		require.NoError(t, err)

		assert.True(t, first.Equal(second))
		assert.False(t, first.IsZero())
	})

	t.Run("calldata changes hash", func(t *testing.T) {
		first, err := hasher.InvokeTransactionHash(address, calldata)
		require.NoError(t, err)
		other, err := hasher.InvokeTransactionHash(address, []domain.Felt{domain.FeltFromUint64(1), domain.FeltFromUint64(2)})
		require.NoError(t, err)

		assert.False(t, first.Equal(other))
	})

	t.Run("chain id changes hash", func(t *testing.T) {
		mainnet, err := domain.FeltFromShortString("SN_MAIN")
		require.NoError(t, err)

		first, err := hasher.InvokeTransactionHash(address, calldata)
		require.NoError(t, err)
		other, err := NewHasherForChain(mainnet).InvokeTransactionHash(address, calldata)
		require.NoError(t, err)

		assert.False(t, first.Equal(other))
	})

	t.Run("matches common hash layout", func(t *testing.T) {
		got, err := hasher.InvokeTransactionHash(address, calldata)
		require.NoError(t, err)

		expected := ComputeHashOnElements([]domain.Felt{
			PrefixInvoke.Felt(),
			domain.FeltFromUint64(0),
			address,
			GetSelectorFromName("__execute__"),
			ComputeHashOnElements(calldata),
			domain.FeltFromUint64(0),
			testnetChainID(t),
		})
		assert.True(t, expected.Equal(got))
	})
}
