package domain

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFelt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "hex", input: "0x1a", want: "0x1a"},
		{name: "upper prefix", input: "0XFF", want: "0xff"},
		{name: "decimal", input: "255", want: "0xff"},
		{name: "zero", input: "0", want: "0x0"},
		{name: "surrounding space", input: " 0x2 ", want: "0x2"},
		{name: "empty", input: "", wantErr: true},
		{name: "bare prefix", input: "0x", wantErr: true},
		{name: "garbage", input: "0xzz", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "modulus", input: fp.Modulus().String(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFelt(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFelt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Hex())
		})
	}
}

func TestFeltFromBigInt(t *testing.T) {
	max := new(big.Int).Sub(fp.Modulus(), big.NewInt(1))
	f, err := FeltFromBigInt(max)
	require.NoError(t, err)
	assert.Equal(t, 0, f.BigInt().Cmp(max))

	_, err = FeltFromBigInt(nil)
	assert.ErrorIs(t, err, ErrInvalidFelt)
}

func TestFeltFromShortString(t *testing.T) {
	f, err := FeltFromShortString("SN_GOERLI")
	require.NoError(t, err)
	assert.Equal(t, "0x534e5f474f45524c49", f.Hex())

	f, err = FeltFromShortString("invoke")
	require.NoError(t, err)
	assert.Equal(t, "0x696e766f6b65", f.Hex())

	_, err = FeltFromShortString("this string is definitely longer than 31")
	assert.ErrorIs(t, err, ErrInvalidFelt)

	_, err = FeltFromShortString("héllo")
	assert.ErrorIs(t, err, ErrInvalidFelt)
}

func TestFeltAccessors(t *testing.T) {
	f := FeltFromUint64(42)

	assert.Equal(t, uint64(42), f.Uint64())
	assert.False(t, f.IsZero())
	assert.True(t, Felt{}.IsZero())
	assert.True(t, f.Equal(MustParseFelt("0x2a")))
	assert.Equal(t, "0x2a", f.String())

	e := f.Element()
	e.SetUint64(7)
	assert.Equal(t, uint64(42), f.Uint64(), "Element returns a copy")
}

func TestFeltText(t *testing.T) {
	type wrapper struct {
		Address Felt `json:"address"`
	}

	data, err := json.Marshal(wrapper{Address: FeltFromUint64(255)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"address":"0xff"}`, string(data))

	var decoded wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"address":"0x10"}`), &decoded))
	assert.Equal(t, uint64(16), decoded.Address.Uint64())

	assert.Error(t, json.Unmarshal([]byte(`{"address":"nope"}`), &decoded))
}

func TestParseFelts(t *testing.T) {
	felts, err := ParseFelts([]string{"1", "0x2", "3"})
	require.NoError(t, err)
	require.Len(t, felts, 3)
	assert.Equal(t, uint64(2), felts[1].Uint64())

	empty, err := ParseFelts(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseFelts([]string{"1", "x"})
	assert.ErrorIs(t, err, ErrInvalidFelt)
	assert.ErrorContains(t, err, "argument 1")
}
