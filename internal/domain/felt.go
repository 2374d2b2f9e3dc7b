package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// MaxShortStringLength is the number of ASCII bytes that fit in a felt
const MaxShortStringLength = 31

// Felt is a StarkNet field element
type Felt struct {
	e fp.Element
}

// FeltFromUint64 creates a felt from an unsigned integer
func FeltFromUint64(v uint64) Felt {
	var f Felt
	f.e.SetUint64(v)
	return f
}

// FeltFromBigInt creates a felt from a big integer, rejecting values outside [0, P)
func FeltFromBigInt(v *big.Int) (Felt, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return Felt{}, fmt.Errorf("%w: value out of range", ErrInvalidFelt)
	}
	var f Felt
	f.e.SetBigInt(v)
	return f, nil
}

// FeltFromElement wraps a field element
func FeltFromElement(e fp.Element) Felt {
	return Felt{e: e}
}

// ParseFelt parses a 0x-prefixed hex string or a decimal string
func ParseFelt(s string) (Felt, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Felt{}, fmt.Errorf("%w: empty string", ErrInvalidFelt)
	}

	v := new(big.Int)
	var ok bool
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := s[2:]
		if digits == "" {
			return Felt{}, fmt.Errorf("%w: %q has no digits", ErrInvalidFelt, s)
		}
		_, ok = v.SetString(digits, 16)
	} else {
		_, ok = v.SetString(s, 10)
	}
	if !ok {
		return Felt{}, fmt.Errorf("%w: %q", ErrInvalidFelt, s)
	}
	return FeltFromBigInt(v)
}

// MustParseFelt is like ParseFelt but panics on error. Intended for constants.
func MustParseFelt(s string) Felt {
	f, err := ParseFelt(s)
	if err != nil {
		panic(err)
	}
	return f
}

// FeltFromShortString encodes up to 31 ASCII characters big-endian into a felt
func FeltFromShortString(s string) (Felt, error) {
	if len(s) > MaxShortStringLength {
		return Felt{}, fmt.Errorf("%w: short string %q longer than %d bytes", ErrInvalidFelt, s, MaxShortStringLength)
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return Felt{}, fmt.Errorf("%w: short string %q is not ASCII", ErrInvalidFelt, s)
		}
	}
	var f Felt
	f.e.SetBytes([]byte(s))
	return f, nil
}

// Element returns the underlying field element
func (f Felt) Element() *fp.Element {
	e := f.e
	return &e
}

// BigInt returns the canonical integer value
func (f Felt) BigInt() *big.Int {
	return f.e.BigInt(new(big.Int))
}

// Uint64 returns the low 64 bits
func (f Felt) Uint64() uint64 {
	return f.BigInt().Uint64()
}

// IsZero reports whether the felt is zero
func (f Felt) IsZero() bool {
	return f.e.IsZero()
}

// Equal reports whether two felts hold the same value
func (f Felt) Equal(other Felt) bool {
	return f.e.Equal(&other.e)
}

// Hex returns the minimal lowercase 0x-prefixed representation
func (f Felt) Hex() string {
	return "0x" + f.BigInt().Text(16)
}

func (f Felt) String() string {
	return f.Hex()
}

// MarshalText implements encoding.TextMarshaler
func (f Felt) MarshalText() ([]byte, error) {
	return []byte(f.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Felt) UnmarshalText(text []byte) error {
	parsed, err := ParseFelt(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFelts parses every string in order, stopping at the first failure
func ParseFelts(values []string) ([]Felt, error) {
	felts := make([]Felt, 0, len(values))
	for i, v := range values {
		f, err := ParseFelt(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		felts = append(felts, f)
	}
	return felts, nil
}
