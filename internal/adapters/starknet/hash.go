package starknet

import (
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	pedersenhash "github.com/consensys/gnark-crypto/ecc/stark-curve/pedersen-hash"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
)

// Invoke transactions are hashed as version 0 with no fee
const (
	InvokeTransactionVersion = 0
	InvokeMaxFee             = 0
)

// ExecuteEntryPoint is the account entry point invocations are routed through
const ExecuteEntryPoint = "__execute__"

// TransactionHashPrefix tags the transaction type inside the hash
type TransactionHashPrefix string

const (
	PrefixInvoke  TransactionHashPrefix = "invoke"
	PrefixDeploy  TransactionHashPrefix = "deploy"
	PrefixDeclare TransactionHashPrefix = "declare"
)

// Felt encodes the prefix as a short string
func (p TransactionHashPrefix) Felt() domain.Felt {
	f, err := domain.FeltFromShortString(string(p))
	if err != nil {
		panic(err)
	}
	return f
}

// GetSelectorFromName returns the keccak of name truncated to 250 bits
func GetSelectorFromName(name string) domain.Felt {
	digest := crypto.Keccak256([]byte(name))
	digest[0] &= 0x03

	var e fp.Element
	e.SetBytes(digest)
	return domain.FeltFromElement(e)
}

// Pedersen hashes two felts
func Pedersen(a, b domain.Felt) domain.Felt {
	return domain.FeltFromElement(pedersenhash.Pedersen(a.Element(), b.Element()))
}

// ComputeHashOnElements chains Pedersen over elems starting from zero and
// finishes with the element count
func ComputeHashOnElements(elems []domain.Felt) domain.Felt {
	ptrs := make([]*fp.Element, len(elems))
	for i := range elems {
		ptrs[i] = elems[i].Element()
	}
	return domain.FeltFromElement(pedersenhash.PedersenArray(ptrs...))
}

// TransactionHashInput is the common shape of a pre-v1 transaction hash
type TransactionHashInput struct {
	Prefix             TransactionHashPrefix
	Version            uint64
	ContractAddress    domain.Felt
	EntryPointSelector domain.Felt
	Calldata           []domain.Felt
	MaxFee             uint64
	ChainID            domain.Felt
	AdditionalData     []domain.Felt
}

// CalculateTransactionHashCommon hashes the fields shared by all transaction types
func CalculateTransactionHashCommon(in TransactionHashInput) domain.Felt {
	elems := []domain.Felt{
		in.Prefix.Felt(),
		domain.FeltFromUint64(in.Version),
		in.ContractAddress,
		in.EntryPointSelector,
		ComputeHashOnElements(in.Calldata),
		domain.FeltFromUint64(in.MaxFee),
		in.ChainID,
	}
	elems = append(elems, in.AdditionalData...)
	return ComputeHashOnElements(elems)
}

// Hasher computes invoke transaction hashes for the configured chain
type Hasher struct {
	chainID  domain.Felt
	selector domain.Felt
}

// NewHasher creates a hasher bound to the configured network's chain id
func NewHasher(cfg *config.RuntimeConfig) *Hasher {
	return NewHasherForChain(cfg.Network.ChainID)
}

// NewHasherForChain creates a hasher bound to chainID
func NewHasherForChain(chainID domain.Felt) *Hasher {
	return &Hasher{
		chainID:  chainID,
		selector: GetSelectorFromName(ExecuteEntryPoint),
	}
}

// InvokeTransactionHash hashes a version 0, zero fee invocation of __execute__ on address
func (h *Hasher) InvokeTransactionHash(address domain.Felt, calldata []domain.Felt) (domain.Felt, error) {
	return CalculateTransactionHashCommon(TransactionHashInput{
		Prefix:             PrefixInvoke,
		Version:            InvokeTransactionVersion,
		ContractAddress:    address,
		EntryPointSelector: h.selector,
		Calldata:           calldata,
		MaxFee:             InvokeMaxFee,
		ChainID:            h.chainID,
	}), nil
}
