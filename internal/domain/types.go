package domain

import (
	"fmt"
	"strings"
)

// CacheKeySuffix is appended to the upper-cased contract path to build a cache key
const CacheKeySuffix = "_ADDRESS"

// CacheKey derives the address cache key for a contract path
func CacheKey(contractPath string) string {
	return strings.ToUpper(contractPath) + CacheKeySuffix
}

// ContractPathFromKey reverses CacheKey as far as possible (case is lost)
func ContractPathFromKey(key string) string {
	return strings.ToLower(strings.TrimSuffix(key, CacheKeySuffix))
}

// TransactionStatus is the lifecycle status reported by a StarkNet node
type TransactionStatus string

const (
	TxStatusNotReceived  TransactionStatus = "NOT_RECEIVED"
	TxStatusReceived     TransactionStatus = "RECEIVED"
	TxStatusPending      TransactionStatus = "PENDING"
	TxStatusAcceptedOnL2 TransactionStatus = "ACCEPTED_ON_L2"
	TxStatusAcceptedOnL1 TransactionStatus = "ACCEPTED_ON_L1"
	TxStatusRejected     TransactionStatus = "REJECTED"
	TxStatusReverted     TransactionStatus = "REVERTED"
)

// acceptMarker identifies accepted statuses
const acceptMarker = "ACCEPT"

// IsAccepted reports whether the status carries the acceptance marker
func (s TransactionStatus) IsAccepted() bool {
	return strings.Contains(strings.ToUpper(string(s)), acceptMarker)
}

// IsRejected reports whether the status is terminal without acceptance
func (s TransactionStatus) IsRejected() bool {
	switch TransactionStatus(strings.ToUpper(string(s))) {
	case TxStatusRejected, TxStatusReverted:
		return true
	}
	return false
}

// IsFinal reports whether no further status transition is expected
func (s TransactionStatus) IsFinal() bool {
	return s.IsAccepted() || s.IsRejected()
}

// CompiledContract is the text of a compiled artifact ready for deployment
type CompiledContract struct {
	// Path is where the artifact was read from
	Path string
	// Source is the artifact content, unmodified
	Source string
}

// CompilationArtifacts are the files produced by the contract compiler
type CompilationArtifacts struct {
	SourcePath   string
	CompiledPath string
	ABIPath      string
}

// DeploymentResult is the outcome of submitting a deployment
type DeploymentResult struct {
	TransactionHash Felt
	// ContractAddress is the address announced on submission, may be zero
	ContractAddress Felt
}

// Transaction is the subset of a fetched transaction the helper needs
type Transaction struct {
	Hash            Felt
	Type            string
	ContractAddress Felt
	Status          TransactionStatus
}

// Invocation is a submitted invoke transaction awaiting acceptance
type Invocation struct {
	Hash Felt
}

// CachedAddress is one entry of the address cache
type CachedAddress struct {
	Key     string
	Address Felt
}

func (c CachedAddress) String() string {
	return fmt.Sprintf("%s=%s", c.Key, c.Address)
}
