package starknet

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/payday-labs/sndeploy/internal/domain"
)

// compiledArtifact is the layout written by starknet-compile --output
type compiledArtifact struct {
	Program           json.RawMessage `json:"program"`
	EntryPointsByType json.RawMessage `json:"entry_points_by_type"`
	ABI               json.RawMessage `json:"abi,omitempty"`
}

// ContractDefinition is the contract class sent with a deploy transaction.
// Program holds the base64 encoded, gzip compressed program JSON.
type ContractDefinition struct {
	Program           string          `json:"program"`
	EntryPointsByType json.RawMessage `json:"entry_points_by_type"`
	ABI               json.RawMessage `json:"abi,omitempty"`
}

// NewContractDefinition builds a deploy payload from compiled artifact text
func NewContractDefinition(contract *domain.CompiledContract) (*ContractDefinition, error) {
	if contract == nil || strings.TrimSpace(contract.Source) == "" {
		return nil, fmt.Errorf("compiled contract is empty")
	}

	var artifact compiledArtifact
	if err := json.Unmarshal([]byte(contract.Source), &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse compiled contract %s: %w", contract.Path, err)
	}
	if len(artifact.Program) == 0 {
		return nil, fmt.Errorf("compiled contract %s has no program", contract.Path)
	}
	if len(artifact.EntryPointsByType) == 0 {
		return nil, fmt.Errorf("compiled contract %s has no entry_points_by_type", contract.Path)
	}

	program, err := compressProgram(artifact.Program)
	if err != nil {
		return nil, err
	}

	return &ContractDefinition{
		Program:           program,
		EntryPointsByType: artifact.EntryPointsByType,
		ABI:               artifact.ABI,
	}, nil
}

func compressProgram(program []byte) (string, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(program); err != nil {
		return "", fmt.Errorf("failed to compress program: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to compress program: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecompressProgram reverses the program encoding of a ContractDefinition
func DecompressProgram(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(zr); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type deployTransactionResponse struct {
	TransactionHash domain.Felt `json:"transaction_hash"`
	ContractAddress domain.Felt `json:"contract_address"`
}

type rpcTransaction struct {
	TransactionHash domain.Felt `json:"transaction_hash"`
	Type            string      `json:"type"`
	ContractAddress domain.Felt `json:"contract_address"`
}

// transactionReceipt covers both the single status field of older nodes and
// the finality/execution split of newer ones
type transactionReceipt struct {
	Status          string `json:"status"`
	StatusData      string `json:"status_data"`
	FinalityStatus  string `json:"finality_status"`
	ExecutionStatus string `json:"execution_status"`
	RevertReason    string `json:"revert_reason"`
}

func (r transactionReceipt) status() domain.TransactionStatus {
	if strings.EqualFold(r.ExecutionStatus, string(domain.TxStatusReverted)) {
		return domain.TxStatusReverted
	}
	if r.FinalityStatus != "" {
		return domain.TransactionStatus(strings.ToUpper(r.FinalityStatus))
	}
	if r.Status != "" {
		return domain.TransactionStatus(strings.ToUpper(r.Status))
	}
	return domain.TxStatusReceived
}

func (r transactionReceipt) reason() string {
	if r.RevertReason != "" {
		return r.RevertReason
	}
	return r.StatusData
}
