package starknet

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/ethereum/go-ethereum/rpc"
	appconfig "github.com/payday-labs/sndeploy/internal/config"
	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/domain/config"
)

// DefaultPollInterval is used when no poll interval is configured
const DefaultPollInterval = 5 * time.Second

// JSON-RPC error codes for unknown transaction hashes across API versions
const (
	errCodeInvalidTxnHash  = 25
	errCodeTxnHashNotFound = 29
)

// Client talks to a StarkNet node over JSON-RPC
type Client struct {
	network      *config.Network
	pollInterval time.Duration
	log          *slog.Logger

	mu  sync.Mutex
	rpc *rpc.Client

	// newSalt is replaceable in tests
	newSalt func() (domain.Felt, error)
}

// NewClient creates a client for the configured network. The connection is
// dialed on first use so commands that never touch the network don't need an RPC URL.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Client{
		network:      cfg.Network,
		pollInterval: pollInterval,
		log:          log.With("component", "StarknetClient", "network", cfg.Network.Name),
		newSalt:      randomSalt,
	}
}

// Close releases the underlying connection
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rpc != nil {
		c.rpc.Close()
		c.rpc = nil
	}
}

func (c *Client) conn(ctx context.Context) (*rpc.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rpc != nil {
		return c.rpc, nil
	}
	if c.network.RPCURL == "" {
		return nil, fmt.Errorf("no RPC URL configured for network %s (set rpc_url in sndeploy.toml or %s)",
			c.network.Name, appconfig.GenerateEnvVarName(c.network.Name))
	}

	c.log.Debug("dialing node", "url", c.network.RPCURL)
	client, err := rpc.DialContext(ctx, c.network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.network.Name, err)
	}
	c.rpc = client
	return client, nil
}

func (c *Client) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	client, err := c.conn(ctx)
	if err != nil {
		return err
	}
	start := time.Now()
	err = client.CallContext(ctx, result, method, args...)
	c.log.Debug("rpc call", "method", method, "duration", time.Since(start), "error", err)
	return err
}

// ChainID returns the chain id reported by the node
func (c *Client) ChainID(ctx context.Context) (domain.Felt, error) {
	var chainID domain.Felt
	if err := c.call(ctx, &chainID, "starknet_chainId"); err != nil {
		return domain.Felt{}, err
	}
	return chainID, nil
}

// DeployContract submits a deploy transaction for the compiled contract
func (c *Client) DeployContract(ctx context.Context, contract *domain.CompiledContract, constructorArgs []domain.Felt) (*domain.DeploymentResult, error) {
	definition, err := NewContractDefinition(contract)
	if err != nil {
		return nil, err
	}

	salt, err := c.newSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	if constructorArgs == nil {
		constructorArgs = []domain.Felt{}
	}

	var resp deployTransactionResponse
	if err := c.call(ctx, &resp, "starknet_addDeployTransaction", salt, constructorArgs, definition); err != nil {
		return nil, err
	}

	c.log.Debug("deploy submitted", "hash", resp.TransactionHash, "address", resp.ContractAddress)
	return &domain.DeploymentResult{
		TransactionHash: resp.TransactionHash,
		ContractAddress: resp.ContractAddress,
	}, nil
}

// GetTransactionStatus returns the current status; unknown hashes are NOT_RECEIVED
func (c *Client) GetTransactionStatus(ctx context.Context, hash domain.Felt) (domain.TransactionStatus, error) {
	status, _, err := c.receiptStatus(ctx, hash)
	return status, err
}

// GetTransaction fetches a transaction by hash
func (c *Client) GetTransaction(ctx context.Context, hash domain.Felt) (*domain.Transaction, error) {
	var tx rpcTransaction
	if err := c.call(ctx, &tx, "starknet_getTransactionByHash", hash); err != nil {
		if isUnknownTransaction(err) {
			return nil, fmt.Errorf("transaction %s: %w", hash, domain.ErrNotFound)
		}
		return nil, err
	}

	return &domain.Transaction{
		Hash:            hash,
		Type:            tx.Type,
		ContractAddress: tx.ContractAddress,
	}, nil
}

// WaitForTransaction polls until the transaction is accepted, rejected or ctx ends
func (c *Client) WaitForTransaction(ctx context.Context, hash domain.Felt) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		status, reason, err := c.receiptStatus(ctx, hash)
		if err != nil {
			return err
		}

		c.log.Debug("transaction status", "hash", hash, "status", status)

		switch {
		case status.IsAccepted():
			return nil
		case status.IsRejected():
			return domain.TransactionRejectedErr{Hash: hash, Status: status, Reason: reason}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) receiptStatus(ctx context.Context, hash domain.Felt) (domain.TransactionStatus, string, error) {
	var receipt transactionReceipt
	if err := c.call(ctx, &receipt, "starknet_getTransactionReceipt", hash); err != nil {
		if isUnknownTransaction(err) {
			return domain.TxStatusNotReceived, "", nil
		}
		return "", "", err
	}
	return receipt.status(), receipt.reason(), nil
}

func isUnknownTransaction(err error) bool {
	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return false
	}
	code := rpcErr.ErrorCode()
	return code == errCodeInvalidTxnHash || code == errCodeTxnHashNotFound
}

// randomSalt returns 248 random bits, always below the field modulus
func randomSalt() (domain.Felt, error) {
	buf := make([]byte, 31)
	if _, err := rand.Read(buf); err != nil {
		return domain.Felt{}, err
	}
	var e fp.Element
	e.SetBytes(buf)
	return domain.FeltFromElement(e), nil
}
