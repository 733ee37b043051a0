package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"astralnexus/internal/txerr"

	"github.com/cenkalti/backoff/v4"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	defaultCallTimeout   = 10 * time.Second
	defaultRetryInterval = 200 * time.Millisecond
)

type ClientConfig struct {
	CallTimeout   time.Duration
	ReadRetries   uint64
	RetryInterval time.Duration
}

// ChainClient is the gateway's only path to the remote ledger. Reads are safe
// to issue concurrently; the underlying ethclient multiplexes requests.
type ChainClient struct {
	client        EthClient
	callTimeout   time.Duration
	readRetries   uint64
	retryInterval time.Duration
}

func NewChainClient(ethClient EthClient, cfg ClientConfig) *ChainClient {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = defaultCallTimeout
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}

	return &ChainClient{
		client:        ethClient,
		callTimeout:   cfg.CallTimeout,
		readRetries:   cfg.ReadRetries,
		retryInterval: cfg.RetryInterval,
	}
}

func (c *ChainClient) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	var out []byte
	err := c.retryRead(ctx, "eth_call", func(ctx context.Context) error {
		var err error
		out, err = c.client.CallContract(ctx, geth.CallMsg{To: &to, Data: data}, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *ChainClient) EstimateFee(ctx context.Context) (Fee, error) {
	var gasPrice *big.Int
	err := c.retryRead(ctx, "eth_gasPrice", func(ctx context.Context) error {
		var err error
		gasPrice, err = c.client.SuggestGasPrice(ctx)
		return err
	})
	if err != nil {
		return Fee{}, err
	}

	return Fee{GasPrice: gasPrice}, nil
}

// GetNonce returns the number of transactions already mined from account.
func (c *ChainClient) GetNonce(ctx context.Context, account common.Address) (uint64, error) {
	var nonce uint64
	err := c.retryRead(ctx, "eth_getTransactionCount", func(ctx context.Context) error {
		var err error
		nonce, err = c.client.NonceAt(ctx, account, nil)
		return err
	})

	return nonce, err
}

// GetPendingNonce returns the next nonce as seen by the node's transaction
// pool, which counts broadcast transactions that are not mined yet.
func (c *ChainClient) GetPendingNonce(ctx context.Context, account common.Address) (uint64, error) {
	var nonce uint64
	err := c.retryRead(ctx, "eth_getTransactionCount(pending)", func(ctx context.Context) error {
		var err error
		nonce, err = c.client.PendingNonceAt(ctx, account)
		return err
	})

	return nonce, err
}

func (c *ChainClient) ChainID(ctx context.Context) (*big.Int, error) {
	var chainID *big.Int
	err := c.retryRead(ctx, "eth_chainId", func(ctx context.Context) error {
		var err error
		chainID, err = c.client.ChainID(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return chainID, nil
}

// Broadcast sends the signed transaction once. Retrying is left to the caller
// because only the caller knows whether the nonce may be reused.
func (c *ChainClient) Broadcast(ctx context.Context, signed *SignedTransaction) (common.Hash, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	if err := c.client.SendTransaction(callCtx, signed.Transaction()); err != nil {
		return common.Hash{}, classify("eth_sendRawTransaction", err)
	}

	return signed.Hash(), nil
}

// PollReceipt performs a single receipt lookup bounded by timeout. A nil
// receipt with found == false means the transaction is not mined yet.
func (c *ChainClient) PollReceipt(ctx context.Context, hash common.Hash, timeout time.Duration) (*Receipt, bool, error) {
	if timeout <= 0 {
		timeout = c.callTimeout
	}
	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r, err := c.client.TransactionReceipt(pollCtx, hash)
	if errors.Is(err, geth.NotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, classify("eth_getTransactionReceipt", err)
	}
	if r == nil {
		return nil, false, nil
	}

	receipt := toReceipt(r)
	receipt.Hash = hash
	return receipt, true, nil
}

func (c *ChainClient) retryRead(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewExponentialBackOff(backoff.WithInitialInterval(c.retryInterval)),
			c.readRetries),
		ctx)

	return backoff.Retry(func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()

		err := classify(op, fn(callCtx))
		if err == nil {
			return nil
		}

		var netErr *txerr.NetworkError
		if !errors.As(err, &netErr) || ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

// classify sorts a transport error into the taxonomy: explicit rejections by
// the endpoint are RPC errors, everything else is a network error.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return &txerr.RPCError{Op: op, Code: rpcErr.ErrorCode(), Err: err}
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= http.StatusInternalServerError {
			return &txerr.NetworkError{Op: op, Err: err}
		}
		return &txerr.RPCError{Op: op, Code: httpErr.StatusCode, Err: err}
	}

	return &txerr.NetworkError{Op: op, Err: err}
}
