package submitter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"astralnexus/internal/contract"
	"astralnexus/internal/ethereum"
	"astralnexus/internal/txerr"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultGasLimit          = 2_000_000
	defaultBroadcastBackoff  = 500 * time.Millisecond
	defaultPollInterval      = 2 * time.Second
	defaultPollTimeout       = 5 * time.Second
	defaultSubmissionTimeout = 2 * time.Minute
)

const (
	OutcomeConfirmed     = "confirmed"
	OutcomeReverted      = "reverted"
	OutcomeIndeterminate = "indeterminate"
	OutcomeCanceled      = "canceled"
	OutcomeFailed        = "failed"
)

const (
	nonceReleased  = "released"
	nonceAbandoned = "abandoned"
	nonceConflict  = "conflict"
)

var ErrForeignAccount = errors.New("intent is not from the signing account")

type Config struct {
	GasLimit          uint64
	ChainID           *big.Int
	BroadcastRetries  uint64
	BroadcastBackoff  time.Duration
	PollInterval      time.Duration
	PollTimeout       time.Duration
	SubmissionTimeout time.Duration
}

// Submitter drives a write from an encoded intent to a terminal outcome:
// confirmed, reverted or failed. Submissions run concurrently; only the nonce
// reservation is serialized, inside the Sequencer.
type Submitter struct {
	logs      *zap.SugaredLogger
	cfg       Config
	client    ChainClient
	sequencer Sequencer
	signer    Signer
	recorder  Recorder
	journal   Journal
	tracer    trace.Tracer
}

// NewSubmitter wires a Submitter. journal may be nil when no submission
// journal is configured.
func NewSubmitter(
	logger *zap.SugaredLogger,
	cfg Config,
	client ChainClient,
	sequencer Sequencer,
	signer Signer,
	recorder Recorder,
	journal Journal,
) *Submitter {
	if cfg.GasLimit == 0 {
		cfg.GasLimit = DefaultGasLimit
	}
	if cfg.BroadcastBackoff <= 0 {
		cfg.BroadcastBackoff = defaultBroadcastBackoff
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = defaultPollTimeout
	}
	if cfg.SubmissionTimeout <= 0 {
		cfg.SubmissionTimeout = defaultSubmissionTimeout
	}

	return &Submitter{
		logs:      logger,
		cfg:       cfg,
		client:    client,
		sequencer: sequencer,
		signer:    signer,
		recorder:  recorder,
		journal:   journal,
		tracer:    otel.Tracer("astralnexus/submitter"),
	}
}

func (s *Submitter) Account() common.Address {
	return s.signer.Address()
}

// Submit signs, broadcasts and confirms the intent. A nonce conflict on the
// first broadcast attempt is retried once with a freshly reserved nonce.
//
// Cancelling ctx aborts the submission only until the first broadcast
// attempt. After that the submission runs to a terminal state regardless.
func (s *Submitter) Submit(ctx context.Context, intent contract.Intent) (*ethereum.Receipt, error) {
	account := s.signer.Address()
	label := fmt.Sprintf("%s.%s", intent.Contract, intent.Method)

	ctx, span := s.tracer.Start(ctx, "submitter.Submit", trace.WithAttributes(
		attribute.String("contract", string(intent.Contract)),
		attribute.String("method", intent.Method),
		attribute.String("account", account.Hex()),
	))
	defer span.End()

	if intent.From != (common.Address{}) && intent.From != account {
		err := &txerr.SubmissionError{
			Account: account,
			Method:  label,
			Err:     &txerr.ValidationError{Field: "from", Err: ErrForeignAccount},
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	start := time.Now()
	receipt, err := s.attempt(ctx, span, account, intent)

	var conflictErr *txerr.NonceConflictError
	if errors.As(err, &conflictErr) {
		s.recorder.NonceEvent(nonceConflict)
		s.logs.Warnw("nonce conflict, retrying with a fresh nonce",
			"account", account.Hex(),
			"method", label,
			"nonce", conflictErr.Nonce,
			"error", err)
		receipt, err = s.attempt(ctx, span, account, intent)
	}

	outcome := outcomeOf(err)
	s.recorder.ObserveSubmission(string(intent.Contract), intent.Method, outcome, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		s.logs.Errorw("submission failed",
			"account", account.Hex(),
			"method", label,
			"outcome", outcome,
			"kind", txerr.KindOf(err),
			"error", err)
		return receipt, err
	}

	span.SetAttributes(
		attribute.String("tx_hash", receipt.Hash.Hex()),
		attribute.Int64("block_number", int64(receipt.BlockNumber)))
	s.logs.Infow("submission confirmed",
		"account", account.Hex(),
		"method", label,
		"tx_hash", receipt.Hash.Hex(),
		"block_number", receipt.BlockNumber,
		"elapsed", time.Since(start))

	return receipt, nil
}

func (s *Submitter) attempt(ctx context.Context, span trace.Span, account common.Address, intent contract.Intent) (*ethereum.Receipt, error) {
	sub := &ethereum.PendingSubmission{
		ID:               uuid.NewString(),
		Account:          account,
		Contract:         string(intent.Contract),
		Method:           intent.Method,
		RetriesRemaining: int(s.cfg.BroadcastRetries),
	}
	label := fmt.Sprintf("%s.%s", intent.Contract, intent.Method)
	fail := func(err error, nonceAssigned bool) error {
		return &txerr.SubmissionError{
			Account:       account,
			Method:        label,
			Nonce:         sub.Nonce,
			NonceAssigned: nonceAssigned,
			Err:           err,
		}
	}

	fee, err := s.client.EstimateFee(ctx)
	if err != nil {
		return nil, fail(fmt.Errorf("estimate fee: %w", err), false)
	}

	nonce, err := s.sequencer.Reserve(ctx, account)
	if err != nil {
		return nil, fail(fmt.Errorf("reserve nonce: %w", err), false)
	}
	sub.Nonce = nonce
	span.SetAttributes(attribute.Int64("nonce", int64(nonce)))

	if err := ctx.Err(); err != nil {
		s.release(account, nonce)
		return nil, fail(err, true)
	}

	signed, err := s.signer.Sign(ethereum.UnsignedTransaction{
		To:       intent.To,
		Data:     intent.Data,
		GasLimit: s.cfg.GasLimit,
		GasPrice: fee.GasPrice,
		Nonce:    nonce,
		ChainID:  s.cfg.ChainID,
	})
	if err != nil {
		s.release(account, nonce)
		return nil, fail(fmt.Errorf("sign: %w", err), true)
	}
	sub.Signed = signed

	// last point at which the caller can still abort
	if err := ctx.Err(); err != nil {
		s.release(account, nonce)
		return nil, fail(err, true)
	}

	detached := context.WithoutCancel(ctx)
	s.record(detached, sub, ethereum.SubmissionSigned, 0, nil)

	hash, err := s.broadcast(detached, sub)
	if err != nil {
		var rpcErr *txerr.RPCError
		switch {
		case errors.As(err, &rpcErr) && rpcErr.IsNonceConflict():
			s.sequencer.ReleaseAndResync(account, nonce)
			s.recorder.NonceEvent(nonceReleased)
			err =&txerr.NonceConflictError{Account: account, Nonce: nonce, Err: err}
		case errors.As(err, &rpcErr):
			s.release(account, nonce)
		default:
			s.sequencer.Abandon(account, nonce)
			s.recorder.NonceEvent(nonceAbandoned)
		}
		s.record(detached, sub, ethereum.SubmissionFailed, 0, err)
		return nil, fail(err, true)
	}
	sub.SubmittedAt = time.Now()
	s.record(detached, sub, ethereum.SubmissionBroadcast, 0, nil)
	s.logs.Infow("transaction broadcast",
		"submission_id", sub.ID,
		"account", account.Hex(),
		"method", label,
		"nonce", nonce,
		"tx_hash", hash.Hex())

	receipt, err := s.awaitReceipt(detached, hash)
	switch {
	case err == nil:
		s.record(detached, sub, ethereum.SubmissionConfirmed, receipt.BlockNumber, nil)
		return receipt, nil
	case receipt != nil:
		s.record(detached, sub, ethereum.SubmissionReverted, receipt.BlockNumber, err)
	default:
		s.record(detached, sub, ethereum.SubmissionIndeterminate, 0, err)
	}

	return receipt, fail(err, true)
}

// broadcast sends the same signed transaction until it is accepted, rejected
// or the network retries run out. The nonce never changes between attempts,
// and a nonce rejection after a lost response never frees it.
func (s *Submitter) broadcast(ctx context.Context, sub *ethereum.PendingSubmission) (common.Hash, error) {
	policy := backoff.WithMaxRetries(
		backoff.NewExponentialBackOff(backoff.WithInitialInterval(s.cfg.BroadcastBackoff)),
		s.cfg.BroadcastRetries)

	attempts := 0
	return backoff.RetryNotifyWithData(func() (common.Hash, error) {
		attempts++
		hash, err := s.client.Broadcast(ctx, sub.Signed)
		if err == nil {
			return hash, nil
		}

		var rpcErr *txerr.RPCError
		if errors.As(err, &rpcErr) {
			// Only network failures are retried, so on a later attempt an
			// earlier one may have landed with its response lost. The nonce is
			// spent either way; the receipt decides the outcome.
			if attempts > 1 && rpcErr.IsNonceConflict() {
				s.logs.Warnw("retried broadcast rejected for its nonce, treating earlier attempt as delivered",
					"submission_id", sub.ID,
					"account", sub.Account.Hex(),
					"nonce", sub.Nonce,
					"tx_hash", sub.Signed.Hash().Hex(),
					"already_known", rpcErr.IsAlreadyKnown(),
					"error", err)
				return sub.Signed.Hash(), nil
			}
			return common.Hash{}, backoff.Permanent(err)
		}

		var netErr *txerr.NetworkError
		if !errors.As(err, &netErr) {
			return common.Hash{}, backoff.Permanent(err)
		}
		return common.Hash{}, err
	}, policy, func(err error, wait time.Duration) {
		sub.RetriesRemaining--
		s.recorder.BroadcastRetried()
		s.logs.Warnw("broadcast failed, retrying",
			"submission_id", sub.ID,
			"account", sub.Account.Hex(),
			"nonce", sub.Nonce,
			"tx_hash", sub.Signed.Hash().Hex(),
			"retries_remaining", sub.RetriesRemaining,
			"wait", wait,
			"error", err)
	})
}

// awaitReceipt polls until the transaction is mined or the submission timeout
// elapses. A reverted receipt is returned together with a RevertedError.
func (s *Submitter) awaitReceipt(ctx context.Context, hash common.Hash) (*ethereum.Receipt, error) {
	start := time.Now()
	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.SubmissionTimeout)
	defer cancel()

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		receipt, found, err := s.client.PollReceipt(waitCtx, hash, s.cfg.PollTimeout)
		switch {
		case err != nil:
			if waitCtx.Err() == nil {
				s.logs.Warnw("receipt poll failed", "tx_hash", hash.Hex(), "error", err)
			}
		case found && receipt.Succeeded():
			return receipt, nil
		case found:
			return receipt, &txerr.RevertedError{TxHash: hash, BlockNumber: receipt.BlockNumber}
		}

		select {
		case <-waitCtx.Done():
			return nil, &txerr.IndeterminateError{TxHash: hash, Waited: time.Since(start).Round(time.Millisecond)}
		case <-ticker.C:
		}
	}
}

func (s *Submitter) release(account common.Address, nonce uint64) {
	s.sequencer.Release(account, nonce)
	s.recorder.NonceEvent(nonceReleased)
}

func (s *Submitter) record(ctx context.Context, sub *ethereum.PendingSubmission, status ethereum.SubmissionStatus, blockNumber uint64, cause error) {
	if s.journal == nil {
		return
	}

	event := ethereum.SubmissionEvent{
		ID:          sub.ID,
		Account:     sub.Account,
		Contract:    sub.Contract,
		Method:      sub.Method,
		Nonce:       sub.Nonce,
		Status:      status,
		BlockNumber: blockNumber,
		At:          time.Now().UTC(),
	}
	if sub.Signed != nil {
		event.TxHash = sub.Signed.Hash()
	}
	if cause != nil {
		event.Error = cause.Error()
	}

	if err := s.journal.Record(ctx, event); err != nil {
		s.logs.Errorw("journal record failed",
			"submission_id", sub.ID,
			"status", status,
			"error", err)
	}
}

func outcomeOf(err error) string {
	switch txerr.KindOf(err) {
	case "":
		return OutcomeConfirmed
	case txerr.KindReverted:
		return OutcomeReverted
	case txerr.KindIndeterminate:
		return OutcomeIndeterminate
	case txerr.KindCanceled:
		return OutcomeCanceled
	default:
		return OutcomeFailed
	}
}
