package submitter

import (
	"context"
	"time"

	"astralnexus/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainClient . ChainClient
type ChainClient interface {
	EstimateFee(ctx context.Context) (ethereum.Fee, error)
	Broadcast(ctx context.Context, signed *ethereum.SignedTransaction) (common.Hash, error)
	PollReceipt(ctx context.Context, hash common.Hash, timeout time.Duration) (*ethereum.Receipt, bool, error)
}

//counterfeiter:generate -o fake -fake-name Sequencer . Sequencer
type Sequencer interface {
	Reserve(ctx context.Context, account common.Address) (uint64, error)
	Release(account common.Address, nonce uint64)
	ReleaseAndResync(account common.Address, nonce uint64)
	Abandon(account common.Address, nonce uint64)
}

//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	Address() common.Address
	Sign(utx ethereum.UnsignedTransaction) (*ethereum.SignedTransaction, error)
}

//counterfeiter:generate -o fake -fake-name Journal . Journal
type Journal interface {
	Record(ctx context.Context, event ethereum.SubmissionEvent) error
}

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	ObserveSubmission(contract, method, outcome string, duration time.Duration)
	BroadcastRetried()
	NonceEvent(event string)
}
