package ethereum

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type ReceiptStatus string

const (
	StatusSuccess  ReceiptStatus = "success"
	StatusReverted ReceiptStatus = "reverted"
)

type Fee struct {
	GasPrice *big.Int
}

// UnsignedTransaction is a fully parameterised legacy transaction waiting for
// a signature. Build it once; the signer never mutates it.
type UnsignedTransaction struct {
	To       common.Address
	Data     []byte
	GasLimit uint64
	GasPrice *big.Int
	Nonce    uint64
	ChainID  *big.Int
	Value    *big.Int
}

func (u UnsignedTransaction) Transaction() *types.Transaction {
	to := u.To
	value := u.Value
	if value == nil {
		value = new(big.Int)
	}

	return types.NewTx(&types.LegacyTx{
		Nonce:    u.Nonce,
		GasPrice: new(big.Int).Set(u.GasPrice),
		Gas:      u.GasLimit,
		To:       &to,
		Value:    new(big.Int).Set(value),
		Data:     common.CopyBytes(u.Data),
	})
}

// SignedTransaction is the opaque broadcast payload.
type SignedTransaction struct {
	tx *types.Transaction
}

func NewSignedTransaction(tx *types.Transaction) *SignedTransaction {
	return &SignedTransaction{tx: tx}
}

func (s *SignedTransaction) Hash() common.Hash {
	return s.tx.Hash()
}

func (s *SignedTransaction) Nonce() uint64 {
	return s.tx.Nonce()
}

func (s *SignedTransaction) Transaction() *types.Transaction {
	return s.tx
}

type Receipt struct {
	Hash        common.Hash
	Status      ReceiptStatus
	BlockNumber uint64
	Logs        []*types.Log
}

func (r *Receipt) Succeeded() bool {
	return r.Status == StatusSuccess
}

// PendingSubmission is owned by exactly one submission until it reaches a
// terminal state.
type PendingSubmission struct {
	ID               string
	Account          common.Address
	Contract         string
	Method           string
	Nonce            uint64
	Signed           *SignedTransaction
	SubmittedAt      time.Time
	RetriesRemaining int
}

func toReceipt(r *types.Receipt) *Receipt {
	status := StatusReverted
	if r.Status == types.ReceiptStatusSuccessful {
		status = StatusSuccess
	}

	var blockNumber uint64
	if r.BlockNumber != nil {
		blockNumber = r.BlockNumber.Uint64()
	}

	return &Receipt{
		Hash:        r.TxHash,
		Status:      status,
		BlockNumber: blockNumber,
		Logs:        r.Logs,
	}
}

type SubmissionStatus string

const (
	SubmissionSigned        SubmissionStatus = "signed"
	SubmissionBroadcast     SubmissionStatus = "broadcast"
	SubmissionConfirmed     SubmissionStatus = "confirmed"
	SubmissionReverted      SubmissionStatus = "reverted"
	SubmissionIndeterminate SubmissionStatus = "indeterminate"
	SubmissionFailed        SubmissionStatus = "failed"
)

// SubmissionEvent is one state transition of a PendingSubmission as reported
// to the journal.
type SubmissionEvent struct {
	ID          string
	Account     common.Address
	Contract    string
	Method      string
	Nonce       uint64
	TxHash      common.Hash
	Status      SubmissionStatus
	BlockNumber uint64
	Error       string
	At          time.Time
}
