package txerr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Kinds reported to callers. They are stable strings that the HTTP layer
// puts in failure responses.
const (
	KindValidation    = "validation"
	KindEncoding      = "encoding"
	KindDecoding      = "decoding"
	KindNetwork       = "network"
	KindRPC           = "rpc"
	KindNonceConflict = "nonce_conflict"
	KindReverted      = "reverted"
	KindIndeterminate = "indeterminate"
	KindCanceled      = "canceled"
	KindInternal      = "internal"
)

// ValidationError is malformed caller input, rejected before any network call.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// EncodingError means the arguments do not match the method signature of the
// loaded interface definition.
type EncodingError struct {
	Contract string
	Method   string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %s.%s: %s", e.Contract, e.Method, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// DecodingError means the chain returned bytes that do not match the declared
// outputs of the method.
type DecodingError struct {
	Contract string
	Method   string
	Err      error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decode %s.%s: %s", e.Contract, e.Method, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// NetworkError is a transient transport failure. Safe to retry.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %s", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RPCError is an explicit rejection by the remote endpoint.
type RPCError struct {
	Op   string
	Code int
	Err  error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: rpc error %d: %s", e.Op, e.Code, e.Err)
}

func (e *RPCError) Unwrap() error { return e.Err }

var nonceConflictMessages = []string{
	"nonce too low",
	"already known",
	"known transaction",
	"replacement transaction underpriced",
}

// IsNonceConflict reports whether the rejection was caused by the nonce the
// transaction carried rather than by its content.
func (e *RPCError) IsNonceConflict() bool {
	if e.Err == nil {
		return false
	}
	msg := strings.ToLower(e.Err.Error())
	for _, m := range nonceConflictMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// IsAlreadyKnown reports whether the node already holds this exact
// transaction, which is what a repeated broadcast of a delivered transaction
// looks like.
func (e *RPCError) IsAlreadyKnown() bool {
	if e.Err == nil {
		return false
	}
	msg := strings.ToLower(e.Err.Error())
	return strings.Contains(msg, "already known") || strings.Contains(msg, "known transaction")
}

// NonceConflictError is a detected nonce collision or gap for an account.
type NonceConflictError struct {
	Account common.Address
	Nonce   uint64
	Err     error
}

func (e *NonceConflictError) Error() string {
	return fmt.Sprintf("nonce %d conflict for %s: %s", e.Nonce, e.Account.Hex(), e.Err)
}

func (e *NonceConflictError) Unwrap() error { return e.Err }

// RevertedError is a mined transaction whose contract logic rejected the
// operation. It is a business failure, not a system fault.
type RevertedError struct {
	TxHash      common.Hash
	BlockNumber uint64
}

func (e *RevertedError) Error() string {
	return fmt.Sprintf("transaction %s reverted in block %d", e.TxHash.Hex(), e.BlockNumber)
}

// IndeterminateError is a broadcast transaction without a receipt after the
// submission timeout. It may still be mined later.
type IndeterminateError struct {
	TxHash common.Hash
	Waited time.Duration
}

func (e *IndeterminateError) Error() string {
	return fmt.Sprintf("transaction %s not mined after %s", e.TxHash.Hex(), e.Waited)
}

// SubmissionError carries the account, nonce and method of a failed write.
type SubmissionError struct {
	Account       common.Address
	Method        string
	Nonce         uint64
	NonceAssigned bool
	Err           error
}

func (e *SubmissionError) Error() string {
	if !e.NonceAssigned {
		return fmt.Sprintf("submit %s from %s: %s", e.Method, e.Account.Hex(), e.Err)
	}
	return fmt.Sprintf("submit %s from %s with nonce %d: %s", e.Method, e.Account.Hex(), e.Nonce, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// KindOf maps an error to its taxonomy kind.
func KindOf(err error) string {
	var (
		validationErr    *ValidationError
		encodingErr      *EncodingError
		decodingErr      *DecodingError
		networkErr       *NetworkError
		rpcErr           *RPCError
		nonceConflictErr *NonceConflictError
		revertedErr      *RevertedError
		indeterminateErr *IndeterminateError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &revertedErr):
		return KindReverted
	case errors.As(err, &indeterminateErr):
		return KindIndeterminate
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &encodingErr):
		return KindEncoding
	case errors.As(err, &decodingErr):
		return KindDecoding
	case errors.As(err, &nonceConflictErr):
		return KindNonceConflict
	case errors.As(err, &rpcErr):
		return KindRPC
	case errors.As(err, &networkErr):
		return KindNetwork
	case errors.Is(err, context.Canceled):
		return KindCanceled
	default:
		return KindInternal
	}
}

// TxHash returns the transaction hash attached to a reverted or indeterminate
// submission, if any.
func TxHash(err error) (common.Hash, bool) {
	var revertedErr *RevertedError
	if errors.As(err, &revertedErr) {
		return revertedErr.TxHash, true
	}
	var indeterminateErr *IndeterminateError
	if errors.As(err, &indeterminateErr) {
		return indeterminateErr.TxHash, true
	}
	return common.Hash{}, false
}
