package nonce

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Source . Source
type Source interface {
	GetNonce(ctx context.Context, account common.Address) (uint64, error)
	GetPendingNonce(ctx context.Context, account common.Address) (uint64, error)
}
