package contract

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Caller . Caller
type Caller interface {
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)
}
