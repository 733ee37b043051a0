package handler

import (
	"context"
	"math/big"
	"net/http"

	"astralnexus/internal/core"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name GameService . GameService
type GameService interface {
	Info() core.Contracts
	CreateCharacter(ctx context.Context, msg core.CharacterMessage) (core.TxResult, error)
	CreateItem(ctx context.Context, msg core.ItemMessage) (core.TxResult, error)
	GetCharacter(ctx context.Context, id *big.Int) (core.Character, error)
	GetTokenBalance(ctx context.Context, address common.Address) (*big.Int, error)
	GetExchangeRates(ctx context.Context) (core.Rates, error)
	GetTransactionStatus(ctx context.Context, hash common.Hash) (core.TransactionStatus, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
