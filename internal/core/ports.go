package core

import (
	"context"
	"time"

	"astralnexus/internal/contract"
	"astralnexus/internal/ethereum"
	"astralnexus/internal/journal"
	tokenIssuer "astralnexus/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ContractProxy . ContractProxy
type ContractProxy interface {
	Read(ctx context.Context, b *contract.Binding, method string, args ...any) ([]any, error)
	BuildTransactIntent(b *contract.Binding, method string, from common.Address, args ...any) (contract.Intent, error)
}

//counterfeiter:generate -o fake -fake-name Submitter . Submitter
type Submitter interface {
	Account() common.Address
	Submit(ctx context.Context, intent contract.Intent) (*ethereum.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name ReceiptSource . ReceiptSource
type ReceiptSource interface {
	PollReceipt(ctx context.Context, hash common.Hash, timeout time.Duration) (*ethereum.Receipt, bool, error)
}

//counterfeiter:generate -o fake -fake-name Journal . Journal
type Journal interface {
	GetByTxHash(ctx context.Context, hash common.Hash) (journal.Submission, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
