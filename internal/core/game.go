package core

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"astralnexus/internal/contract"
	"astralnexus/internal/ethereum"
	"astralnexus/internal/journal"
	"astralnexus/internal/txerr"
	tokenIssuer "astralnexus/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrAuthDisabled error = errors.New("operator authentication is not configured")
var ErrTransactionNotFound error = errors.New("transaction not found")

const (
	operatorRole = "operator"
	tokenTTL     = 24 * time.Hour
)

// Methods the gateway calls on each contract. Startup fails when a loaded
// interface definition lacks any of them.
var RequiredMethods = map[contract.Name][]string{
	contract.Token:     {"balanceOf"},
	contract.Items:     {"createItem"},
	contract.Character: {"createCharacter", "getCharacter"},
	contract.Exchange:  {"rateGameToEdu", "rateEduToGame"},
}

// Game dispatches gateway requests to contract reads and transaction
// submissions. It holds no mutable state and is safe for concurrent use.
type Game struct {
	logs      *zap.SugaredLogger
	contracts contract.Set
	proxy     ContractProxy
	submitter Submitter
	receipts  ReceiptSource
	journal   Journal
	jwtIssuer JWTIssuer
	operator  Operator
}

// NewGame is a constructor function for the Game type. submissions and jwt
// may be nil when the respective feature is disabled.
func NewGame(
	logger *zap.SugaredLogger,
	contracts contract.Set,
	proxy ContractProxy,
	submitter Submitter,
	receipts ReceiptSource,
	submissions Journal,
	jwt JWTIssuer,
	operator Operator,
) *Game {
	return &Game{
		logs:      logger,
		contracts: contracts,
		proxy:     proxy,
		submitter: submitter,
		receipts:  receipts,
		journal:   submissions,
		jwtIssuer: jwt,
		operator:  operator,
	}
}

// CheckContracts verifies that every loaded binding declares the methods the
// gateway relies on.
func CheckContracts(contracts contract.Set) error {
	var errs error
	for name, methods := range RequiredMethods {
		b, ok := contracts.Get(name)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("contract %s is not loaded", name))
			continue
		}
		errs = errors.Join(errs, b.Require(methods...))
	}
	return errs
}

// Info returns the deployed addresses the gateway talks to.
func (g *Game) Info() Contracts {
	return Contracts{
		Token:     g.contracts.Token.Address,
		Items:     g.contracts.Items.Address,
		Character: g.contracts.Character.Address,
		Exchange:  g.contracts.Exchange.Address,
	}
}

// CreateCharacter submits character.createCharacter and waits for the receipt.
func (g *Game) CreateCharacter(ctx context.Context, msg CharacterMessage) (TxResult, error) {
	if len(msg.AttributeNames) != len(msg.AttributeValues) {
		return TxResult{}, &txerr.ValidationError{
			Field: "attribute_values",
			Err:   errors.New("must have the same length as attribute_names"),
		}
	}

	intent, err := g.proxy.BuildTransactIntent(g.contracts.Character, "createCharacter", g.submitter.Account(),
		msg.PlayerAddress,
		msg.CharacterClass,
		msg.AttributeNames,
		msg.AttributeValues,
	)
	if err != nil {
		return TxResult{}, fmt.Errorf("build createCharacter intent: %w", err)
	}

	g.logs.Infow("submitting character creation",
		"player", msg.PlayerAddress.Hex(),
		"class", msg.CharacterClass)

	return g.submit(ctx, intent)
}

// CreateItem submits items.createItem and waits for the receipt.
func (g *Game) CreateItem(ctx context.Context, msg ItemMessage) (TxResult, error) {
	if len(msg.PropertyNames) != len(msg.PropertyValues) {
		return TxResult{}, &txerr.ValidationError{
			Field: "property_values",
			Err:   errors.New("must have the same length as property_names"),
		}
	}

	intent, err := g.proxy.BuildTransactIntent(g.contracts.Items, "createItem", g.submitter.Account(),
		msg.PlayerAddress,
		msg.Name,
		msg.ItemType,
		msg.Rarity,
		msg.Level,
		msg.Stats,
		msg.PropertyNames,
		msg.PropertyValues,
		msg.Tradeable,
		msg.Soulbound,
	)
	if err != nil {
		return TxResult{}, fmt.Errorf("build createItem intent: %w", err)
	}

	g.logs.Infow("submitting item creation",
		"player", msg.PlayerAddress.Hex(),
		"name", msg.Name)

	return g.submit(ctx, intent)
}

// GetCharacter reads a character record by id.
func (g *Game) GetCharacter(ctx context.Context, id *big.Int) (Character, error) {
	values, err := g.proxy.Read(ctx, g.contracts.Character, "getCharacter", id)
	if err != nil {
		return Character{}, fmt.Errorf("read character %s: %w", id, err)
	}

	character, err := toCharacter(values)
	if err != nil {
		return Character{}, &txerr.DecodingError{Contract: string(contract.Character), Method: "getCharacter", Err: err}
	}

	return character, nil
}

// GetTokenBalance reads the token balance of address.
func (g *Game) GetTokenBalance(ctx context.Context, address common.Address) (*big.Int, error) {
	values, err := g.proxy.Read(ctx, g.contracts.Token, "balanceOf", address)
	if err != nil {
		return nil, fmt.Errorf("read balance of %s: %w", address.Hex(), err)
	}

	balance, err := bigAt(values, 0)
	if err != nil {
		return nil, &txerr.DecodingError{Contract: string(contract.Token), Method: "balanceOf", Err: err}
	}

	return balance, nil
}

// GetExchangeRates reads both exchange rates concurrently.
func (g *Game) GetExchangeRates(ctx context.Context) (Rates, error) {
	var rates Rates
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		rate, err := g.readRate(egCtx, "rateGameToEdu")
		rates.GameToEdu = rate
		return err
	})
	eg.Go(func() error {
		rate, err := g.readRate(egCtx, "rateEduToGame")
		rates.EduToGame = rate
		return err
	})

	if err := eg.Wait(); err != nil {
		return Rates{}, err
	}

	return rates, nil
}

// GetTransactionStatus reports the journaled state of a submission together
// with the chain's current view of its receipt.
func (g *Game) GetTransactionStatus(ctx context.Context, hash common.Hash) (TransactionStatus, error) {
	status := TransactionStatus{Hash: hash}
	journaled := false

	if g.journal != nil {
		sub, err := g.journal.GetByTxHash(ctx, hash)
		switch {
		case err == nil:
			journaled = true
			nonce := sub.Nonce
			status.SubmissionID = sub.ID
			status.Contract = sub.Contract
			status.Method = sub.Method
			status.Nonce = &nonce
			status.Status = sub.Status
			status.BlockNumber = sub.BlockNumber
			status.Error = sub.Error
		case errors.Is(err, journal.ErrSubmissionNotFound):
		default:
			g.logs.Errorw("journal lookup failed", "tx_hash", hash.Hex(), "error", err)
		}
	}

	receipt, found, err := g.receipts.PollReceipt(ctx, hash, 0)
	if err != nil {
		return TransactionStatus{}, fmt.Errorf("get receipt %s: %w", hash.Hex(), err)
	}

	switch {
	case found && receipt.Succeeded():
		status.Status = string(ethereum.SubmissionConfirmed)
		status.BlockNumber = receipt.BlockNumber
	case found:
		status.Status = string(ethereum.SubmissionReverted)
		status.BlockNumber = receipt.BlockNumber
	case !journaled:
		return TransactionStatus{}, ErrTransactionNotFound
	}

	return status, nil
}

// Authenticate checks the operator credentials and issues a signed token.
func (g *Game) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	if g.jwtIssuer == nil || g.operator.PasswordHash == "" {
		return "", ErrAuthDisabled
	}

	if subtle.ConstantTimeCompare([]byte(msg.Username), []byte(g.operator.Username)) != 1 {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(g.operator.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   g.operator.Username,
		Subject:    g.operator.Username,
		Role:       operatorRole,
		Expiration: tokenTTL,
	}
	token := g.jwtIssuer.Generate(tokenInfo)
	signed, err := g.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	g.logs.Infow("operator authenticated", "username", g.operator.Username)
	return signed, nil
}

func (g *Game) submit(ctx context.Context, intent contract.Intent) (TxResult, error) {
	receipt, err := g.submitter.Submit(ctx, intent)
	if err != nil {
		return TxResult{}, err
	}

	return TxResult{
		TransactionHash: receipt.Hash,
		BlockNumber:     receipt.BlockNumber,
	}, nil
}

func (g *Game) readRate(ctx context.Context, method string) (*big.Int, error) {
	values, err := g.proxy.Read(ctx, g.contracts.Exchange, method)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", method, err)
	}

	rate, err := bigAt(values, 0)
	if err != nil {
		return nil, &txerr.DecodingError{Contract: string(contract.Exchange), Method: method, Err: err}
	}
	return rate, nil
}

func toCharacter(values []any) (Character, error) {
	if len(values) != 5 {
		return Character{}, fmt.Errorf("expected 5 values, got %d", len(values))
	}

	class, ok := values[0].(string)
	if !ok {
		return Character{}, fmt.Errorf("class: unexpected type %T", values[0])
	}
	level, err := bigAt(values, 1)
	if err != nil {
		return Character{}, err
	}
	exp, err := bigAt(values, 2)
	if err != nil {
		return Character{}, err
	}
	equipped, ok := values[3].([]*big.Int)
	if !ok {
		return Character{}, fmt.Errorf("equipped items: unexpected type %T", values[3])
	}
	lastLogin, err := bigAt(values, 4)
	if err != nil {
		return Character{}, err
	}

	return Character{
		Class:         class,
		Level:         level,
		Exp:           exp,
		EquippedItems: equipped,
		LastLogin:     lastLogin,
	}, nil
}

func bigAt(values []any, i int) (*big.Int, error) {
	if i >= len(values) {
		return nil, fmt.Errorf("missing value %d", i)
	}
	n, ok := values[i].(*big.Int)
	if !ok || n == nil {
		return nil, fmt.Errorf("value %d: unexpected type %T", i, values[i])
	}
	return n, nil
}
