package payload

import (
	"errors"
	"math/big"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var (
	txHashRegex      = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	characterIDRegex = regexp.MustCompile(`^[0-9]{1,78}$`)

	errInvalidAddress = errors.New("must be a 0x-prefixed 20 byte hex address")
)

// hexAddress is a validation rule for 0x-prefixed account addresses.
var hexAddress = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !common.IsHexAddress(s) || len(s) != 2+2*common.AddressLength {
		return errInvalidAddress
	}
	return nil
})

// TransactionRequest is the path parameter of the transaction status route.
type TransactionRequest struct {
	Hash string
}

func (t TransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Hash, validation.Required, validation.Match(txHashRegex).Error("must be a 0x-prefixed 32 byte hex hash")),
	)
}

func (t TransactionRequest) ToHash() common.Hash {
	return common.HexToHash(t.Hash)
}

type BalanceRequest struct {
	Address string
}

func (b BalanceRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Address, validation.Required, hexAddress),
	)
}

func (b BalanceRequest) ToAddress() common.Address {
	return common.HexToAddress(b.Address)
}

// CharacterIDRequest is the path parameter of the character lookup route.
// Ids are uint256 values in decimal.
type CharacterIDRequest struct {
	ID string
}

func (c CharacterIDRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required, validation.Match(characterIDRegex).Error("must be a non-negative decimal integer"), validation.By(fitsUint256)),
	)
}

func (c CharacterIDRequest) ToID() *big.Int {
	id, _ := new(big.Int).SetString(c.ID, 10)
	return id
}

func fitsUint256(value any) error {
	s, _ := value.(string)
	id, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil
	}
	if id.BitLen() > 256 {
		return errors.New("exceeds uint256")
	}
	return nil
}
