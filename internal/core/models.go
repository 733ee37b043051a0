package core

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CharacterMessage struct {
	PlayerAddress   common.Address
	CharacterClass  string
	AttributeNames  []string
	AttributeValues []uint64
}

type ItemMessage struct {
	PlayerAddress  common.Address
	Name           string
	ItemType       uint8
	Rarity         uint8
	Level          uint64
	Stats          []uint64
	PropertyNames  []string
	PropertyValues []string
	Tradeable      bool
	Soulbound      bool
}

type TxResult struct {
	TransactionHash common.Hash
	BlockNumber     uint64
}

type Character struct {
	Class         string
	Level         *big.Int
	Exp           *big.Int
	EquippedItems []*big.Int
	LastLogin     *big.Int
}

type Rates struct {
	GameToEdu *big.Int
	EduToGame *big.Int
}

type Contracts struct {
	Token     common.Address
	Items     common.Address
	Character common.Address
	Exchange  common.Address
}

// TransactionStatus merges what the journal remembers about a submission
// with what the chain reports now.
type TransactionStatus struct {
	Hash         common.Hash
	Status       string
	BlockNumber  uint64
	SubmissionID string
	Contract     string
	Method       string
	Nonce        *uint64
	Error        string
}

type Operator struct {
	Username     string
	PasswordHash string
}
