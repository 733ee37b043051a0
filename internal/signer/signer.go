package signer

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"astralnexus/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrEmptyKey     = errors.New("signing key is empty")
	ErrInvalidKey   = errors.New("signing key is not a valid secp256k1 private key")
	ErrChainMissing = errors.New("chain id is required")
)

// KeySigner signs transactions with the gateway's operating account. The key
// never leaves this type: it has no accessor and is not printed by any
// formatting verb.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	signer  types.Signer
}

func NewKeySigner(hexKey string, chainID *big.Int) (*KeySigner, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, ErrEmptyKey
	}
	if chainID == nil || chainID.Sign() <= 0 {
		return nil, ErrChainMissing
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		// the parse error can echo key material
		return nil, ErrInvalidKey
	}

	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		signer:  types.LatestSignerForChainID(chainID),
	}, nil
}

func (s *KeySigner) Address() common.Address {
	return s.address
}

func (s *KeySigner) Sign(utx ethereum.UnsignedTransaction) (*ethereum.SignedTransaction, error) {
	if utx.ChainID != nil && utx.ChainID.Cmp(s.signer.ChainID()) != 0 {
		return nil, fmt.Errorf("sign transaction: chain id %s does not match signer chain id %s", utx.ChainID, s.signer.ChainID())
	}
	if utx.GasPrice == nil {
		return nil, errors.New("sign transaction: gas price is required")
	}

	signed, err := types.SignTx(utx.Transaction(), s.signer, s.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	return ethereum.NewSignedTransaction(signed), nil
}

func (s *KeySigner) String() string {
	return fmt.Sprintf("KeySigner(%s)", s.address.Hex())
}

func (s *KeySigner) GoString() string {
	return s.String()
}
