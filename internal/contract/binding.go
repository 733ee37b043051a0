package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"astralnexus/internal/txerr"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type Name string

const (
	Token     Name = "token"
	Items     Name = "items"
	Character Name = "character"
	Exchange  Name = "exchange"
)

// DefaultFiles maps each logical contract to the artifact name produced by
// the contracts build.
var DefaultFiles = map[Name]string{
	Token:     "AstralNexusToken.json",
	Items:     "AstralNexusItems.json",
	Character: "AstralNexusCharacter.json",
	Exchange:  "AstralNexusExchange.json",
}

var errMissingABI = errors.New("definition has no abi field")

// Binding pairs a deployed contract address with its interface definition.
// It is loaded once and never mutated, so it is shared without locking.
type Binding struct {
	Name    Name
	Address common.Address
	ABI     abi.ABI
}

type definition struct {
	ABI json.RawMessage `json:"abi"`
}

// ParseBinding builds a binding from a JSON document that exposes the
// interface definition under an "abi" field.
func ParseBinding(name Name, document []byte, address common.Address) (*Binding, error) {
	var def definition
	if err := json.Unmarshal(document, &def); err != nil {
		return nil, fmt.Errorf("unmarshal %s definition: %w", name, err)
	}
	if len(bytes.TrimSpace(def.ABI)) == 0 || bytes.Equal(bytes.TrimSpace(def.ABI), []byte("null")) {
		return nil, fmt.Errorf("parse %s definition: %w", name, errMissingABI)
	}

	parsed, err := abi.JSON(bytes.NewReader(def.ABI))
	if err != nil {
		return nil, fmt.Errorf("parse %s abi: %w", name, err)
	}

	return &Binding{
		Name:    name,
		Address: address,
		ABI:     parsed,
	}, nil
}

func LoadBinding(name Name, path string, address common.Address) (*Binding, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s definition: %w", name, err)
	}

	return ParseBinding(name, document, address)
}

// Require fails with an EncodingError when any of the methods is absent from
// the interface definition.
func (b *Binding) Require(methods ...string) error {
	var errs error
	for _, method := range methods {
		if _, ok := b.ABI.Methods[method]; !ok {
			errs = errors.Join(errs, &txerr.EncodingError{
				Contract: string(b.Name),
				Method:   method,
				Err:      errUnknownMethod,
			})
		}
	}
	return errs
}

// Set holds one binding per logical contract.
type Set struct {
	Token     *Binding
	Items     *Binding
	Character *Binding
	Exchange  *Binding
}

func (s Set) Get(name Name) (*Binding, bool) {
	var b *Binding
	switch name {
	case Token:
		b = s.Token
	case Items:
		b = s.Items
	case Character:
		b = s.Character
	case Exchange:
		b = s.Exchange
	}
	return b, b != nil
}

// LoadSet reads the four interface definitions from dir. Any failure is
// returned; callers treat it as fatal.
func LoadSet(dir string, addresses map[Name]common.Address) (Set, error) {
	var set Set
	var errs error
	for name, file := range DefaultFiles {
		address, ok := addresses[name]
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("no address configured for %s", name))
			continue
		}

		b, err := LoadBinding(name, filepath.Join(dir, file), address)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		switch name {
		case Token:
			set.Token = b
		case Items:
			set.Items = b
		case Character:
			set.Character = b
		case Exchange:
			set.Exchange = b
		}
	}
	if errs != nil {
		return Set{}, errs
	}

	return set, nil
}
