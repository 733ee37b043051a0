package payload

import (
	"errors"

	"astralnexus/internal/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

type CharacterRequest struct {
	PlayerAddress   string   `json:"player_address"`
	CharacterClass  string   `json:"character_class"`
	AttributeNames  []string `json:"attribute_names"`
	AttributeValues []uint64 `json:"attribute_values"`
}

func (c CharacterRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.PlayerAddress, validation.Required, hexAddress),
		validation.Field(&c.CharacterClass, validation.Required),
		validation.Field(&c.AttributeNames, validation.Each(validation.Required)),
		validation.Field(&c.AttributeValues, validation.By(func(any) error {
			if len(c.AttributeValues) != len(c.AttributeNames) {
				return errors.New("must have the same length as attribute_names")
			}
			return nil
		})),
	)
}

func (c CharacterRequest) ToMessage() core.CharacterMessage {
	return core.CharacterMessage{
		PlayerAddress:   common.HexToAddress(c.PlayerAddress),
		CharacterClass:  c.CharacterClass,
		AttributeNames:  nonNil(c.AttributeNames),
		AttributeValues: nonNil(c.AttributeValues),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
