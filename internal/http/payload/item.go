package payload

import (
	"errors"

	"astralnexus/internal/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

type ItemRequest struct {
	PlayerAddress  string   `json:"player_address"`
	Name           string   `json:"name"`
	ItemType       uint8    `json:"item_type"`
	Rarity         uint8    `json:"rarity"`
	Level          uint64   `json:"level"`
	Stats          []uint64 `json:"stats"`
	PropertyNames  []string `json:"property_names"`
	PropertyValues []string `json:"property_values"`
	Tradeable      bool     `json:"tradeable"`
	Soulbound      bool     `json:"soulbound"`
}

func (i ItemRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PlayerAddress, validation.Required, hexAddress),
		validation.Field(&i.Name, validation.Required),
		validation.Field(&i.PropertyNames, validation.Each(validation.Required)),
		validation.Field(&i.PropertyValues, validation.By(func(any) error {
			if len(i.PropertyValues) != len(i.PropertyNames) {
				return errors.New("must have the same length as property_names")
			}
			return nil
		})),
	)
}

func (i ItemRequest) ToMessage() core.ItemMessage {
	return core.ItemMessage{
		PlayerAddress:  common.HexToAddress(i.PlayerAddress),
		Name:           i.Name,
		ItemType:       i.ItemType,
		Rarity:         i.Rarity,
		Level:          i.Level,
		Stats:          nonNil(i.Stats),
		PropertyNames:  nonNil(i.PropertyNames),
		PropertyValues: nonNil(i.PropertyValues),
		Tradeable:      i.Tradeable,
		Soulbound:      i.Soulbound,
	}
}
