package handler

import (
	"math/big"

	"astralnexus/internal/core"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

const welcomeMessage = "Welcome to Astral Nexus Game API"

type Response struct {
	Message         string `json:"message,omitempty"`          // short message for humans
	Error           string `json:"error,omitempty"`            // error detail (if any)
	Kind            string `json:"kind,omitempty"`             // error taxonomy kind
	TransactionHash string `json:"transaction_hash,omitempty"` // set when a transaction was broadcast
}

type IndexResponse struct {
	Message   string            `json:"message"`
	Contracts ContractAddresses `json:"contracts"`
}

type ContractAddresses struct {
	Token     string `json:"token"`
	Items     string `json:"items"`
	Character string `json:"character"`
	Exchange  string `json:"exchange"`
}

type TxResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transaction_hash"`
	BlockNumber     uint64 `json:"block_number"`
}

type CharacterResponse struct {
	Class         string     `json:"class"`
	Level         *big.Int   `json:"level"`
	Exp           *big.Int   `json:"exp"`
	EquippedItems []*big.Int `json:"equippedItems"`
	LastLogin     *big.Int   `json:"lastLogin"`
}

type BalanceResponse struct {
	Balance *big.Int `json:"balance"`
}

type RatesResponse struct {
	GameToEdu *big.Int `json:"gameToEdu"`
	EduToGame *big.Int `json:"eduToGame"`
}

type TransactionStatusResponse struct {
	TransactionHash string  `json:"transaction_hash"`
	Status          string  `json:"status"`
	BlockNumber     uint64  `json:"block_number,omitempty"`
	SubmissionID    string  `json:"submission_id,omitempty"`
	Contract        string  `json:"contract,omitempty"`
	Method          string  `json:"method,omitempty"`
	Nonce           *uint64 `json:"nonce,omitempty"`
	Error           string  `json:"error,omitempty"`
}

func toIndexResponse(c core.Contracts) IndexResponse {
	return IndexResponse{
		Message: welcomeMessage,
		Contracts: ContractAddresses{
			Token:     c.Token.Hex(),
			Items:     c.Items.Hex(),
			Character: c.Character.Hex(),
			Exchange:  c.Exchange.Hex(),
		},
	}
}

func toTxResponse(r core.TxResult) TxResponse {
	return TxResponse{
		Success:         true,
		TransactionHash: r.TransactionHash.Hex(),
		BlockNumber:     r.BlockNumber,
	}
}

func toCharacterResponse(c core.Character) CharacterResponse {
	equipped := c.EquippedItems
	if equipped == nil {
		equipped = []*big.Int{}
	}
	return CharacterResponse{
		Class:         c.Class,
		Level:         c.Level,
		Exp:           c.Exp,
		EquippedItems: equipped,
		LastLogin:     c.LastLogin,
	}
}

func toTransactionStatusResponse(s core.TransactionStatus) TransactionStatusResponse {
	return TransactionStatusResponse{
		TransactionHash: s.Hash.Hex(),
		Status:          s.Status,
		BlockNumber:     s.BlockNumber,
		SubmissionID:    s.SubmissionID,
		Contract:        s.Contract,
		Method:          s.Method,
		Nonce:           s.Nonce,
		Error:           s.Error,
	}
}
