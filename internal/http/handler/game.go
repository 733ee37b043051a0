package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"astralnexus/internal/core"
	"astralnexus/internal/http/handler/middleware"
	"astralnexus/internal/http/payload"
	"astralnexus/internal/txerr"

	"go.uber.org/zap"
)

var (
	Index                = "GET /{$}"
	CreateCharacter      = "POST /character/create"
	GetCharacter         = "GET /character/{id}"
	GetTokenBalance      = "GET /token/balance/{address}"
	GetExchangeRates     = "GET /exchange/rates"
	CreateItem           = "POST /item/create"
	GetTransactionStatus = "GET /transactions/{hash}"
	Authenticate         = "POST /auth/token"
	Health               = "GET /healthz"
	Metrics              = "GET /metrics"
)

type GameHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	game             GameService
}

func NewGameHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, gameService GameService) *GameHandler {
	return &GameHandler{
		logs:             logger,
		requestValidator: requestValidator,
		game:             gameService,
	}
}

func (h *GameHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.respond(w, toIndexResponse(h.game.Info()), http.StatusOK, requestID(r))
}

func (h *GameHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"status": "ok"}, http.StatusOK, requestID(r))
}

func (h *GameHandler) HandleCreateCharacter(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.CharacterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respondInvalid(w, "Could not create character", err, CreateCharacter, requestId)
		return
	}

	h.logs.Infow("character creation request received",
		"player", payload.PlayerAddress,
		"class", payload.CharacterClass,
		"handler", CreateCharacter,
		"request_id", requestId)

	result, err := h.game.CreateCharacter(r.Context(), payload.ToMessage())
	if err != nil {
		h.respondWriteFailure(w, "Could not create character", err, CreateCharacter, requestId)
		return
	}

	h.logs.Infow("character created",
		"tx_hash", result.TransactionHash.Hex(),
		"block_number", result.BlockNumber,
		"handler", CreateCharacter,
		"request_id", requestId)

	h.respond(w, toTxResponse(result), http.StatusOK, requestId)
}

func (h *GameHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.ItemRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respondInvalid(w, "Could not create item", err, CreateItem, requestId)
		return
	}

	h.logs.Infow("item creation request received",
		"player", payload.PlayerAddress,
		"name", payload.Name,
		"handler", CreateItem,
		"request_id", requestId)

	result, err := h.game.CreateItem(r.Context(), payload.ToMessage())
	if err != nil {
		h.respondWriteFailure(w, "Could not create item", err, CreateItem, requestId)
		return
	}

	h.respond(w, toTxResponse(result), http.StatusOK, requestId)
}

func (h *GameHandler) HandleGetCharacter(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	idRequest := payload.CharacterIDRequest{ID: r.PathValue("id")}
	if err := idRequest.Validate(); err != nil {
		h.respondInvalid(w, "Could not retrieve character", err, GetCharacter, requestId)
		return
	}

	character, err := h.game.GetCharacter(r.Context(), idRequest.ToID())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve character",
			Error:   err.Error(),
			Kind:    txerr.KindOf(err),
		}, http.StatusNotFound,
			requestId)
		h.logs.Errorw("failed to get character",
			"error", err,
			"character_id", idRequest.ID,
			"handler", GetCharacter,
			"request_id", requestId)
		return
	}

	h.respond(w, toCharacterResponse(character), http.StatusOK, requestId)
}

func (h *GameHandler) HandleGetTokenBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	balanceRequest := payload.BalanceRequest{Address: r.PathValue("address")}
	if err := balanceRequest.Validate(); err != nil {
		h.respondInvalid(w, "Could not retrieve balance", err, GetTokenBalance, requestId)
		return
	}

	balance, err := h.game.GetTokenBalance(r.Context(), balanceRequest.ToAddress())
	if err != nil {
		h.respondReadFailure(w, "Could not retrieve balance", err, GetTokenBalance, requestId)
		return
	}

	h.respond(w, BalanceResponse{Balance: balance}, http.StatusOK, requestId)
}

func (h *GameHandler) HandleGetExchangeRates(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	rates, err := h.game.GetExchangeRates(r.Context())
	if err != nil {
		h.respondReadFailure(w, "Could not retrieve exchange rates", err, GetExchangeRates, requestId)
		return
	}

	h.respond(w, RatesResponse{
		GameToEdu: rates.GameToEdu,
		EduToGame: rates.EduToGame,
	}, http.StatusOK, requestId)
}

func (h *GameHandler) HandleGetTransactionStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	txRequest := payload.TransactionRequest{Hash: r.PathValue("hash")}
	if err := txRequest.Validate(); err != nil {
		h.respondInvalid(w, "Could not retrieve transaction", err, GetTransactionStatus, requestId)
		return
	}

	status, err := h.game.GetTransactionStatus(r.Context(), txRequest.ToHash())
	if err != nil {
		httpCode := http.StatusBadGateway
		if errors.Is(err, core.ErrTransactionNotFound) {
			httpCode = http.StatusNotFound
		}
		h.respond(w, Response{
			Message: "Could not retrieve transaction",
			Error:   err.Error(),
			Kind:    txerr.KindOf(err),
		}, httpCode,
			requestId)
		h.logs.Errorw("failed to get transaction status",
			"error", err,
			"tx_hash", txRequest.Hash,
			"handler", GetTransactionStatus,
			"request_id", requestId)
		return
	}

	h.respond(w, toTransactionStatusResponse(status), http.StatusOK, requestId)
}

func (h *GameHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.game.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		var httpCode int
		switch {
		case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrIncorrectPassword):
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		case errors.Is(err, core.ErrAuthDisabled):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		default:
			httpCode = http.StatusInternalServerError
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *GameHandler) respondInvalid(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		Kind:    txerr.KindValidation,
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

// respondWriteFailure reports a failed contract write. Every failure is a
// 400; kind tells a revert apart from a timeout, and the transaction hash is
// included whenever one was broadcast.
func (h *GameHandler) respondWriteFailure(w http.ResponseWriter, message string, err error, handler, requestId string) {
	resp := Response{
		Message: message,
		Error:   fmt.Sprintf("Transaction failed: %s", err),
		Kind:    txerr.KindOf(err),
	}
	if hash, ok := txerr.TxHash(err); ok {
		resp.TransactionHash = hash.Hex()
	}

	h.respond(w, resp, http.StatusBadRequest, requestId)
	h.logs.Errorw("contract write failed",
		"error", err,
		"kind", resp.Kind,
		"tx_hash", resp.TransactionHash,
		"handler", handler,
		"request_id", requestId)
}

func (h *GameHandler) respondReadFailure(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
		Kind:    txerr.KindOf(err),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("contract read failed",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *GameHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	body, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
