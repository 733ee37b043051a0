package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"astralnexus/internal/config"
	"astralnexus/internal/contract"
	"astralnexus/internal/core"
	"astralnexus/internal/db"
	"astralnexus/internal/ethereum"
	"astralnexus/internal/http/handler"
	"astralnexus/internal/http/handler/middleware"
	"astralnexus/internal/http/payload"
	"astralnexus/internal/http/server"
	"astralnexus/internal/journal"
	"astralnexus/internal/metrics"
	"astralnexus/internal/nonce"
	"astralnexus/internal/signer"
	"astralnexus/internal/submitter"
	"astralnexus/pkg/jwt"
	"astralnexus/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

const serviceName = "astralnexus"

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewZapLogger(serviceName, log.ParseLevel(config.LogLevel), config.LogFile)
	defer func() { _ = logger.Sync() }()

	client, err := ethclient.Dial(config.RPCURL)
	if err != nil {
		logger.Errorw("rpc connection failed", "error", err, "rpc_url", config.RPCURL)
		return err
	}
	defer client.Close()

	chainClient := ethereum.NewChainClient(client, ethereum.ClientConfig{
		CallTimeout:   config.ChainCallTimeout,
		ReadRetries:   config.ChainReadRetries,
		RetryInterval: config.ChainRetryInterval,
	})

	chainID, err := chainClient.ChainID(context.Background())
	if err != nil {
		logger.Errorw("failed to read chain id", "error", err, "rpc_url", config.RPCURL)
		return err
	}

	keySigner, err := signer.NewKeySigner(config.AdminPrivateKey.Reveal(), chainID)
	if err != nil {
		logger.Errorw("failed to load signing key", "error", err)
		return err
	}

	contracts, err := contract.LoadSet(config.ContractsDir, config.ContractAddresses())
	if err != nil {
		logger.Errorw("failed to load contract definitions", "error", err, "contracts_dir", config.ContractsDir)
		return err
	}
	if err := core.CheckContracts(contracts); err != nil {
		logger.Errorw("contract definitions are incomplete", "error", err)
		return err
	}

	recorder := metrics.New(serviceName)
	sequencer := nonce.NewSequencer(logger, chainClient)

	submissionJournal, closeJournal, err := openJournal(logger, config)
	if err != nil {
		return err
	}
	defer closeJournal()

	// the interfaces stay nil when the journal is disabled
	var journalWriter submitter.Journal
	var journalReader core.Journal
	if submissionJournal != nil {
		journalWriter = submissionJournal
		journalReader = submissionJournal
	}

	txSubmitter := submitter.NewSubmitter(logger, submitter.Config{
		GasLimit:          config.GasLimit,
		ChainID:           new(big.Int).Set(chainID),
		BroadcastRetries:  config.BroadcastRetries,
		BroadcastBackoff:  config.BroadcastBackoff,
		PollInterval:      config.ReceiptPollInterval,
		PollTimeout:       config.ReceiptPollTimeout,
		SubmissionTimeout: config.SubmissionTimeout,
	}, chainClient, sequencer, keySigner, recorder, journalWriter)

	var tokenIssuer core.JWTIssuer
	var tokenValidator middleware.TokenValidator
	if config.AuthEnabled() {
		jwtService := jwt.NewJWTService([]byte(config.JWTSecret.Reveal()))
		tokenIssuer = jwtService
		tokenValidator = jwtService
	}

	game := core.NewGame(
		logger,
		contracts,
		contract.NewProxy(chainClient),
		txSubmitter,
		chainClient,
		journalReader,
		tokenIssuer,
		core.Operator{
			Username:     config.OperatorUsername,
			PasswordHash: config.OperatorPasswordHash,
		})

	// handler
	gameHlr := handler.NewGameHandler(
		logger,
		payload.DecodeValidator{},
		game)

	// middleware
	observability := middleware.NewObservability(serviceName, recorder)
	limiter := middleware.NewRateLimiter(logger, middleware.RateLimit{
		RequestsPerMinute:     config.RateLimitRPM,
		Burst:                 config.RateLimitBurst,
		TrustForwardedHeaders: config.RateLimitTrustProxy,
	})
	auth := middleware.NewAuthMiddleware(logger, tokenValidator)

	mux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, observability.Middleware(pattern)(h))
	}
	writeRoute := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, observability.Middleware(pattern)(limiter.Limit(auth.RequireOperator(h))))
	}

	// register routes
	route(handler.Index, gameHlr.HandleIndex)
	route(handler.Health, gameHlr.HandleHealth)
	route(handler.GetCharacter, gameHlr.HandleGetCharacter)
	route(handler.GetTokenBalance, gameHlr.HandleGetTokenBalance)
	route(handler.GetExchangeRates, gameHlr.HandleGetExchangeRates)
	route(handler.GetTransactionStatus, gameHlr.HandleGetTransactionStatus)
	writeRoute(handler.CreateCharacter, gameHlr.HandleCreateCharacter)
	writeRoute(handler.CreateItem, gameHlr.HandleCreateItem)
	mux.Handle(handler.Authenticate, observability.Middleware(handler.Authenticate)(limiter.Limit(http.HandlerFunc(gameHlr.HandleAuthenticate))))
	mux.Handle(handler.Metrics, recorder.Handler())

	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	logger.Infow("gateway configured",
		"chain_id", chainID.String(),
		"account", keySigner.Address().Hex(),
		"contracts", game.Info(),
		"journal", submissionJournal != nil,
		"operator_auth", config.AuthEnabled())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func openJournal(logger *zap.SugaredLogger, config config.App) (*journal.Journal, func(), error) {
	if !config.JournalEnabled() {
		return nil, func() {}, nil
	}

	dbConn, err := db.NewGormDB(config.DBDriver, config.DBConnectionURL.Reveal())
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return nil, nil, err
	}
	closeDB := func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}

	submissions := journal.NewJournal(dbConn)
	if err := submissions.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		closeDB()
		return nil, nil, err
	}

	return submissions, closeDB, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
