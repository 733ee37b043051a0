package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"astralnexus/internal/contract"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig error = errors.New("invalid configuration")

const redacted = "[REDACTED]"

// Secret holds a credential read from the environment. It prints as
// [REDACTED] through fmt, zap and encoding/json.
type Secret string

func (s Secret) String() string   { return redacted }
func (s Secret) GoString() string { return redacted }

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// Reveal returns the raw value. Call it only where the credential is used.
func (s Secret) Reveal() string { return string(s) }

type App struct {
	Port         string `env:"API_PORT" envDefault:"8000"`
	RPCURL       string `env:"RPC_URL" envDefault:"https://rpc.open-campus-codex.gelato.digital"`
	ContractsDir string `env:"CONTRACTS_DIR" envDefault:"contracts"`

	TokenAddress     common.Address `env:"TOKEN_CONTRACT_ADDRESS" envDefault:"0xA2C7CaEf4aA9a3da0eaEd89C70Efff1b8818A156"`
	ItemsAddress     common.Address `env:"ITEMS_CONTRACT_ADDRESS" envDefault:"0xd9BfD73FE6B7481fF056Bf31239c2c4F019c0542"`
	CharacterAddress common.Address `env:"CHARACTER_CONTRACT_ADDRESS" envDefault:"0x3E2F5568494fF67de705fA6BAaB2D8262AB3c7EE"`
	ExchangeAddress  common.Address `env:"EXCHANGE_CONTRACT_ADDRESS" envDefault:"0xA6B0321Cc05672FF44F4E907A54465c0DEf74E77"`

	// Removed from the process environment once read.
	AdminPrivateKey Secret `env:"ADMIN_PRIVATE_KEY,required,notEmpty,unset"`

	GasLimit            uint64        `env:"GAS_LIMIT" envDefault:"2000000"`
	ChainCallTimeout    time.Duration `env:"CHAIN_CALL_TIMEOUT" envDefault:"10s"`
	ChainReadRetries    uint64        `env:"CHAIN_READ_RETRIES" envDefault:"3"`
	ChainRetryInterval  time.Duration `env:"CHAIN_RETRY_INTERVAL" envDefault:"200ms"`
	BroadcastRetries    uint64        `env:"BROADCAST_RETRIES" envDefault:"3"`
	BroadcastBackoff    time.Duration `env:"BROADCAST_BACKOFF" envDefault:"500ms"`
	ReceiptPollInterval time.Duration `env:"RECEIPT_POLL_INTERVAL" envDefault:"2s"`
	ReceiptPollTimeout  time.Duration `env:"RECEIPT_POLL_TIMEOUT" envDefault:"5s"`
	SubmissionTimeout   time.Duration `env:"SUBMISSION_TIMEOUT" envDefault:"2m"`

	// The submission journal is disabled when DB_CONNECTION_URL is empty.
	DBDriver        string `env:"DB_DRIVER" envDefault:"postgres"`
	DBConnectionURL Secret `env:"DB_CONNECTION_URL,unset"`

	// Operator auth is disabled when JWT_SECRET is empty.
	JWTSecret            Secret `env:"JWT_SECRET,unset"`
	OperatorUsername     string `env:"OPERATOR_USERNAME" envDefault:"operator"`
	OperatorPasswordHash string `env:"OPERATOR_PASSWORD_HASH"`

	RateLimitRPM   float64 `env:"RATE_LIMIT_RPM" envDefault:"30"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"5"`

	// Only set behind a reverse proxy that overwrites X-Real-IP and X-Forwarded-For.
	RateLimitTrustProxy bool `env:"RATE_LIMIT_TRUST_PROXY" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// NewApp reads the configuration from the environment, after loading a .env
// file from the working directory when one exists. Variables already set in
// the environment win over the file.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (App, error) {
	var app App
	if err := env.Parse(&app); err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := app.Validate(); err != nil {
		return App{}, err
	}

	return app, nil
}

func (a App) Validate() error {
	var errs error
	if a.GasLimit == 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: GAS_LIMIT must be positive", ErrInvalidConfig))
	}
	if a.ChainCallTimeout <= 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: CHAIN_CALL_TIMEOUT must be positive", ErrInvalidConfig))
	}
	if a.ReceiptPollInterval <= 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: RECEIPT_POLL_INTERVAL must be positive", ErrInvalidConfig))
	}
	if a.SubmissionTimeout < a.ReceiptPollInterval {
		errs = errors.Join(errs, fmt.Errorf("%w: SUBMISSION_TIMEOUT must not be shorter than RECEIPT_POLL_INTERVAL", ErrInvalidConfig))
	}
	if a.JWTSecret != "" && a.OperatorPasswordHash == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: OPERATOR_PASSWORD_HASH is required when JWT_SECRET is set", ErrInvalidConfig))
	}
	for name, address := range a.ContractAddresses() {
		if address == (common.Address{}) {
			errs = errors.Join(errs, fmt.Errorf("%w: %s contract address is zero", ErrInvalidConfig, name))
		}
	}
	return errs
}

func (a App) ContractAddresses() map[contract.Name]common.Address {
	return map[contract.Name]common.Address{
		contract.Token:     a.TokenAddress,
		contract.Items:     a.ItemsAddress,
		contract.Character: a.CharacterAddress,
		contract.Exchange:  a.ExchangeAddress,
	}
}

func (a App) JournalEnabled() bool {
	return a.DBConnectionURL != ""
}

func (a App) AuthEnabled() bool {
	return a.JWTSecret != ""
}
