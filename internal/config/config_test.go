package config_test

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"astralnexus/internal/config"
	"astralnexus/internal/contract"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var _ = Describe("App", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		GinkgoT().Setenv("ADMIN_PRIVATE_KEY", testKey)
	})

	JustBeforeEach(func() {
		app, err = config.Parse()
	})

	It("should apply the defaults", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Port).To(Equal("8000"))
		Expect(app.RPCURL).To(Equal("https://rpc.open-campus-codex.gelato.digital"))
		Expect(app.GasLimit).To(Equal(uint64(2_000_000)))
		Expect(app.SubmissionTimeout).To(Equal(2 * time.Minute))
		Expect(app.ReceiptPollInterval).To(Equal(2 * time.Second))
		Expect(app.ContractAddresses()[contract.Character]).To(Equal(common.HexToAddress("0x3E2F5568494fF67de705fA6BAaB2D8262AB3c7EE")))
		Expect(app.JournalEnabled()).To(BeFalse())
		Expect(app.AuthEnabled()).To(BeFalse())
		Expect(app.RateLimitTrustProxy).To(BeFalse())
	})

	It("should read the key and remove it from the environment", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(app.AdminPrivateKey.Reveal()).To(Equal(testKey))
		_, present := os.LookupEnv("ADMIN_PRIVATE_KEY")
		Expect(present).To(BeFalse())
	})

	It("should never print the key", func() {
		Expect(fmt.Sprintf("%v %+v %#v %s", app, app, app, app.AdminPrivateKey)).NotTo(ContainSubstring(testKey))

		encoded, marshalErr := json.Marshal(app)
		Expect(marshalErr).NotTo(HaveOccurred())
		Expect(string(encoded)).NotTo(ContainSubstring(testKey))

		core, logs := observer.New(zap.InfoLevel)
		zap.New(core).Sugar().Infow("config loaded", "config", app, "key", app.AdminPrivateKey)
		for _, entry := range logs.All() {
			Expect(fmt.Sprint(entry.ContextMap())).NotTo(ContainSubstring(testKey))
		}
	})

	When("overrides are set", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("API_PORT", "9090")
			GinkgoT().Setenv("BROADCAST_RETRIES", "5")
			GinkgoT().Setenv("SUBMISSION_TIMEOUT", "45s")
			GinkgoT().Setenv("TOKEN_CONTRACT_ADDRESS", "0x00000000000000000000000000000000000000aa")
			GinkgoT().Setenv("DB_CONNECTION_URL", "file::memory:")
			GinkgoT().Setenv("DB_DRIVER", "sqlite")
		})

		It("should use them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("9090"))
			Expect(app.BroadcastRetries).To(Equal(uint64(5)))
			Expect(app.SubmissionTimeout).To(Equal(45 * time.Second))
			Expect(app.TokenAddress).To(Equal(common.HexToAddress("0xaa")))
			Expect(app.JournalEnabled()).To(BeTrue())
			Expect(app.DBDriver).To(Equal("sqlite"))
		})
	})

	When("the signing key is missing", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("ADMIN_PRIVATE_KEY", "")
			Expect(os.Unsetenv("ADMIN_PRIVATE_KEY")).To(Succeed())
		})

		It("should fail", func() {
			Expect(err).To(MatchError(ContainSubstring("ADMIN_PRIVATE_KEY")))
		})
	})

	When("an address is malformed", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("EXCHANGE_CONTRACT_ADDRESS", "0x1234")
		})

		It("should fail", func() {
			Expect(err).To(MatchError(ContainSubstring("parse environment")))
		})
	})

	When("a duration is malformed", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("RECEIPT_POLL_INTERVAL", "soon")
		})

		It("should fail", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("the gas limit is zero", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("GAS_LIMIT", "0")
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})
	})

	When("auth is enabled without an operator password", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("JWT_SECRET", "s3cret")
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("OPERATOR_PASSWORD_HASH")))
		})
	})
})
