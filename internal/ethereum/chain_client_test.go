package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"time"

	"astralnexus/internal/ethereum"
	"astralnexus/internal/ethereum/fake"
	"astralnexus/internal/txerr"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type jsonRPCError struct {
	code int
	msg  string
}

func (e jsonRPCError) Error() string  { return e.msg }
func (e jsonRPCError) ErrorCode() int { return e.code }

var _ rpc.Error = jsonRPCError{}

var _ = Describe("ChainClient", func() {
	var (
		client     *ethereum.ChainClient
		fakeClient *fake.EthClient
		ctx        context.Context
		account    common.Address
		netErr     error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		account = common.HexToAddress("0x00000000000000000000000000000000000000aa")
		netErr = errors.New("dial tcp: connection refused")
		client = ethereum.NewChainClient(fakeClient, ethereum.ClientConfig{
			CallTimeout:   time.Second,
			ReadRetries:   2,
			RetryInterval: time.Millisecond,
		})
	})

	Describe("Call", func() {
		var (
			to  common.Address
			out []byte
			err error
		)

		BeforeEach(func() {
			to = common.HexToAddress("0x00000000000000000000000000000000000000bb")
			fakeClient.CallContractReturns([]byte{0x01, 0x02}, nil)
		})

		JustBeforeEach(func() {
			out, err = client.Call(ctx, to, []byte{0xde, 0xad})
		})

		It("should call the contract at the latest block", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]byte{0x01, 0x02}))
			Expect(fakeClient.CallContractCallCount()).To(Equal(1))
			_, msg, block := fakeClient.CallContractArgsForCall(0)
			Expect(*msg.To).To(Equal(to))
			Expect(msg.Data).To(Equal([]byte{0xde, 0xad}))
			Expect(block).To(BeNil())
		})

		When("the transport fails transiently", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturnsOnCall(0, nil, netErr)
				fakeClient.CallContractReturnsOnCall(1, []byte{0x03}, nil)
			})

			It("should retry the read", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(Equal([]byte{0x03}))
				Expect(fakeClient.CallContractCallCount()).To(Equal(2))
			})
		})

		When("the transport keeps failing", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, netErr)
			})

			It("should give up after the configured retries with a network error", func() {
				var target *txerr.NetworkError
				Expect(errors.As(err, &target)).To(BeTrue())
				Expect(target.Op).To(Equal("eth_call"))
				Expect(fakeClient.CallContractCallCount()).To(Equal(3))
			})
		})

		When("the node rejects the call", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, jsonRPCError{code: 3, msg: "execution reverted"})
			})

			It("should return an rpc error without retrying", func() {
				var target *txerr.RPCError
				Expect(errors.As(err, &target)).To(BeTrue())
				Expect(target.Code).To(Equal(3))
				Expect(fakeClient.CallContractCallCount()).To(Equal(1))
			})
		})

		When("the endpoint answers with a client error status", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, rpc.HTTPError{StatusCode: http.StatusUnauthorized, Status: "401 Unauthorized"})
			})

			It("should classify it as an rpc error", func() {
				var target *txerr.RPCError
				Expect(errors.As(err, &target)).To(BeTrue())
				Expect(target.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the endpoint is overloaded", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, rpc.HTTPError{StatusCode: http.StatusServiceUnavailable, Status: "503 Service Unavailable"})
			})

			It("should classify it as a network error", func() {
				Expect(txerr.KindOf(err)).To(Equal(txerr.KindNetwork))
				Expect(fakeClient.CallContractCallCount()).To(Equal(3))
			})
		})

		When("the caller cancels", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
				fakeClient.CallContractReturns(nil, context.Canceled)
			})

			It("should stop without retrying", func() {
				Expect(errors.Is(err, context.Canceled)).To(BeTrue())
				Expect(txerr.KindOf(err)).To(Equal(txerr.KindCanceled))
				Expect(fakeClient.CallContractCallCount()).To(Equal(1))
			})
		})
	})

	Describe("EstimateFee", func() {
		It("should return the node's gas price", func() {
			fakeClient.SuggestGasPriceReturns(big.NewInt(7_000_000_000), nil)

			fee, err := client.EstimateFee(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fee.GasPrice).To(Equal(big.NewInt(7_000_000_000)))
		})
	})

	Describe("nonces", func() {
		BeforeEach(func() {
			fakeClient.NonceAtReturns(4, nil)
			fakeClient.PendingNonceAtReturns(6, nil)
		})

		It("should read the mined nonce at the latest block", func() {
			nonce, err := client.GetNonce(ctx, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(nonce).To(Equal(uint64(4)))
			_, addr, block := fakeClient.NonceAtArgsForCall(0)
			Expect(addr).To(Equal(account))
			Expect(block).To(BeNil())
		})

		It("should read the pending nonce", func() {
			nonce, err := client.GetPendingNonce(ctx, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(nonce).To(Equal(uint64(6)))
		})
	})

	Describe("Broadcast", func() {
		var signed *ethereum.SignedTransaction

		BeforeEach(func() {
			key, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			tx, err := types.SignTx(
				types.NewTransaction(3, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil),
				types.LatestSignerForChainID(big.NewInt(656476)),
				key)
			Expect(err).NotTo(HaveOccurred())
			signed = ethereum.NewSignedTransaction(tx)
		})

		It("should send the transaction once and return its hash", func() {
			hash, err := client.Broadcast(ctx, signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal(signed.Hash()))
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
		})

		It("should not retry network failures", func() {
			fakeClient.SendTransactionReturns(netErr)

			_, err := client.Broadcast(ctx, signed)
			Expect(txerr.KindOf(err)).To(Equal(txerr.KindNetwork))
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
		})

		It("should surface nonce rejections as rpc errors", func() {
			fakeClient.SendTransactionReturns(jsonRPCError{code: -32000, msg: "nonce too low"})

			_, err := client.Broadcast(ctx, signed)
			var target *txerr.RPCError
			Expect(errors.As(err, &target)).To(BeTrue())
			Expect(target.IsNonceConflict()).To(BeTrue())
		})
	})

	Describe("PollReceipt", func() {
		var hash common.Hash

		BeforeEach(func() {
			hash = common.HexToHash("0x1234")
		})

		It("should report a missing receipt as not found", func() {
			fakeClient.TransactionReceiptReturns(nil, geth.NotFound)

			receipt, found, err := client.PollReceipt(ctx, hash, time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
			Expect(receipt).To(BeNil())
		})

		It("should map a successful receipt", func() {
			fakeClient.TransactionReceiptReturns(&types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				BlockNumber: big.NewInt(42),
			}, nil)

			receipt, found, err := client.PollReceipt(ctx, hash, time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(receipt.Hash).To(Equal(hash))
			Expect(receipt.BlockNumber).To(Equal(uint64(42)))
			Expect(receipt.Succeeded()).To(BeTrue())
		})

		It("should map a reverted receipt", func() {
			fakeClient.TransactionReceiptReturns(&types.Receipt{
				Status:      types.ReceiptStatusFailed,
				BlockNumber: big.NewInt(43),
			}, nil)

			receipt, found, err := client.PollReceipt(ctx, hash, time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(receipt.Status).To(Equal(ethereum.StatusReverted))
		})

		It("should bound the lookup by the timeout", func() {
			fakeClient.TransactionReceiptStub = func(ctx context.Context, _ common.Hash) (*types.Receipt, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}

			_, found, err := client.PollReceipt(ctx, hash, 10*time.Millisecond)
			Expect(found).To(BeFalse())
			Expect(txerr.KindOf(err)).To(Equal(txerr.KindNetwork))
		})
	})
})
