package submitter_test

import (
	"context"
	"errors"
	"math/big"
	"sort"
	"sync"
	"time"

	"astralnexus/internal/contract"
	"astralnexus/internal/ethereum"
	"astralnexus/internal/nonce"
	noncefake "astralnexus/internal/nonce/fake"
	"astralnexus/internal/signer"
	"astralnexus/internal/submitter"
	"astralnexus/internal/submitter/fake"
	"astralnexus/internal/txerr"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const testKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

var _ = Describe("Submitter", func() {
	var (
		sub           *submitter.Submitter
		cfg           submitter.Config
		fakeClient    *fake.ChainClient
		fakeSequencer *fake.Sequencer
		fakeSigner    *fake.Signer
		fakeRecorder  *fake.Recorder
		fakeJournal   *fake.Journal
		keySigner     *signer.KeySigner
		ctx           context.Context
		intent        contract.Intent
		netErr        error

		receipt *ethereum.Receipt
		err     error
	)

	mined := func(hash common.Hash, status ethereum.ReceiptStatus, block uint64) *ethereum.Receipt {
		return &ethereum.Receipt{Hash: hash, Status: status, BlockNumber: block}
	}

	broadcastNonces := func() []uint64 {
		nonces := make([]uint64, fakeClient.BroadcastCallCount())
		for i := range nonces {
			_, signed := fakeClient.BroadcastArgsForCall(i)
			nonces[i] = signed.Nonce()
		}
		return nonces
	}

	BeforeEach(func() {
		var keyErr error
		chainID := big.NewInt(656476)
		keySigner, keyErr = signer.NewKeySigner(testKey, chainID)
		Expect(keyErr).NotTo(HaveOccurred())

		fakeClient = new(fake.ChainClient)
		fakeSequencer = new(fake.Sequencer)
		fakeSigner = new(fake.Signer)
		fakeRecorder = new(fake.Recorder)
		fakeJournal = new(fake.Journal)
		ctx = context.Background()
		netErr = &txerr.NetworkError{Op: "eth_sendRawTransaction", Err: errors.New("connection reset by peer")}

		fakeSigner.AddressReturns(keySigner.Address())
		fakeSigner.SignStub = keySigner.Sign

		fakeClient.EstimateFeeReturns(ethereum.Fee{GasPrice: big.NewInt(2_000_000_000)}, nil)
		fakeClient.BroadcastStub = func(_ context.Context, signed *ethereum.SignedTransaction) (common.Hash, error) {
			return signed.Hash(), nil
		}
		fakeClient.PollReceiptStub = func(_ context.Context, hash common.Hash, _ time.Duration) (*ethereum.Receipt, bool, error) {
			return mined(hash, ethereum.StatusSuccess, 42), true, nil
		}
		fakeSequencer.ReserveReturns(5, nil)

		intent = contract.Intent{
			From:     keySigner.Address(),
			To:       common.HexToAddress("0x3E2F5568494fF67de705fA6BAaB2D8262AB3c7EE"),
			Data:     []byte{0xaa, 0xbb, 0xcc, 0xdd},
			Contract: contract.Character,
			Method:   "createCharacter",
		}

		cfg = submitter.Config{
			GasLimit:          2_000_000,
			ChainID:           chainID,
			BroadcastRetries:  2,
			BroadcastBackoff:  time.Millisecond,
			PollInterval:      time.Millisecond,
			PollTimeout:       10 * time.Millisecond,
			SubmissionTimeout: 500 * time.Millisecond,
		}
	})

	JustBeforeEach(func() {
		sub = submitter.NewSubmitter(zap.NewNop().Sugar(), cfg, fakeClient, fakeSequencer, fakeSigner, fakeRecorder, fakeJournal)
		receipt, err = sub.Submit(ctx, intent)
	})

	When("the transaction is mined successfully", func() {
		BeforeEach(func() {
			calls := 0
			fakeClient.PollReceiptStub = func(_ context.Context, hash common.Hash, _ time.Duration) (*ethereum.Receipt, bool, error) {
				calls++
				if calls < 3 {
					return nil, false, nil
				}
				return mined(hash, ethereum.StatusSuccess, 42), true, nil
			}
		})

		It("should return the receipt", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt.BlockNumber).To(Equal(uint64(42)))
			Expect(receipt.Hash.Hex()).To(MatchRegexp("^0x[0-9a-f]{64}$"))
			Expect(fakeClient.PollReceiptCallCount()).To(Equal(3))
		})

		It("should sign the reserved nonce with the fixed gas limit and quoted price", func() {
			Expect(fakeSigner.SignCallCount()).To(Equal(1))
			utx := fakeSigner.SignArgsForCall(0)
			Expect(utx.Nonce).To(Equal(uint64(5)))
			Expect(utx.GasLimit).To(Equal(uint64(2_000_000)))
			Expect(utx.GasPrice).To(Equal(big.NewInt(2_000_000_000)))
			Expect(utx.To).To(Equal(intent.To))
			Expect(utx.Data).To(Equal(intent.Data))
		})

		It("should neither release nor abandon the nonce", func() {
			Expect(fakeSequencer.ReleaseCallCount()).To(BeZero())
			Expect(fakeSequencer.AbandonCallCount()).To(BeZero())
		})

		It("should journal each transition", func() {
			Expect(fakeJournal.RecordCallCount()).To(Equal(3))
			statuses := make([]ethereum.SubmissionStatus, 3)
			for i := range statuses {
				_, event := fakeJournal.RecordArgsForCall(i)
				statuses[i] = event.Status
				Expect(event.Nonce).To(Equal(uint64(5)))
				Expect(event.TxHash).To(Equal(receipt.Hash))
			}
			Expect(statuses).To(Equal([]ethereum.SubmissionStatus{
				ethereum.SubmissionSigned,
				ethereum.SubmissionBroadcast,
				ethereum.SubmissionConfirmed,
			}))
		})

		It("should record the outcome", func() {
			Expect(fakeRecorder.ObserveSubmissionCallCount()).To(Equal(1))
			contractName, method, outcome, _ := fakeRecorder.ObserveSubmissionArgsForCall(0)
			Expect(contractName).To(Equal("character"))
			Expect(method).To(Equal("createCharacter"))
			Expect(outcome).To(Equal(submitter.OutcomeConfirmed))
		})
	})

	When("the transaction reverts", func() {
		BeforeEach(func() {
			fakeClient.PollReceiptStub = func(_ context.Context, hash common.Hash, _ time.Duration) (*ethereum.Receipt, bool, error) {
				return mined(hash, ethereum.StatusReverted, 43), true, nil
			}
		})

		It("should return a reverted error carrying the hash", func() {
			Expect(txerr.KindOf(err)).To(Equal(txerr.KindReverted))
			hash, ok := txerr.TxHash(err)
			Expect(ok).To(BeTrue())
			Expect(hash).To(Equal(receipt.Hash))
			Expect(receipt.BlockNumber).To(Equal(uint64(43)))
		})

		It("should keep the nonce consumed", func() {
			Expect(fakeSequencer.ReleaseCallCount()).To(BeZero())
			Expect(fakeSequencer.AbandonCallCount()).To(BeZero())
		})

		It("should wrap the failure with the account, nonce and method", func() {
			var subErr *txerr.SubmissionError
			Expect(errors.As(err, &subErr)).To(BeTrue())
			Expect(subErr.Account).To(Equal(keySigner.Address()))
			Expect(subErr.Nonce).To(Equal(uint64(5)))
			Expect(subErr.NonceAssigned).To(BeTrue())
			Expect(subErr.Method).To(Equal("character.createCharacter"))
		})
	})

	When("no receipt arrives before the submission timeout", func() {
		BeforeEach(func() {
			cfg.SubmissionTimeout = 30 * time.Millisecond
			fakeClient.PollReceiptReturns(nil, false, nil)
		})

		It("should return an indeterminate error carrying the hash", func() {
			Expect(receipt).To(BeNil())
			Expect(txerr.KindOf(err)).To(Equal(txerr.KindIndeterminate))
			_, ok := txerr.TxHash(err)
			Expect(ok).To(BeTrue())
			_, outcome := fakeJournal.RecordArgsForCall(fakeJournal.RecordCallCount() - 1)
			Expect(outcome.Status).To(Equal(ethereum.SubmissionIndeterminate))
		})
	})

	When("receipt polls fail transiently", func() {
		BeforeEach(func() {
			calls := 0
			fakeClient.PollReceiptStub = func(_ context.Context, hash common.Hash, _ time.Duration) (*ethereum.Receipt, bool, error) {
				calls++
				if calls == 1 {
					return nil, false, &txerr.NetworkError{Op: "eth_getTransactionReceipt", Err: errors.New("eof")}
				}
				return mined(hash, ethereum.StatusSuccess, 42), true, nil
			}
		})

		It("should keep polling", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeClient.PollReceiptCallCount()).To(Equal(2))
		})
	})

	When("the broadcast fails on the network", func() {
		BeforeEach(func() {
			attempts := 0
			fakeClient.BroadcastStub = func(_ context.Context, signed *ethereum.SignedTransaction) (common.Hash, error) {
				attempts++
				if attempts <= 2 {
					return common.Hash{}, netErr
				}
				return signed.Hash(), nil
			}
		})

		It("should retry the same transaction with the same nonce", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(broadcastNonces()).To(Equal([]uint64{5, 5, 5}))
			_, first := fakeClient.BroadcastArgsForCall(0)
			_, last := fakeClient.BroadcastArgsForCall(2)
			Expect(last.Hash()).To(Equal(first.Hash()))
			Expect(fakeSequencer.ReserveCallCount()).To(Equal(1))
			Expect(fakeRecorder.BroadcastRetriedCallCount()).To(Equal(2))
		})
	})

	When("a retried broadcast finds the transaction already known", func() {
		BeforeEach(func() {
			fakeClient.BroadcastReturnsOnCall(0, common.Hash{}, netErr)
			fakeClient.BroadcastReturnsOnCall(1, common.Hash{}, &txerr.RPCError{Op: "eth_sendRawTransaction", Code: -32000, Err: errors.New("already known")})
			fakeClient.PollReceiptStub = func(_ context.Context, hash common.Hash, _ time.Duration) (*ethereum.Receipt, bool, error) {
				return mined(hash, ethereum.StatusSuccess, 42), true, nil
			}
		})

		It("should treat the first attempt as delivered", func() {
			Expect(err).NotTo(HaveOccurred())
			_, signed := fakeClient.BroadcastArgsForCall(0)
			Expect(receipt.Hash).To(Equal(signed.Hash()))
			Expect(fakeClient.BroadcastCallCount()).To(Equal(2))
			Expect(fakeSequencer.ReleaseCallCount()).To(BeZero())
			Expect(fakeSequencer.ReleaseAndResyncCallCount()).To(BeZero())
		})
	})

	When("a retried broadcast is rejected for its nonce", func() {
		BeforeEach(func() {
			fakeClient.BroadcastReturnsOnCall(0, common.Hash{}, netErr)
			fakeClient.BroadcastReturnsOnCall(1, common.Hash{}, &txerr.RPCError{Op: "eth_sendRawTransaction", Code: -32000, Err: errors.New("nonce too low")})
		})

		It("should wait for the first attempt instead of resubmitting", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(broadcastNonces()).To(Equal([]uint64{5, 5}))
			_, signed := fakeClient.BroadcastArgsForCall(0)
			Expect(receipt.Hash).To(Equal(signed.Hash()))
			Expect(fakeSequencer.ReserveCallCount()).To(Equal(1))
			Expect(fakeSequencer.ReleaseCallCount()).To(BeZero())
			Expect(fakeSequencer.ReleaseAndResyncCallCount()).To(BeZero())
		})

		When("no receipt ever shows up", func() {
			BeforeEach(func() {
				cfg.SubmissionTimeout = 30 * time.Millisecond
				fakeClient.PollReceiptReturns(nil, false, nil)
				fakeClient.PollReceiptStub = nil
			})

			It("should end indeterminate and keep the nonce spent", func() {
				Expect(txerr.KindOf(err)).To(Equal(txerr.KindIndeterminate))
				_, signed := fakeClient.BroadcastArgsForCall(0)
				hash, ok := txerr.TxHash(err)
				Expect(ok).To(BeTrue())
				Expect(hash).To(Equal(signed.Hash()))
				Expect(fakeSequencer.ReleaseCallCount()).To(BeZero())
				Expect(fakeSequencer.ReleaseAndResyncCallCount()).To(BeZero())
				Expect(fakeClient.BroadcastCallCount()).To(Equal(2))
			})
		})
	})

	When("the network retries run out", func() {
		BeforeEach(func() {
			fakeClient.BroadcastReturns(common.Hash{}, netErr)
		})

		It("should abandon the nonce and fail with a network error", func() {
			Expect(txerr.KindOf(err)).To(Equal(txerr.KindNetwork))
			Expect(fakeClient.BroadcastCallCount()).To(Equal(3))
			Expect(fakeSequencer.AbandonCallCount()).To(Equal(1))
			account, n := fakeSequencer.AbandonArgsForCall(0)
			Expect(account).To(Equal(keySigner.Address()))
			Expect(n).To(Equal(uint64(5)))
			Expect(fakeSequencer.ReleaseCallCount()).To(BeZero())
			Expect(fakeClient.PollReceiptCallCount()).To(BeZero())
		})
	})

	When("the node reports a nonce conflict", func() {
		BeforeEach(func() {
			fakeSequencer.ReserveReturnsOnCall(0, 5, nil)
			fakeSequencer.ReserveReturnsOnCall(1, 6, nil)
			attempts := 0
			fakeClient.BroadcastStub = func(_ context.Context, signed *ethereum.SignedTransaction) (common.Hash, error) {
				attempts++
				if attempts == 1 {
					return common.Hash{}, &txerr.RPCError{Op: "eth_sendRawTransaction", Code: -32000, Err: errors.New("nonce too low")}
				}
				return signed.Hash(), nil
			}
		})

		It("should release, resync and retry once with a fresh nonce", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(broadcastNonces()).To(Equal([]uint64{5, 6}))
			Expect(fakeSequencer.ReleaseCallCount()).To(BeZero())
			Expect(fakeSequencer.ReleaseAndResyncCallCount()).To(Equal(1))
			_, released := fakeSequencer.ReleaseAndResyncArgsForCall(0)
			Expect(released).To(Equal(uint64(5)))
			Expect(fakeRecorder.NonceEventCallCount()).To(BeNumerically(">=", 1))
		})

		When("the conflict persists", func() {
			BeforeEach(func() {
				fakeClient.BroadcastReturns(common.Hash{}, &txerr.RPCError{Op: "eth_sendRawTransaction", Code: -32000, Err: errors.New("nonce too low")})
				fakeClient.BroadcastStub = nil
			})

			It("should fail with a nonce conflict after one retry", func() {
				Expect(txerr.KindOf(err)).To(Equal(txerr.KindNonceConflict))
				Expect(fakeSequencer.ReserveCallCount()).To(Equal(2))
				Expect(fakeClient.BroadcastCallCount()).To(Equal(2))
			})
		})
	})

	When("the node rejects the transaction for another reason", func() {
		BeforeEach(func() {
			fakeClient.BroadcastReturns(common.Hash{}, &txerr.RPCError{Op: "eth_sendRawTransaction", Code: -32000, Err: errors.New("insufficient funds for gas * price + value")})
			fakeClient.BroadcastStub = nil
		})

		It("should release the nonce and fail without retrying", func() {
			Expect(txerr.KindOf(err)).To(Equal(txerr.KindRPC))
			Expect(fakeClient.BroadcastCallCount()).To(Equal(1))
			Expect(fakeSequencer.ReleaseCallCount()).To(Equal(1))
			Expect(fakeSequencer.AbandonCallCount()).To(BeZero())
			Expect(fakeSequencer.ReleaseAndResyncCallCount()).To(BeZero())
		})
	})

	When("signing fails", func() {
		BeforeEach(func() {
			fakeSigner.SignReturns(nil, errors.New("hsm offline"))
			fakeSigner.SignStub = nil
		})

		It("should release the nonce before anything is broadcast", func() {
			Expect(err).To(MatchError(ContainSubstring("hsm offline")))
			Expect(fakeSequencer.ReleaseCallCount()).To(Equal(1))
			Expect(fakeClient.BroadcastCallCount()).To(BeZero())
		})
	})

	When("the fee quote fails", func() {
		BeforeEach(func() {
			fakeClient.EstimateFeeReturns(ethereum.Fee{}, &txerr.NetworkError{Op: "eth_gasPrice", Err: errors.New("timeout")})
		})

		It("should fail before reserving a nonce", func() {
			Expect(txerr.KindOf(err)).To(Equal(txerr.KindNetwork))
			Expect(fakeSequencer.ReserveCallCount()).To(BeZero())
			var subErr *txerr.SubmissionError
			Expect(errors.As(err, &subErr)).To(BeTrue())
			Expect(subErr.NonceAssigned).To(BeFalse())
		})
	})

	When("the caller cancels before the broadcast", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(ctx)
			fakeSequencer.ReserveStub = func(context.Context, common.Address) (uint64, error) {
				cancel()
				return 5, nil
			}
		})

		It("should release the nonce and abort", func() {
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(fakeSequencer.ReleaseCallCount()).To(Equal(1))
			Expect(fakeClient.BroadcastCallCount()).To(BeZero())
			_, _, outcome, _ := fakeRecorder.ObserveSubmissionArgsForCall(0)
			Expect(outcome).To(Equal(submitter.OutcomeCanceled))
		})
	})

	When("the caller cancels after the broadcast", func() {
		var pollCtxErr error

		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(ctx)
			fakeClient.BroadcastStub = func(_ context.Context, signed *ethereum.SignedTransaction) (common.Hash, error) {
				cancel()
				return signed.Hash(), nil
			}
			fakeClient.PollReceiptStub = func(pollCtx context.Context, hash common.Hash, _ time.Duration) (*ethereum.Receipt, bool, error) {
				pollCtxErr = pollCtx.Err()
				return mined(hash, ethereum.StatusSuccess, 44), true, nil
			}
		})

		It("should still drive the submission to its outcome", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(pollCtxErr).NotTo(HaveOccurred())
			Expect(receipt.BlockNumber).To(Equal(uint64(44)))
		})
	})

	When("the intent names another account", func() {
		BeforeEach(func() {
			intent.From = common.HexToAddress("0x00000000000000000000000000000000000000ff")
		})

		It("should reject it without reserving a nonce", func() {
			Expect(txerr.KindOf(err)).To(Equal(txerr.KindValidation))
			Expect(errors.Is(err, submitter.ErrForeignAccount)).To(BeTrue())
			Expect(fakeSequencer.ReserveCallCount()).To(BeZero())
		})
	})

	When("the journal fails", func() {
		BeforeEach(func() {
			fakeJournal.RecordReturns(errors.New("disk full"))
		})

		It("should not affect the submission", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

var _ = Describe("Submitter with a live sequencer", func() {
	var (
		keySigner *signer.KeySigner
		source    *noncefake.Source
		sequencer *nonce.Sequencer
		client    *fake.ChainClient
		chainNext uint64
	)

	BeforeEach(func() {
		var err error
		keySigner, err = signer.NewKeySigner(testKey, big.NewInt(656476))
		Expect(err).NotTo(HaveOccurred())

		chainNext = 5
		source = new(noncefake.Source)
		source.GetNonceStub = func(context.Context, common.Address) (uint64, error) { return chainNext, nil }
		source.GetPendingNonceStub = func(context.Context, common.Address) (uint64, error) { return chainNext, nil }
		sequencer = nonce.NewSequencer(zap.NewNop().Sugar(), source)

		client = new(fake.ChainClient)
		client.EstimateFeeReturns(ethereum.Fee{GasPrice: big.NewInt(1)}, nil)
		client.PollReceiptStub = func(_ context.Context, hash common.Hash, _ time.Duration) (*ethereum.Receipt, bool, error) {
			return &ethereum.Receipt{Hash: hash, Status: ethereum.StatusSuccess, BlockNumber: 1}, true, nil
		}
	})

	submit := func() (*ethereum.Receipt, error) {
		sub := submitter.NewSubmitter(zap.NewNop().Sugar(), submitter.Config{
			ChainID:          big.NewInt(656476),
			BroadcastRetries: 2,
			BroadcastBackoff: time.Millisecond,
			PollInterval:     time.Millisecond,
		}, client, sequencer, keySigner, new(fake.Recorder), nil)
		return sub.Submit(context.Background(), contract.Intent{
			To:       common.HexToAddress("0x01"),
			Contract: contract.Character,
			Method:   "createCharacter",
		})
	}

	sentNonces := func() []uint64 {
		nonces := make([]uint64, client.BroadcastCallCount())
		for i := range nonces {
			_, signed := client.BroadcastArgsForCall(i)
			nonces[i] = signed.Nonce()
		}
		return nonces
	}

	It("should broadcast an intent under one nonce when a lost response is followed by nonce too low", func() {
		attempts := 0
		client.BroadcastStub = func(_ context.Context, signed *ethereum.SignedTransaction) (common.Hash, error) {
			attempts++
			if attempts == 1 {
				// delivered, but the reply never arrives
				chainNext = 6
				return common.Hash{}, &txerr.NetworkError{Op: "eth_sendRawTransaction", Err: errors.New("connection reset by peer")}
			}
			return common.Hash{}, &txerr.RPCError{Op: "eth_sendRawTransaction", Code: -32000, Err: errors.New("nonce too low")}
		}

		receipt, err := submit()
		Expect(err).NotTo(HaveOccurred())
		Expect(sentNonces()).To(Equal([]uint64{5, 5}))
		_, first := client.BroadcastArgsForCall(0)
		Expect(receipt.Hash).To(Equal(first.Hash()))

		next, err := sequencer.Reserve(context.Background(), keySigner.Address())
		Expect(err).NotTo(HaveOccurred())
		Expect(next).To(Equal(uint64(6)))
	})

	It("should retry a first-attempt nonce conflict with the nonce the chain expects", func() {
		attempts := 0
		client.BroadcastStub = func(_ context.Context, signed *ethereum.SignedTransaction) (common.Hash, error) {
			attempts++
			if attempts == 1 {
				chainNext = 7
				return common.Hash{}, &txerr.RPCError{Op: "eth_sendRawTransaction", Code: -32000, Err: errors.New("nonce too low")}
			}
			return signed.Hash(), nil
		}

		_, err := submit()
		Expect(err).NotTo(HaveOccurred())
		Expect(sentNonces()).To(Equal([]uint64{5, 7}))
		Expect(sequencer.Snapshot(keySigner.Address()).Next).To(Equal(uint64(8)))
	})

	It("should give concurrent submissions distinct consecutive nonces", func() {
		chainNext = 10
		client.BroadcastStub = func(_ context.Context, signed *ethereum.SignedTransaction) (common.Hash, error) {
			return signed.Hash(), nil
		}

		const submissions = 20
		var wg sync.WaitGroup
		for i := 0; i < submissions; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				_, err := submit()
				Expect(err).NotTo(HaveOccurred())
			}()
		}
		wg.Wait()

		nonces := sentNonces()
		sort.Slice(nonces, func(i, j int) bool { return nonces[i] < nonces[j] })
		Expect(nonces).To(HaveLen(submissions))
		for i, n := range nonces {
			Expect(n).To(Equal(uint64(10 + i)))
		}
	})
})
