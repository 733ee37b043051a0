package nonce_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"astralnexus/internal/nonce"
	"astralnexus/internal/nonce/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Sequencer", func() {
	var (
		sequencer  *nonce.Sequencer
		fakeSource *fake.Source
		ctx        context.Context
		account    common.Address
	)

	reserve := func() uint64 {
		n, err := sequencer.Reserve(ctx, account)
		Expect(err).NotTo(HaveOccurred())
		return n
	}

	BeforeEach(func() {
		fakeSource = new(fake.Source)
		fakeSource.GetNonceReturns(5, nil)
		fakeSource.GetPendingNonceReturns(5, nil)
		ctx = context.Background()
		account = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		sequencer = nonce.NewSequencer(zap.NewNop().Sugar(), fakeSource)
	})

	Describe("Reserve", func() {
		It("should seed from the chain on first use only", func() {
			Expect(reserve()).To(Equal(uint64(5)))
			Expect(reserve()).To(Equal(uint64(6)))
			Expect(fakeSource.GetNonceCallCount()).To(Equal(1))
			Expect(fakeSource.GetPendingNonceCallCount()).To(Equal(1))
		})

		It("should seed past transactions already in the pool", func() {
			fakeSource.GetPendingNonceReturns(8, nil)
			Expect(reserve()).To(Equal(uint64(8)))
		})

		It("should keep accounts independent", func() {
			other := common.HexToAddress("0x00000000000000000000000000000000000000b2")
			fakeSource.GetNonceStub = func(_ context.Context, a common.Address) (uint64, error) {
				if a == other {
					return 40, nil
				}
				return 5, nil
			}
			fakeSource.GetPendingNonceReturns(0, nil)

			Expect(reserve()).To(Equal(uint64(5)))
			n, err := sequencer.Reserve(ctx, other)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint64(40)))
			Expect(reserve()).To(Equal(uint64(6)))
		})

		It("should fail and stay unseeded when the chain cannot be read", func() {
			fakeSource.GetNonceReturnsOnCall(0, 0, errors.New("unreachable"))

			_, err := sequencer.Reserve(ctx, account)
			Expect(err).To(MatchError(ContainSubstring("unreachable")))
			Expect(sequencer.Snapshot(account).Seeded).To(BeFalse())

			Expect(reserve()).To(Equal(uint64(5)))
		})

		It("should hand out distinct gap-free nonces to concurrent callers", func() {
			const callers = 100
			got := make([]uint64, callers)

			var wg sync.WaitGroup
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					n, err := sequencer.Reserve(ctx, account)
					Expect(err).NotTo(HaveOccurred())
					got[i] = n
				}(i)
			}
			wg.Wait()

			sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
			for i, n := range got {
				Expect(n).To(Equal(uint64(5 + i)))
			}
			Expect(fakeSource.GetNonceCallCount()).To(Equal(1))
		})
	})

	Describe("Release", func() {
		It("should roll back the most recently issued nonce", func() {
			n := reserve()
			sequencer.Release(account, n)

			Expect(reserve()).To(Equal(n))
			Expect(fakeSource.GetNonceCallCount()).To(Equal(1))
		})

		It("should compact through adjacent released nonces", func() {
			a, b, c := reserve(), reserve(), reserve()
			sequencer.Release(account, b)
			sequencer.Release(account, c)

			state := sequencer.Snapshot(account)
			Expect(state.Next).To(Equal(b))
			Expect(state.Gaps).To(BeEmpty())
			Expect(state.NeedsResync).To(BeTrue())
			Expect(a).To(Equal(uint64(5)))

			Expect(reserve()).To(Equal(b))
			Expect(fakeSource.GetNonceCallCount()).To(Equal(2))
		})

		It("should keep a pending resync through a rollback", func() {
			a, b := reserve(), reserve()
			fakeSource.GetNonceReturns(6, nil)
			fakeSource.GetPendingNonceReturns(6, nil)

			sequencer.Release(account, a)
			sequencer.Resync(account)
			sequencer.Release(account, b)

			state := sequencer.Snapshot(account)
			Expect(state.Next).To(Equal(a))
			Expect(state.NeedsResync).To(BeTrue())

			Expect(reserve()).To(Equal(uint64(6)))
			Expect(fakeSource.GetNonceCallCount()).To(Equal(2))
		})

		It("should reclaim an out-of-order release after a resync", func() {
			a, b := reserve(), reserve()
			sequencer.Release(account, a)

			state := sequencer.Snapshot(account)
			Expect(state.Gaps).To(ConsistOf(a))
			Expect(state.NeedsResync).To(BeTrue())

			Expect(reserve()).To(Equal(a))
			Expect(fakeSource.GetNonceCallCount()).To(Equal(2))
			Expect(reserve()).To(Equal(b + 1))
		})

		It("should drop a gap the chain has already consumed", func() {
			a, _ := reserve(), reserve()
			sequencer.Release(account, a)
			fakeSource.GetNonceReturns(6, nil)
			fakeSource.GetPendingNonceReturns(7, nil)

			Expect(reserve()).To(Equal(uint64(7)))
			Expect(sequencer.Snapshot(account).Gaps).To(BeEmpty())
		})

		It("should ignore nonces that were never issued", func() {
			reserve()
			sequencer.Release(account, 99)
			Expect(sequencer.Snapshot(account).Next).To(Equal(uint64(6)))
		})
	})

	Describe("ReleaseAndResync", func() {
		It("should roll back and re-read the chain before the next reserve", func() {
			n := reserve()
			fakeSource.GetNonceReturns(8, nil)
			fakeSource.GetPendingNonceReturns(8, nil)
			sequencer.ReleaseAndResync(account, n)

			state := sequencer.Snapshot(account)
			Expect(state.Next).To(Equal(n))
			Expect(state.NeedsResync).To(BeTrue())

			Expect(reserve()).To(Equal(uint64(8)))
			Expect(fakeSource.GetNonceCallCount()).To(Equal(2))
		})

		It("should not let a concurrent reserve take the rolled-back nonce before the resync", func() {
			n := reserve()
			fakeSource.GetNonceReturns(6, nil)
			fakeSource.GetPendingNonceReturns(6, nil)

			var wg sync.WaitGroup
			got := make(chan uint64, 1)
			wg.Add(2)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				sequencer.ReleaseAndResync(account, n)
			}()
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				got <- reserve()
			}()
			wg.Wait()

			Expect(<-got).To(Equal(uint64(6)))
		})
	})

	Describe("Abandon", func() {
		It("should not reuse a nonce the chain shows as landed", func() {
			n := reserve()
			sequencer.Abandon(account, n)
			fakeSource.GetPendingNonceReturns(6, nil)

			Expect(reserve()).To(Equal(uint64(6)))
			Expect(sequencer.Snapshot(account).Suspects).To(BeEmpty())
		})

		It("should reclaim a nonce the chain shows never landed", func() {
			n := reserve()
			sequencer.Abandon(account, n)

			Expect(reserve()).To(Equal(n))
			state := sequencer.Snapshot(account)
			Expect(state.Suspects).To(BeEmpty())
			Expect(state.Next).To(Equal(n + 1))
		})

		It("should hold a suspect above the chain nonce until the nonces below it settle", func() {
			a, b := reserve(), reserve()
			sequencer.Abandon(account, b)
			sequencer.Abandon(account, a)
			fakeSource.GetPendingNonceReturns(5, nil)

			Expect(reserve()).To(Equal(a))
			state := sequencer.Snapshot(account)
			Expect(state.Suspects).To(ConsistOf(b))
			Expect(state.NeedsResync).To(BeTrue())
		})
	})

	Describe("Resync", func() {
		It("should re-read the chain before the next reserve", func() {
			reserve()
			fakeSource.GetNonceReturns(9, nil)
			sequencer.Resync(account)

			Expect(reserve()).To(Equal(uint64(9)))
			Expect(fakeSource.GetNonceCallCount()).To(Equal(2))
		})

		It("should never move the counter backwards", func() {
			reserve()
			reserve()
			fakeSource.GetNonceReturns(0, nil)
			fakeSource.GetPendingNonceReturns(0, nil)
			sequencer.Resync(account)

			Expect(reserve()).To(Equal(uint64(7)))
		})
	})
})
