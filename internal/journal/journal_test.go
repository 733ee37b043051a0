package journal_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astralnexus/internal/db"
	"astralnexus/internal/ethereum"
	"astralnexus/internal/journal"
	"astralnexus/internal/journal/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Journal", func() {
	var (
		j           *journal.Journal
		fakeStorage *fake.Storage
		ctx         context.Context
		event       ethereum.SubmissionEvent
		createdAt   time.Time
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		j = journal.NewJournal(fakeStorage)
		ctx = context.Background()
		createdAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		event = ethereum.SubmissionEvent{
			ID:       uuid.NewString(),
			Account:  common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Contract: "character",
			Method:   "createCharacter",
			Nonce:    7,
			TxHash:   common.HexToHash("0xabc"),
			Status:   ethereum.SubmissionBroadcast,
			At:       createdAt.Add(time.Second),
		}
	})

	Describe("Migrate", func() {
		It("should migrate the submissions table", func() {
			Expect(j.Migrate()).To(Succeed())
			models := fakeStorage.MigrateModelsArgsForCall(0)
			Expect(models).To(HaveLen(1))
			Expect(models[0]).To(BeAssignableToTypeOf(&journal.Submission{}))
		})

		It("should wrap a migration failure", func() {
			fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			Expect(j.Migrate()).To(MatchError("migrate table(s): migration error"))
		})
	})

	Describe("Record", func() {
		var err error

		JustBeforeEach(func() {
			err = j.Record(ctx, event)
		})

		When("the submission is new", func() {
			BeforeEach(func() {
				fakeStorage.GetByReturns(db.ErrNotFound)
			})

			It("should create it", func() {
				Expect(err).NotTo(HaveOccurred())
				_, record := fakeStorage.SaveArgsForCall(0)
				sub := record.(*journal.Submission)
				Expect(sub.ID).To(Equal(event.ID))
				Expect(sub.Account).To(Equal(event.Account.Hex()))
				Expect(sub.TxHash).To(Equal(event.TxHash.Hex()))
				Expect(sub.Status).To(Equal("broadcast"))
				Expect(sub.Nonce).To(Equal(uint64(7)))
				Expect(sub.CreatedAt).To(Equal(event.At))
			})
		})

		When("the submission already exists", func() {
			BeforeEach(func() {
				fakeStorage.GetByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("id"))
					*entity.(*journal.Submission) = journal.Submission{
						ID:        value.(string),
						Status:    "signed",
						TxHash:    event.TxHash.Hex(),
						CreatedAt: createdAt,
					}
					return nil
				}
				event.Status = ethereum.SubmissionConfirmed
				event.BlockNumber = 99
			})

			It("should update it and keep its creation time", func() {
				Expect(err).NotTo(HaveOccurred())
				_, record := fakeStorage.SaveArgsForCall(0)
				sub := record.(*journal.Submission)
				Expect(sub.Status).To(Equal("confirmed"))
				Expect(sub.BlockNumber).To(Equal(uint64(99)))
				Expect(sub.CreatedAt).To(Equal(createdAt))
				Expect(sub.UpdatedAt).To(Equal(event.At))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetByReturns(errors.New("connection lost"))
			})

			It("should not write", func() {
				Expect(err).To(MatchError(ContainSubstring("connection lost")))
				Expect(fakeStorage.SaveCallCount()).To(BeZero())
			})
		})

		When("the write fails", func() {
			BeforeEach(func() {
				fakeStorage.GetByReturns(db.ErrNotFound)
				fakeStorage.SaveReturns(errors.New("disk full"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fmt.Sprintf("save submission %s: disk full", event.ID)))
			})
		})
	})

	Describe("GetByTxHash", func() {
		It("should translate a missing row", func() {
			fakeStorage.GetByReturns(db.ErrNotFound)
			_, err := j.GetByTxHash(ctx, event.TxHash)
			Expect(err).To(MatchError(journal.ErrSubmissionNotFound))
		})

		It("should query by the hex hash", func() {
			_, err := j.GetByTxHash(ctx, event.TxHash)
			Expect(err).NotTo(HaveOccurred())
			_, column, value, _ := fakeStorage.GetByArgsForCall(0)
			Expect(column).To(Equal("tx_hash"))
			Expect(value).To(Equal(event.TxHash.Hex()))
		})
	})
})

var _ = Describe("Journal on sqlite", func() {
	It("should follow a submission through its transitions", func() {
		ctx := context.Background()
		store, err := db.NewGormDB(db.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
		Expect(err).NotTo(HaveOccurred())
		defer store.Close()

		j := journal.NewJournal(store)
		Expect(j.Migrate()).To(Succeed())

		event := ethereum.SubmissionEvent{
			ID:       uuid.NewString(),
			Account:  common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Contract: "items",
			Method:   "createItem",
			Nonce:    3,
			TxHash:   common.HexToHash("0xfeed"),
			Status:   ethereum.SubmissionSigned,
			At:       time.Now().UTC(),
		}
		Expect(j.Record(ctx, event)).To(Succeed())

		event.Status = ethereum.SubmissionReverted
		event.BlockNumber = 12
		event.Error = "transaction reverted"
		event.At = event.At.Add(time.Second)
		Expect(j.Record(ctx, event)).To(Succeed())

		sub, err := j.GetByTxHash(ctx, event.TxHash)
		Expect(err).NotTo(HaveOccurred())
		Expect(sub.ID).To(Equal(event.ID))
		Expect(sub.Status).To(Equal("reverted"))
		Expect(sub.BlockNumber).To(Equal(uint64(12)))
		Expect(sub.Error).To(Equal("transaction reverted"))
	})
})
