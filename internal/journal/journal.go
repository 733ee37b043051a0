package journal

import (
	"context"
	"errors"
	"fmt"

	"astralnexus/internal/db"
	"astralnexus/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// Journal keeps the last known state of every submission, keyed by
// submission id, so callers can look up a transaction after its HTTP request
// has returned.
type Journal struct {
	db Storage
}

func NewJournal(db Storage) *Journal {
	return &Journal{
		db: db,
	}
}

func (j *Journal) Migrate() error {
	if err := j.db.MigrateModels(&Submission{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (j *Journal) Record(ctx context.Context, event ethereum.SubmissionEvent) error {
	var sub Submission
	err := j.db.GetBy(ctx, "id", event.ID, &sub)
	switch {
	case errors.Is(err, db.ErrNotFound):
		sub = Submission{
			ID:        event.ID,
			CreatedAt: event.At,
		}
	case err != nil:
		return fmt.Errorf("get submission %s: %w", event.ID, err)
	}

	sub.Account = event.Account.Hex()
	sub.Contract = event.Contract
	sub.Method = event.Method
	sub.Nonce = event.Nonce
	sub.Status = string(event.Status)
	sub.Error = event.Error
	sub.UpdatedAt = event.At
	if event.TxHash != (common.Hash{}) {
		sub.TxHash = event.TxHash.Hex()
	}
	if event.BlockNumber > 0 {
		sub.BlockNumber = event.BlockNumber
	}

	if err := j.db.Save(ctx, &sub); err != nil {
		return fmt.Errorf("save submission %s: %w", event.ID, err)
	}

	return nil
}

func (j *Journal) GetByTxHash(ctx context.Context, hash common.Hash) (Submission, error) {
	var sub Submission
	err := j.db.GetBy(ctx, "tx_hash", hash.Hex(), &sub)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Submission{}, ErrSubmissionNotFound
		}
		return Submission{}, fmt.Errorf("get submission by tx hash: %w", err)
	}

	return sub, nil
}
