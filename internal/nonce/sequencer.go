package nonce

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Sequencer hands out transaction nonces for signing accounts. Reserve is the
// only serialized step of the write pipeline; everything else a submission
// does runs without holding a lock.
//
// Every nonce handed out ends in exactly one of these states: broadcast,
// released (never broadcast, becomes a gap that is handed out again) or
// abandoned (broadcast outcome unknown, checked against the chain before it
// is reused).
type Sequencer struct {
	logs   *zap.SugaredLogger
	source Source

	mu       sync.Mutex
	accounts map[common.Address]*accountState
}

type accountState struct {
	mu          sync.Mutex
	seeded      bool
	needsResync bool
	next        uint64
	gaps        map[uint64]struct{}
	suspects    map[uint64]struct{}
}

// State is a point-in-time copy of an account's nonce bookkeeping.
type State struct {
	Seeded      bool
	NeedsResync bool
	Next        uint64
	Gaps        []uint64
	Suspects    []uint64
}

func NewSequencer(logger *zap.SugaredLogger, source Source) *Sequencer {
	return &Sequencer{
		logs:     logger,
		source:   source,
		accounts: make(map[common.Address]*accountState),
	}
}

// Reserve returns a nonce no other caller holds. The account is seeded from
// the chain on first use and re-read whenever a resync is pending. Reclaimed
// gaps are handed out before the counter advances.
func (s *Sequencer) Reserve(ctx context.Context, account common.Address) (uint64, error) {
	st := s.state(account)

	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.seeded || st.needsResync {
		if err := s.sync(ctx, account, st); err != nil {
			return 0, fmt.Errorf("sync nonce for %s: %w", account.Hex(), err)
		}
	}

	if gap, ok := lowest(st.gaps); ok {
		delete(st.gaps, gap)
		s.logs.Infow("reclaimed nonce gap", "account", account.Hex(), "nonce", gap)
		return gap, nil
	}

	n := st.next
	st.next++
	return n, nil
}

// Release gives back a nonce whose submission failed before broadcast. The
// counter rolls back when nonce is the last one issued; otherwise the nonce
// becomes a gap and the account is resynchronised before the next Reserve.
func (s *Sequencer) Release(account common.Address, nonce uint64) {
	st := s.state(account)

	st.mu.Lock()
	defer st.mu.Unlock()

	s.release(account, st, nonce)
}

// ReleaseAndResync gives back nonce and forces the next Reserve to re-read
// the chain, without letting another Reserve run in between.
func (s *Sequencer) ReleaseAndResync(account common.Address, nonce uint64) {
	st := s.state(account)

	st.mu.Lock()
	defer st.mu.Unlock()

	s.release(account, st, nonce)
	st.needsResync = true
}

// Abandon records a nonce whose transaction may or may not have reached the
// chain. It is reused only once the chain shows it never landed.
func (s *Sequencer) Abandon(account common.Address, nonce uint64) {
	st := s.state(account)

	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.seeded || nonce >= st.next {
		return
	}

	st.suspects[nonce] = struct{}{}
	st.needsResync = true
	s.logs.Warnw("nonce abandoned with unknown broadcast outcome",
		"account", account.Hex(),
		"nonce", nonce)
}

// Resync makes the next Reserve re-read the account nonce from the chain.
func (s *Sequencer) Resync(account common.Address) {
	st := s.state(account)

	st.mu.Lock()
	defer st.mu.Unlock()

	st.needsResync = true
}

func (s *Sequencer) Snapshot(account common.Address) State {
	st := s.state(account)

	st.mu.Lock()
	defer st.mu.Unlock()

	return State{
		Seeded:      st.seeded,
		NeedsResync: st.needsResync,
		Next:        st.next,
		Gaps:        sortedKeys(st.gaps),
		Suspects:    sortedKeys(st.suspects),
	}
}

// release must be called with st.mu held. A pending resync is only ever
// cleared by sync.
func (s *Sequencer) release(account common.Address, st *accountState, nonce uint64) {
	if !st.seeded || nonce >= st.next {
		return
	}

	if nonce+1 == st.next {
		st.next = nonce
		for st.next > 0 {
			if _, ok := st.gaps[st.next-1]; !ok {
				break
			}
			delete(st.gaps, st.next-1)
			st.next--
		}
		return
	}

	st.gaps[nonce] = struct{}{}
	st.needsResync = true
	s.logs.Infow("nonce released out of order, resync scheduled",
		"account", account.Hex(),
		"nonce", nonce,
		"next", st.next)
}

func (s *Sequencer) state(account common.Address) *accountState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.accounts[account]
	if !ok {
		st = &accountState{
			gaps:     make(map[uint64]struct{}),
			suspects: make(map[uint64]struct{}),
		}
		s.accounts[account] = st
	}
	return st
}

// sync must be called with st.mu held.
func (s *Sequencer) sync(ctx context.Context, account common.Address, st *accountState) error {
	mined, err := s.source.GetNonce(ctx, account)
	if err != nil {
		return fmt.Errorf("get mined nonce: %w", err)
	}
	pending, err := s.source.GetPendingNonce(ctx, account)
	if err != nil {
		return fmt.Errorf("get pending nonce: %w", err)
	}
	chainNext := max(mined, pending)

	for gap := range st.gaps {
		if gap < chainNext {
			delete(st.gaps, gap)
		}
	}

	// A suspect below the chain's next nonce landed. One exactly at it never
	// did and is reclaimed. Anything higher waits for the nonces below it.
	for suspect := range st.suspects {
		switch {
		case suspect < chainNext:
			delete(st.suspects, suspect)
		case suspect == chainNext:
			delete(st.suspects, suspect)
			st.gaps[suspect] = struct{}{}
		}
	}

	previous := st.next
	st.next = max(st.next, chainNext)
	st.seeded = true
	st.needsResync = len(st.suspects) > 0

	s.logs.Infow("nonce synced from chain",
		"account", account.Hex(),
		"mined", mined,
		"pending", pending,
		"previous_next", previous,
		"next", st.next,
		"gaps", sortedKeys(st.gaps),
		"suspects", sortedKeys(st.suspects))

	return nil
}

func lowest(set map[uint64]struct{}) (uint64, bool) {
	if len(set) == 0 {
		return 0, false
	}
	keys := sortedKeys(set)
	return keys[0], true
}

func sortedKeys(set map[uint64]struct{}) []uint64 {
	keys := make([]uint64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
