// Package tracker drives the staged lifecycle of a submitted swap,
// advancing it through deposit detection, cross-chain transfer and
// destination settlement on a fixed cadence.
package tracker

import (
	"math/rand"
	"sync"
	"time"

	"bridgeswap/pkg/quote"
)

// Stage identifies a point in the swap lifecycle. Stages only ever
// advance; a tracker never moves backwards.
type Stage string

const (
	StageQuoteCreated     Stage = "quote_created"
	StageDepositPending   Stage = "deposit_pending"
	StageDepositConfirmed Stage = "deposit_confirmed"
	StageCrossChain       Stage = "cross_chain_pending"
	StageDestination      Stage = "destination_pending"
	StageCompleted        Stage = "completed"
)

// stageOrder is the full progression with the percent shown for each.
var stageOrder = []struct {
	stage    Stage
	progress int
}{
	{StageQuoteCreated, 10},
	{StageDepositPending, 25},
	{StageDepositConfirmed, 40},
	{StageCrossChain, 65},
	{StageDestination, 85},
	{StageCompleted, 100},
}

var stageLabels = map[Stage]string{
	StageQuoteCreated:     "Quote created",
	StageDepositPending:   "Waiting for deposit",
	StageDepositConfirmed: "Deposit confirmed",
	StageCrossChain:       "Cross-chain transfer in progress",
	StageDestination:      "Settling on destination chain",
	StageCompleted:        "Swap completed",
}

// Label returns the display text for a stage.
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// Update is a point-in-time view of a tracked swap. The source hash is
// set once the deposit is confirmed, the destination hash on completion.
type Update struct {
	Stage      Stage  `json:"stage"`
	Progress   int    `json:"progress"`
	SourceTx   string `json:"source_tx,omitempty"`
	DestTx     string `json:"dest_tx,omitempty"`
	Terminal   bool   `json:"terminal"`
	StageLabel string `json:"stage_label"`
}

// DefaultInterval is the cadence between stage transitions.
const DefaultInterval = 5 * time.Second

// Tracker advances a single swap through its stages. One scheduler runs
// per tracker; Start while running is a no-op and Stop is idempotent.
type Tracker struct {
	mu       sync.Mutex
	idx      int
	srcTx    string
	dstTx    string
	interval time.Duration
	r        *rand.Rand
	srcChain string
	dstChain string

	running bool
	stop    chan struct{}
	done    chan struct{}
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithInterval overrides the stage transition cadence.
func WithInterval(d time.Duration) Option {
	return func(t *Tracker) { t.interval = d }
}

// WithRand injects the randomness source used for synthesized hashes.
func WithRand(r *rand.Rand) Option {
	return func(t *Tracker) { t.r = r }
}

// New creates a tracker for a swap between the two chains. The chain
// ids decide the format of the synthesized transaction hashes.
func New(sourceChain, destChain string, opts ...Option) *Tracker {
	t := &Tracker{
		interval: DefaultInterval,
		r:        rand.New(rand.NewSource(time.Now().UnixNano())),
		srcChain: sourceChain,
		dstChain: destChain,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Update {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.updateLocked()
}

func (t *Tracker) updateLocked() Update {
	s := stageOrder[t.idx]
	return Update{
		Stage:      s.stage,
		Progress:   s.progress,
		SourceTx:   t.srcTx,
		DestTx:     t.dstTx,
		Terminal:   s.stage == StageCompleted,
		StageLabel: s.stage.Label(),
	}
}

// Advance moves to the next stage and returns the resulting state.
// Advancing a completed tracker returns the final state unchanged.
func (t *Tracker) Advance() Update {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.idx < len(stageOrder)-1 {
		t.idx++
		switch stageOrder[t.idx].stage {
		case StageDepositConfirmed:
			t.srcTx = quote.MockTxHash(t.r, t.srcChain)
		case StageCompleted:
			t.dstTx = quote.MockTxHash(t.r, t.dstChain)
		}
	}
	return t.updateLocked()
}

// Start launches the scheduler, invoking fn after every transition
// until the swap completes or Stop is called. fn runs on the scheduler
// goroutine. Starting an already-running tracker does nothing.
func (t *Tracker) Start(fn func(Update)) {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	stop, done := t.stop, t.done
	t.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				u := t.Advance()
				if fn != nil {
					fn(u)
				}
				if u.Terminal {
					t.mu.Lock()
					t.running = false
					t.mu.Unlock()
					return
				}
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts the scheduler and waits for it to exit. Safe to call
// multiple times or on a tracker that never started.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	stop, done := t.stop, t.done
	t.mu.Unlock()

	close(stop)
	<-done
}

// Running reports whether the scheduler is active.
func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// StageAfter returns the state a fresh tracker would be in after the
// given elapsed time, without running a scheduler. Used to answer
// status queries for quotes tracked elsewhere.
func StageAfter(elapsed, interval time.Duration) (Stage, int) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	steps := int(elapsed / interval)
	if steps >= len(stageOrder) {
		steps = len(stageOrder) - 1
	}
	if steps < 0 {
		steps = 0
	}
	return stageOrder[steps].stage, stageOrder[steps].progress
}
