package tracker

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTracker(opts ...Option) *Tracker {
	base := []Option{WithRand(rand.New(rand.NewSource(1)))}
	return New("cardano", "ethereum", append(base, opts...)...)
}

func TestAdvanceWalksAllStages(t *testing.T) {
	tr := testTracker()

	u := tr.Snapshot()
	assert.Equal(t, StageQuoteCreated, u.Stage)
	assert.Equal(t, 10, u.Progress)
	assert.Empty(t, u.SourceTx)

	u = tr.Advance()
	assert.Equal(t, StageDepositPending, u.Stage)
	assert.Equal(t, 25, u.Progress)
	assert.Empty(t, u.SourceTx)

	u = tr.Advance()
	assert.Equal(t, StageDepositConfirmed, u.Stage)
	assert.Equal(t, 40, u.Progress)
	// deposit hash appears on confirmation, in source-chain format
	assert.Regexp(t, `^[0-9a-f]{64}$`, u.SourceTx)
	assert.Empty(t, u.DestTx)

	u = tr.Advance()
	assert.Equal(t, StageCrossChain, u.Stage)
	assert.Equal(t, 65, u.Progress)

	u = tr.Advance()
	assert.Equal(t, StageDestination, u.Stage)
	assert.Equal(t, 85, u.Progress)

	u = tr.Advance()
	assert.Equal(t, StageCompleted, u.Stage)
	assert.Equal(t, 100, u.Progress)
	assert.True(t, u.Terminal)
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, u.DestTx)

	// advancing a completed swap changes nothing
	again := tr.Advance()
	assert.Equal(t, u, again)
}

func TestStartRunsToCompletion(t *testing.T) {
	tr := testTracker(WithInterval(time.Millisecond))

	var mu sync.Mutex
	var stages []Stage
	done := make(chan struct{})

	tr.Start(func(u Update) {
		mu.Lock()
		stages = append(stages, u.Stage)
		mu.Unlock()
		if u.Terminal {
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tracker did not complete")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []Stage{
		StageDepositPending,
		StageDepositConfirmed,
		StageCrossChain,
		StageDestination,
		StageCompleted,
	}, stages)
}

func TestStartIsIdempotentWhileRunning(t *testing.T) {
	tr := testTracker(WithInterval(time.Hour))
	defer tr.Stop()

	tr.Start(nil)
	require.True(t, tr.Running())

	// second Start must not spawn a second scheduler
	tr.Start(func(Update) { t.Error("callback from duplicate scheduler") })
	assert.True(t, tr.Running())
}

func TestStopIsIdempotent(t *testing.T) {
	tr := testTracker(WithInterval(time.Hour))

	// stopping before starting is safe
	tr.Stop()

	tr.Start(nil)
	tr.Stop()
	assert.False(t, tr.Running())
	tr.Stop()
}

func TestStageLabels(t *testing.T) {
	assert.Equal(t, "Waiting for deposit", StageDepositPending.Label())
	assert.Equal(t, "Swap completed", StageCompleted.Label())
	assert.Equal(t, "mystery", Stage("mystery").Label())
}

func TestStageAfter(t *testing.T) {
	iv := 5 * time.Second

	stage, progress := StageAfter(0, iv)
	assert.Equal(t, StageQuoteCreated, stage)
	assert.Equal(t, 10, progress)

	stage, progress = StageAfter(7*time.Second, iv)
	assert.Equal(t, StageDepositPending, stage)
	assert.Equal(t, 25, progress)

	stage, progress = StageAfter(12*time.Second, iv)
	assert.Equal(t, StageDepositConfirmed, stage)
	assert.Equal(t, 40, progress)

	// stays terminal no matter how old the quote is
	stage, progress = StageAfter(time.Hour, iv)
	assert.Equal(t, StageCompleted, stage)
	assert.Equal(t, 100, progress)

	// zero interval falls back to the default
	stage, _ = StageAfter(0, 0)
	assert.Equal(t, StageQuoteCreated, stage)
}
