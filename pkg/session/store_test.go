package session

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgeswap/pkg/types"
)

func testStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	base := []Option{
		WithRand(rand.New(rand.NewSource(42))),
		WithConnectDelay(0),
	}
	return New(append(base, opts...)...)
}

func TestNewSeedsLedger(t *testing.T) {
	s := testStore(t)

	records := s.History.Transactions()
	require.Len(t, records, DefaultSeedCount)

	// newest first
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Timestamp.After(records[i-1].Timestamp))
	}

	for _, rec := range records {
		assert.False(t, rec.Temporary)
		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.TxHash)
		assert.NotEqual(t, rec.SourceChain, rec.DestChain)
		assert.Contains(t, []types.TxStatus{types.TxCompleted, types.TxPending, types.TxFailed}, rec.Status)
	}
}

func TestSeedCountOverride(t *testing.T) {
	s := testStore(t, WithSeedCount(10))
	assert.Equal(t, 10, s.History.Count())

	empty := testStore(t, WithSeedCount(0))
	assert.Equal(t, 0, empty.History.Count())
}

func TestHistoryAddPrepends(t *testing.T) {
	s := testStore(t, WithSeedCount(5))

	rec := s.History.Add(types.TransactionRecord{
		SourceChain: "Cardano", SourceToken: "ADA", SourceAmount: "100",
		DestChain: "Ethereum", DestToken: "ETH", DestAmount: "0.0180",
	})

	assert.Regexp(t, `^BSW_`, rec.ID)
	assert.Equal(t, types.TxPending, rec.Status)
	assert.True(t, rec.Temporary)
	assert.False(t, rec.Timestamp.IsZero())

	records := s.History.Transactions()
	require.Len(t, records, 6)
	assert.Equal(t, rec.ID, records[0].ID)
}

func TestClearTemporaryOnlyRemovesSessionRecords(t *testing.T) {
	s := testStore(t, WithSeedCount(5))

	s.History.Add(types.TransactionRecord{SourceToken: "ADA"})
	s.History.Add(types.TransactionRecord{SourceToken: "SOL"})
	require.Equal(t, 7, s.History.Count())
	require.Equal(t, 2, s.History.TemporaryCount())

	s.History.ClearTemporary()
	assert.Equal(t, 5, s.History.Count())
	assert.Equal(t, 0, s.History.TemporaryCount())

	// clearing again is a no-op
	s.History.ClearTemporary()
	assert.Equal(t, 5, s.History.Count())
}

func TestHistoryAppendSubscription(t *testing.T) {
	s := testStore(t, WithSeedCount(0))

	var got []types.TransactionRecord
	cancel := s.History.SubscribeAppend(func(rec types.TransactionRecord) {
		got = append(got, rec)
	})

	s.History.Add(types.TransactionRecord{SourceToken: "ADA"})
	require.Len(t, got, 1)
	assert.Equal(t, "ADA", got[0].SourceToken)

	cancel()
	s.History.Add(types.TransactionRecord{SourceToken: "SOL"})
	assert.Len(t, got, 1)
}

func TestWalletConnect(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Wallet.Connect(context.Background(), "metamask"))

	sess := s.Wallet.Session()
	assert.True(t, sess.Connected)
	assert.Equal(t, "MetaMask", sess.WalletType)
	assert.Regexp(t, `^0x`, sess.Address)

	require.NoError(t, s.Wallet.Connect(context.Background(), "eternl"))
	sess = s.Wallet.Session()
	assert.Equal(t, "Eternl", sess.WalletType)
	assert.Regexp(t, `^addr1`, sess.Address)
}

func TestWalletDisconnectWinsOverPendingConnect(t *testing.T) {
	s := New(
		WithRand(rand.New(rand.NewSource(1))),
		WithConnectDelay(50*time.Millisecond),
	)

	done := make(chan error, 1)
	go func() { done <- s.Wallet.Connect(context.Background(), "metamask") }()

	time.Sleep(10 * time.Millisecond)
	s.Wallet.Disconnect()

	require.NoError(t, <-done)
	assert.False(t, s.Wallet.Connected())
	assert.Empty(t, s.Wallet.Session().Address)
}

func TestWalletConnectHonorsContext(t *testing.T) {
	s := New(
		WithRand(rand.New(rand.NewSource(1))),
		WithConnectDelay(time.Minute),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.Wallet.Connect(ctx, "metamask")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, s.Wallet.Connected())
}

func TestThemeDefaultsDarkAndToggles(t *testing.T) {
	s := testStore(t)

	assert.True(t, s.Theme.IsDark())
	s.Theme.Toggle()
	assert.False(t, s.Theme.IsDark())

	notified := 0
	cancel := s.Theme.Subscribe(func() { notified++ })
	defer cancel()

	s.Theme.SetDark(false) // unchanged, no notification
	assert.Equal(t, 0, notified)
	s.Theme.SetDark(true)
	assert.Equal(t, 1, notified)
}

func TestNavResolvePage(t *testing.T) {
	assert.Equal(t, "history", ResolvePage("history"))
	assert.Equal(t, DefaultPage, ResolvePage("bogus"))
	assert.Equal(t, DefaultPage, ResolvePage(""))
}

func TestNavStoresUnknownPagesAsIs(t *testing.T) {
	s := testStore(t)

	assert.Equal(t, InitialPage, s.Nav.CurrentPage())

	s.Nav.SetCurrentPage("bogus")
	assert.Equal(t, "bogus", s.Nav.CurrentPage())
	assert.Equal(t, DefaultPage, ResolvePage(s.Nav.CurrentPage()))
}

func TestNavPayloadSurvivesNavigation(t *testing.T) {
	s := testStore(t)

	s.Nav.SetPayload("quote-data")
	s.Nav.SetCurrentPage("deposit")
	assert.Equal(t, "quote-data", s.Nav.Payload())

	s.Nav.ClearPayload()
	assert.Nil(t, s.Nav.Payload())
}
