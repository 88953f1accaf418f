package session

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"bridgeswap/pkg/quote"
	"bridgeswap/pkg/types"
)

// WalletKinds lists the supported wallet identifiers.
var WalletKinds = []string{"metamask", "subwallet", "okx", "eternl", "lace"}

var walletNames = map[string]string{
	"metamask":  "MetaMask",
	"subwallet": "Sub-wallet",
	"okx":       "OKX Wallet",
	"eternl":    "Eternl",
	"lace":      "Lace",
}

// WalletDisplayName returns the human-readable name for a wallet kind,
// falling back to the kind itself.
func WalletDisplayName(kind string) string {
	if name, ok := walletNames[kind]; ok {
		return name
	}
	return kind
}

// WalletSlice holds the mock wallet session. The connected flag,
// address and wallet type are only ever written as a complete triple;
// overlapping Connect/Disconnect calls resolve last-write-wins via a
// generation counter rather than a lock held across the delay.
type WalletSlice struct {
	mu    sync.Mutex
	gen   uint64
	sess  types.WalletSession
	delay time.Duration
	r     *rand.Rand
	subs  subscribers
}

func newWalletSlice(r *rand.Rand, delay time.Duration) *WalletSlice {
	return &WalletSlice{r: r, delay: delay}
}

// Connect simulates a wallet connection: after the configured delay it
// synthesizes an address in the wallet's format and marks the session
// connected. A Connect or Disconnect issued while this one is pending
// supersedes it; the superseded call returns without touching state.
func (w *WalletSlice) Connect(ctx context.Context, walletKind string) error {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	if w.delay > 0 {
		select {
		case <-time.After(w.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	w.mu.Lock()
	if w.gen != gen {
		w.mu.Unlock()
		return nil
	}
	w.sess = types.WalletSession{
		Connected:  true,
		Address:    quote.MockWalletAddress(w.r, walletKind),
		WalletType: WalletDisplayName(walletKind),
	}
	w.mu.Unlock()
	w.subs.notify()
	return nil
}

// Disconnect clears the session atomically and invalidates any pending
// Connect.
func (w *WalletSlice) Disconnect() {
	w.mu.Lock()
	w.gen++
	w.sess = types.WalletSession{}
	w.mu.Unlock()
	w.subs.notify()
}

// Session returns a snapshot of the wallet state.
func (w *WalletSlice) Session() types.WalletSession {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sess
}

// Connected reports whether a wallet session is active.
func (w *WalletSlice) Connected() bool {
	return w.Session().Connected
}

// Subscribe registers a change listener and returns a cancel func.
func (w *WalletSlice) Subscribe(fn func()) (cancel func()) {
	return w.subs.subscribe(fn)
}
