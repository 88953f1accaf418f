package session

import (
	"math/rand"
	"sync"
	"time"

	"bridgeswap/pkg/quote"
	"bridgeswap/pkg/types"
)

// HistorySlice owns the in-memory transaction ledger, newest first.
// Pages may append or request a clear of temporary records; they never
// mutate records in place.
type HistorySlice struct {
	mu      sync.RWMutex
	records []types.TransactionRecord
	r       *rand.Rand
	now     func() time.Time

	appendMu   sync.Mutex
	appendNext int
	appendFns  map[int]func(types.TransactionRecord)
}

func newHistorySlice(r *rand.Rand, now func() time.Time, seedCount int) *HistorySlice {
	return &HistorySlice{
		records: seedLedger(r, now(), seedCount),
		r:       r,
		now:     now,
	}
}

// Transactions returns a snapshot of the ledger, newest first.
func (h *HistorySlice) Transactions() []types.TransactionRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]types.TransactionRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Count returns the number of ledger records.
func (h *HistorySlice) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// TemporaryCount returns the number of records appended this session.
func (h *HistorySlice) TemporaryCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, rec := range h.records {
		if rec.Temporary {
			n++
		}
	}
	return n
}

// Add fills in the generated fields of a partial record (id, timestamp,
// pending status, temporary flag) and prepends it to the ledger. The
// completed record is returned.
func (h *HistorySlice) Add(partial types.TransactionRecord) types.TransactionRecord {
	h.mu.Lock()
	rec := partial
	rec.ID = quote.NewQuoteID(h.r)
	rec.Timestamp = h.now()
	rec.Status = types.TxPending
	rec.Temporary = true
	h.records = append([]types.TransactionRecord{rec}, h.records...)
	h.mu.Unlock()
	h.notifyAppend(rec)
	return rec
}

// ClearTemporary removes only the records created by this session's
// user actions; seeded historical records are never touched. Calling
// it with no temporary records is a no-op.
func (h *HistorySlice) ClearTemporary() {
	h.mu.Lock()
	defer h.mu.Unlock()
	kept := h.records[:0]
	for _, rec := range h.records {
		if !rec.Temporary {
			kept = append(kept, rec)
		}
	}
	h.records = kept
}

// SubscribeAppend registers a listener invoked with each appended
// record and returns a cancel func.
func (h *HistorySlice) SubscribeAppend(fn func(types.TransactionRecord)) (cancel func()) {
	h.appendMu.Lock()
	defer h.appendMu.Unlock()
	if h.appendFns == nil {
		h.appendFns = make(map[int]func(types.TransactionRecord))
	}
	id := h.appendNext
	h.appendNext++
	h.appendFns[id] = fn
	return func() {
		h.appendMu.Lock()
		defer h.appendMu.Unlock()
		delete(h.appendFns, id)
	}
}

func (h *HistorySlice) notifyAppend(rec types.TransactionRecord) {
	h.appendMu.Lock()
	fns := make([]func(types.TransactionRecord), 0, len(h.appendFns))
	for _, fn := range h.appendFns {
		fns = append(fns, fn)
	}
	h.appendMu.Unlock()
	for _, fn := range fns {
		fn(rec)
	}
}
