package session

import (
	"math/rand"
	"sync"
	"time"
)

// Store holds the four independent slices of shared session state:
// theme, navigation, wallet, and the transaction ledger. It lives for
// the duration of a session and is injected into every page; slices
// never reach outside the store.
type Store struct {
	Theme   *ThemeSlice
	Nav     *NavSlice
	Wallet  *WalletSlice
	History *HistorySlice
}

type config struct {
	seedCount    int
	connectDelay time.Duration
	r            *rand.Rand
	now          func() time.Time
}

// Option configures a Store.
type Option func(*config)

// WithSeedCount overrides the number of historical ledger records
// synthesized at initialization.
func WithSeedCount(n int) Option {
	return func(c *config) { c.seedCount = n }
}

// WithConnectDelay overrides the simulated wallet connection latency.
func WithConnectDelay(d time.Duration) Option {
	return func(c *config) { c.connectDelay = d }
}

// WithRand injects the randomness source used for seeding and
// synthesized identifiers.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.r = r }
}

// WithNow injects the clock.
func WithNow(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// DefaultSeedCount is the number of historical records synthesized at
// store initialization.
const DefaultSeedCount = 65

// DefaultConnectDelay is the simulated wallet connection latency.
const DefaultConnectDelay = time.Second

// New creates a session store with a freshly seeded transaction ledger.
func New(opts ...Option) *Store {
	cfg := &config{
		seedCount:    DefaultSeedCount,
		connectDelay: DefaultConnectDelay,
		r:            rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Each slice gets its own derived rand so concurrent slice
	// operations never share a source.
	walletRand := rand.New(rand.NewSource(cfg.r.Int63()))
	historyRand := rand.New(rand.NewSource(cfg.r.Int63()))

	return &Store{
		Theme:   newThemeSlice(),
		Nav:     newNavSlice(),
		Wallet:  newWalletSlice(walletRand, cfg.connectDelay),
		History: newHistorySlice(historyRand, cfg.now, cfg.seedCount),
	}
}

// subscribers is a minimal change-notification registry shared by the
// state slices.
type subscribers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (s *subscribers) subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]func())
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
