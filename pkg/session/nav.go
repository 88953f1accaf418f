package session

import "sync"

// DefaultPage is what unknown page ids resolve to at render time.
const DefaultPage = "swap"

// InitialPage is the page shown when a session starts.
const InitialPage = "home"

var knownPages = map[string]bool{
	"home":           true,
	"swap":           true,
	"quote-swap":     true,
	"indirect-swap":  true,
	"direct-swap":    true,
	"advanced-swap":  true,
	"history":        true,
	"liquidity":      true,
	"user-liquidity": true,
	"deposit":        true,
	"status":         true,
	"developer":      true,
	"error":          true,
	"settings":       true,
}

// ResolvePage maps a page id to the page that should render. Unknown
// ids fall back to the default page; the store itself never rejects an
// id, the fallback happens here at render time.
func ResolvePage(id string) string {
	if knownPages[id] {
		return id
	}
	return DefaultPage
}

// NavSlice tracks the active page and an opaque payload handed from one
// page to the next (a generated quote, typically). Setting the page
// does not clear the payload; the consuming page does that once the
// payload is no longer relevant.
type NavSlice struct {
	mu      sync.RWMutex
	page    string
	payload interface{}
	subs    subscribers
}

func newNavSlice() *NavSlice {
	return &NavSlice{page: InitialPage}
}

// CurrentPage returns the active page id as set, which may be unknown.
func (n *NavSlice) CurrentPage() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.page
}

// SetCurrentPage activates a page. Any id is accepted.
func (n *NavSlice) SetCurrentPage(id string) {
	n.mu.Lock()
	n.page = id
	n.mu.Unlock()
	n.subs.notify()
}

// Payload returns the cross-page payload, nil when absent.
func (n *NavSlice) Payload() interface{} {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.payload
}

// SetPayload stores a payload for a subsequently navigated-to page.
func (n *NavSlice) SetPayload(v interface{}) {
	n.mu.Lock()
	n.payload = v
	n.mu.Unlock()
	n.subs.notify()
}

// ClearPayload drops the payload once consumed.
func (n *NavSlice) ClearPayload() {
	n.SetPayload(nil)
}

// Subscribe registers a change listener and returns a cancel func.
func (n *NavSlice) Subscribe(fn func()) (cancel func()) {
	return n.subs.subscribe(fn)
}
