package session

import "sync"

// ThemeSlice holds the active display theme. Dark mode is the default.
type ThemeSlice struct {
	mu   sync.RWMutex
	dark bool
	subs subscribers
}

func newThemeSlice() *ThemeSlice {
	return &ThemeSlice{dark: true}
}

// IsDark reports whether dark mode is active.
func (t *ThemeSlice) IsDark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dark
}

// Toggle flips the active theme.
func (t *ThemeSlice) Toggle() {
	t.mu.Lock()
	t.dark = !t.dark
	t.mu.Unlock()
	t.subs.notify()
}

// SetDark sets the theme explicitly, used when importing settings.
func (t *ThemeSlice) SetDark(dark bool) {
	t.mu.Lock()
	changed := t.dark != dark
	t.dark = dark
	t.mu.Unlock()
	if changed {
		t.subs.notify()
	}
}

// Subscribe registers a change listener and returns a cancel func.
func (t *ThemeSlice) Subscribe(fn func()) (cancel func()) {
	return t.subs.subscribe(fn)
}
