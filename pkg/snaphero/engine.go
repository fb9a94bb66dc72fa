package snaphero

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// DefaultEngine is the capture backend used when none is configured.
const DefaultEngine = "rod"

// Engine is a capture backend. Implementations drive a headless browser to
// render the target and return the encoded screenshot.
type Engine interface {
	Name() string
	Capture(ctx context.Context, target *url.URL, options Options) (*Result, error)
}

var (
	enginesMu sync.RWMutex
	engines   = make(map[string]func() Engine)
)

// RegisterEngine makes an engine constructor available under the given name.
// Registering a name twice replaces the earlier constructor.
func RegisterEngine(name string, constructor func() Engine) {
	if name == "" || constructor == nil {
		return
	}
	enginesMu.Lock()
	defer enginesMu.Unlock()
	engines[strings.ToLower(name)] = constructor
}

// Engines returns the names of all registered engines, sorted.
func Engines() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newEngine(name string) (Engine, error) {
	if name == "" {
		name = DefaultEngine
	}
	enginesMu.RLock()
	constructor, ok := engines[strings.ToLower(strings.TrimSpace(name))]
	enginesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown capture engine %q (available: %s)", name, strings.Join(Engines(), ", "))
	}
	return constructor(), nil
}

// hideCookieBannersJS hides elements that look like cookie or consent
// banners. Kept as a bare statement list so each engine can wrap it the way
// its evaluate API expects.
const hideCookieBannersJS = `
	const selectors = [
		'[class*="cookie"]', '[id*="cookie"]',
		'[class*="consent"]', '[id*="consent"]',
		'[class*="gdpr"]', '[id*="gdpr"]',
		'[aria-label*="cookie"]', '[aria-label*="consent"]'
	];
	selectors.forEach(sel => {
		document.querySelectorAll(sel).forEach(el => {
			if (el.offsetHeight > 50) el.style.display = 'none';
		});
	});`
