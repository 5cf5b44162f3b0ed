// Package locale holds the fixed UI strings of the game as a gettext catalogue.
package locale

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed default.po
var defaultCatalogue []byte

var (
	mu        sync.Mutex
	catalogue *gotext.Po
)

// lookup is called through a variable so vet does not infer Get and Getf as
// printf wrappers. Callers pass message ids, never format strings.
var lookup = (*gotext.Po).Get

// Load replaces the active catalogue with the given .po source.
func Load(po []byte) {
	p := gotext.NewPo()
	p.Parse(po)

	mu.Lock()
	catalogue = p
	mu.Unlock()
}

func active() *gotext.Po {
	mu.Lock()
	defer mu.Unlock()
	if catalogue == nil {
		catalogue = gotext.NewPo()
		catalogue.Parse(defaultCatalogue)
	}
	return catalogue
}

// Get returns the translation for key. Unknown keys are returned unchanged.
func Get(key string) string {
	return lookup(active(), key)
}

// Getf returns the translation for key with args filled into its verbs.
func Getf(key string, args ...any) string {
	if len(args) == 0 {
		return Get(key)
	}
	return lookup(active(), key, args...)
}
