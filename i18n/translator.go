package i18n

import (
	"sync"
)

// Translator resolves a message key (a label, an option text) to display text.
type Translator interface {
	Translate(key string) string
}

// identityTranslator returns keys unchanged. It is the initial translator so
// labels pass through verbatim until a catalog is installed.
type identityTranslator struct{}

func (identityTranslator) Translate(key string) string { return key }

// Identity returns a Translator that echoes its input.
func Identity() Translator { return identityTranslator{} }

var (
	currentMu         sync.RWMutex
	currentTranslator Translator = identityTranslator{}
)

// SetTranslator replaces the current Translator. nil restores the identity
// translator.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = identityTranslator{}
	}
	currentMu.Lock()
	currentTranslator = tr
	currentMu.Unlock()
}

// Current returns the Translator installed with SetTranslator.
func Current() Translator {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return currentTranslator
}

// SetLanguage switches the language of the current translator when it
// supports languages (for example a *Catalog). It reports whether the switch
// was applied.
func SetLanguage(lang string) bool {
	ls, ok := Current().(interface{ SetLanguage(string) string })
	if !ok {
		return false
	}
	ls.SetLanguage(lang)
	return true
}

// T translates key with the current Translator.
func T(key string) string { return Current().Translate(key) }
