package source

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/chentanran/allschemas"
)

// Registry maps names to Fetchers and implements allschemas.APIResolver.
// References starting with http:// or https:// that are not registered
// become HTTP fetchers using the registry's HTTP options.
type Registry struct {
	mu       sync.RWMutex
	named    map[string]allschemas.Fetcher
	httpOpts []HTTPOption
}

// NewRegistry returns an empty registry.
func NewRegistry(httpOpts ...HTTPOption) *Registry {
	return &Registry{named: map[string]allschemas.Fetcher{}, httpOpts: httpOpts}
}

// Register binds name to f, replacing any previous binding.
func (r *Registry) Register(name string, f allschemas.Fetcher) {
	r.mu.Lock()
	r.named[name] = f
	r.mu.Unlock()
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.named))
	for n := range r.named {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Resolve implements allschemas.APIResolver.
func (r *Registry) Resolve(ref string) (allschemas.Fetcher, error) {
	r.mu.RLock()
	f, ok := r.named[ref]
	r.mu.RUnlock()
	if ok {
		return f, nil
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return HTTP(ref, r.httpOpts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, ref)
}
