// Package dict holds the dictionary cache: named option lists (statuses,
// categories, ...) looked up synchronously by search views with a dictName.
package dict

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/chentanran/allschemas"
)

// ErrInvalidFile reports a dictionary document that is not a mapping of
// name -> list of options.
var ErrInvalidFile = errors.New("dict: invalid dictionary file")

// Cache is a concurrency-safe dictionary. It implements allschemas.Dictionary.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]allschemas.Option
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: map[string][]allschemas.Option{}}
}

// Lookup returns a copy of the named list.
func (c *Cache) Lookup(name string) ([]allschemas.Option, bool) {
	c.mu.RLock()
	opts, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return copyOptions(opts), true
}

// Set stores a copy of opts under name.
func (c *Cache) Set(name string, opts []allschemas.Option) {
	cp := copyOptions(opts)
	c.mu.Lock()
	c.entries[name] = cp
	c.mu.Unlock()
}

// Delete removes name.
func (c *Cache) Delete(name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}

// Names lists the cached names in sorted order.
func (c *Cache) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.entries))
	for n := range c.entries {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Replace swaps the whole content in one step.
func (c *Cache) Replace(entries map[string][]allschemas.Option) {
	next := make(map[string][]allschemas.Option, len(entries))
	for k, v := range entries {
		next[k] = copyOptions(v)
	}
	c.mu.Lock()
	c.entries = next
	c.mu.Unlock()
}

// LoadYAML merges the entries of a YAML document into the cache.
func (c *Cache) LoadYAML(data []byte) error {
	entries, err := ParseYAML(data)
	if err != nil {
		return err
	}
	c.merge(entries)
	return nil
}

// LoadJSON merges the entries of a JSON document into the cache.
func (c *Cache) LoadJSON(data []byte) error {
	entries, err := ParseJSON(data)
	if err != nil {
		return err
	}
	c.merge(entries)
	return nil
}

// LoadFile merges a JSON (.json) or YAML file into the cache.
func (c *Cache) LoadFile(path string) error {
	entries, err := ParseFile(path)
	if err != nil {
		return err
	}
	c.merge(entries)
	return nil
}

func (c *Cache) merge(entries map[string][]allschemas.Option) {
	c.mu.Lock()
	for k, v := range entries {
		c.entries[k] = v
	}
	c.mu.Unlock()
}

// ParseYAML decodes a document of the form
//
//	status:
//	  - {value: 1, label: status.active}
//	  - {value: 0, label: status.disabled}
func ParseYAML(data []byte) (map[string][]allschemas.Option, error) {
	var doc map[string][]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return toEntries(doc), nil
}

// ParseJSON decodes the JSON form of the document ParseYAML reads.
func ParseJSON(data []byte) (map[string][]allschemas.Option, error) {
	var doc map[string][]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return toEntries(doc), nil
}

// ParseFile reads path with ParseJSON or ParseYAML by extension.
func ParseFile(path string) (map[string][]allschemas.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries map[string][]allschemas.Option
	if strings.EqualFold(filepath.Ext(path), ".json") {
		entries, err = ParseJSON(data)
	} else {
		entries, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

func toEntries(doc map[string][]map[string]any) map[string][]allschemas.Option {
	out := make(map[string][]allschemas.Option, len(doc))
	for name, list := range doc {
		opts := make([]allschemas.Option, 0, len(list))
		for _, m := range list {
			opts = append(opts, allschemas.Option(m))
		}
		out[name] = opts
	}
	return out
}

func copyOptions(opts []allschemas.Option) []allschemas.Option {
	if opts == nil {
		return nil
	}
	out := make([]allschemas.Option, len(opts))
	for i, o := range opts {
		cp := make(allschemas.Option, len(o))
		for k, v := range o {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}
