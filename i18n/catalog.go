package i18n

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog reports a catalog document that is not a mapping of
// language -> key -> message.
var ErrInvalidCatalog = errors.New("i18n: invalid catalog")

// Catalog is a Translator backed by per-language message tables. The first
// language added is the fallback for negotiation.
type Catalog struct {
	mu       sync.RWMutex
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
	active   language.Tag
}

// NewCatalog returns an empty catalog. Until languages are added it behaves
// like the identity translator.
func NewCatalog() *Catalog {
	return &Catalog{messages: map[language.Tag]map[string]string{}}
}

// Add merges messages for lang into the catalog.
func (c *Catalog) Add(lang string, msgs map[string]string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("i18n: language %q: %w", lang, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	table, ok := c.messages[tag]
	if !ok {
		table = make(map[string]string, len(msgs))
		c.messages[tag] = table
		c.tags = append(c.tags, tag)
		c.matcher = language.NewMatcher(c.tags)
		if len(c.tags) == 1 {
			c.active = tag
		}
	}
	for k, v := range msgs {
		table[k] = v
	}
	return nil
}

// SetLanguage selects the best supported language for lang (a BCP 47 tag or
// an Accept-Language style list) and returns the selected tag's string.
func (c *Catalog) SetLanguage(lang string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.matcher == nil {
		return ""
	}
	desired, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(desired) == 0 {
		desired = []language.Tag{language.Make(lang)}
	}
	_, idx, _ := c.matcher.Match(desired...)
	c.active = c.tags[idx]
	return c.active.String()
}

// Language returns the active language tag.
func (c *Catalog) Language() language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Languages lists the languages in insertion order.
func (c *Catalog) Languages() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]language.Tag(nil), c.tags...)
}

// Translate returns the active language's message for key, or key itself
// when the message is missing.
func (c *Catalog) Translate(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if msg, ok := c.messages[c.active][key]; ok {
		return msg
	}
	return key
}

// LoadCatalogYAML reads a document of the form
//
//	en:
//	  status.active: Active
//	zh-CN:
//	  status.active: 启用
//
// Languages keep their document order, so the first one is the fallback.
func LoadCatalogYAML(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c := NewCatalog()
	if len(doc.Content) == 0 {
		return c, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidCatalog)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		lang := root.Content[i].Value
		var msgs map[string]string
		if err := root.Content[i+1].Decode(&msgs); err != nil {
			return nil, fmt.Errorf("%w: language %q: %v", ErrInvalidCatalog, lang, err)
		}
		if err := c.Add(lang, msgs); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadCatalogYAML(data)
}
