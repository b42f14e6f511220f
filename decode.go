package allschemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type decodeConfig struct {
	resolver APIResolver
}

// DecodeOption configures schema document decoding.
type DecodeOption func(*decodeConfig)

// WithAPIResolver resolves `api` references (names or URLs) into Fetchers.
func WithAPIResolver(r APIResolver) DecodeOption {
	return func(c *decodeConfig) { c.resolver = r }
}

// DecodeYAML decodes a schema document: either a list of nodes or a mapping
// with a "schema" list.
func DecodeYAML(data []byte, opts ...DecodeOption) ([]Node, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return decodeDocument(doc, opts)
}

// DecodeJSON decodes a JSON schema document; see DecodeYAML.
func DecodeJSON(data []byte, opts ...DecodeOption) ([]Node, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return decodeDocument(doc, opts)
}

// LoadFile reads a schema document, choosing JSON for .json files and YAML
// otherwise.
func LoadFile(path string, opts ...DecodeOption) ([]Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var nodes []Node
	if strings.EqualFold(filepath.Ext(path), ".json") {
		nodes, err = DecodeJSON(data, opts...)
	} else {
		nodes, err = DecodeYAML(data, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}

func decodeDocument(doc any, opts []DecodeOption) ([]Node, error) {
	cfg := &decodeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if m, ok := asMap(doc); ok {
		list, has := m["schema"]
		if !has {
			return nil, fmt.Errorf("%w: mapping documents need a \"schema\" list", ErrInvalidSchema)
		}
		doc = list
	}
	if doc == nil {
		return []Node{}, nil
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of nodes", ErrInvalidSchema)
	}
	return cfg.nodes(list, "")
}

func (c *decodeConfig) nodes(list []any, path string) ([]Node, error) {
	out := make([]Node, 0, len(list))
	for i, item := range list {
		p := path + "/" + strconv.Itoa(i)
		m, ok := asMap(item)
		if !ok {
			return nil, fmt.Errorf("%w: %s: node must be a mapping", ErrInvalidSchema, p)
		}
		n, err := c.node(m, p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (c *decodeConfig) node(m map[string]any, path string) (Node, error) {
	var n Node
	for k, v := range m {
		var err error
		switch k {
		case KeyField:
			n.Field, err = str(v, path+"/"+k)
		case KeyLabel:
			n.Label, err = str(v, path+"/"+k)
		case KeyChildren:
			list, ok := v.([]any)
			if !ok && v != nil {
				return n, fmt.Errorf("%w: %s/children: expected a list", ErrInvalidSchema, path)
			}
			if list == nil {
				list = []any{}
			}
			n.Children, err = c.nodes(list, path+"/children")
		case KeySearch:
			n.Search, err = c.view(v, path+"/"+k)
		case KeyTable:
			n.Table, err = c.view(v, path+"/"+k)
		case KeyForm:
			n.Form, err = c.view(v, path+"/"+k)
		case KeyDetail:
			n.Detail, err = c.view(v, path+"/"+k)
		default:
			if n.Extra == nil {
				n.Extra = map[string]any{}
			}
			n.Extra[k] = normalize(v)
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *decodeConfig) view(v any, path string) (*View, error) {
	if v == nil {
		return &View{}, nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s: view must be a mapping", ErrInvalidSchema, path)
	}
	view := &View{}
	for k, val := range m {
		switch k {
		case KeyShow:
			b, ok := val.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: %s/show: expected a boolean", ErrInvalidSchema, path)
			}
			view.Show = &b
		case KeyComponent:
			s, err := str(val, path+"/"+k)
			if err != nil {
				return nil, err
			}
			view.Component = s
		case KeyComponentProps:
			props, ok := asMap(val)
			if !ok {
				return nil, fmt.Errorf("%w: %s/componentProps: expected a mapping", ErrInvalidSchema, path)
			}
			view.ComponentProps = normalizeProps(props)
		case KeyDictName:
			s, err := str(val, path+"/"+k)
			if err != nil {
				return nil, err
			}
			view.DictName = s
		case KeyAPI:
			ref, err := str(val, path+"/"+k)
			if err != nil {
				return nil, err
			}
			if c.resolver == nil {
				return nil, fmt.Errorf("%w: %s/api: %q (no resolver)", ErrUnresolvedAPI, path, ref)
			}
			f, err := c.resolver.Resolve(ref)
			if err != nil {
				return nil, fmt.Errorf("%w: %s/api: %v", ErrUnresolvedAPI, path, err)
			}
			view.API = f
		default:
			if view.Extra == nil {
				view.Extra = map[string]any{}
			}
			view.Extra[k] = normalize(val)
		}
	}
	return view, nil
}

// normalizeProps converts a decoded options list into []Option so the
// projectors see the same types as built-in schemas.
func normalizeProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		if k == KeyOptions {
			if list, ok := v.([]any); ok {
				opts := make([]Option, 0, len(list))
				for _, item := range list {
					if m, ok := asMap(item); ok {
						opts = append(opts, Option(normalizeMap(m)))
					}
				}
				out[k] = opts
				continue
			}
		}
		out[k] = normalize(v)
	}
	return out
}

func str(v any, path string) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: expected a string", ErrInvalidSchema, path)
	}
	return s, nil
}

// asMap accepts both string-keyed maps and the interface-keyed maps YAML
// produces for non-string keys.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func normalize(v any) any {
	if m, ok := asMap(v); ok {
		return normalizeMap(m)
	}
	if list, ok := v.([]any); ok {
		out := make([]any, len(list))
		for i, x := range list {
			out[i] = normalize(x)
		}
		return out
	}
	return v
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}
