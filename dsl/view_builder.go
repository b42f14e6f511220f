package dsl

import "github.com/chentanran/allschemas"

type viewBuilder struct {
	v allschemas.View
}

// View starts an empty view block. An empty block keeps the view's default
// visibility.
func View() *viewBuilder { return &viewBuilder{} }

// Show marks the view visible.
func (b *viewBuilder) Show() *viewBuilder { b.v.Show = allschemas.Bool(true); return b }

// Hide marks the view hidden.
func (b *viewBuilder) Hide() *viewBuilder { b.v.Show = allschemas.Bool(false); return b }

// Component sets the renderer identifier.
func (b *viewBuilder) Component(name string) *viewBuilder { b.v.Component = name; return b }

// Prop sets one componentProps key.
func (b *viewBuilder) Prop(key string, value any) *viewBuilder {
	if b.v.ComponentProps == nil {
		b.v.ComponentProps = map[string]any{}
	}
	b.v.ComponentProps[key] = value
	return b
}

// Options sets a fixed componentProps.options list.
func (b *viewBuilder) Options(opts ...allschemas.Option) *viewBuilder {
	return b.Prop(allschemas.KeyOptions, opts)
}

// LabelField sets componentProps.optionsAlias.labelField.
func (b *viewBuilder) LabelField(field string) *viewBuilder {
	alias, _ := b.v.ComponentProps[allschemas.KeyOptionsAlias].(map[string]any)
	if alias == nil {
		alias = map[string]any{}
	}
	alias[allschemas.KeyLabelField] = field
	return b.Prop(allschemas.KeyOptionsAlias, alias)
}

// Dict fills options from the named dictionary entry.
func (b *viewBuilder) Dict(name string) *viewBuilder { b.v.DictName = name; return b }

// API fills options asynchronously from f.
func (b *viewBuilder) API(f allschemas.Fetcher) *viewBuilder { b.v.API = f; return b }

// Set stores a passthrough key (rules, placeholder, width, ...).
func (b *viewBuilder) Set(key string, value any) *viewBuilder {
	if b.v.Extra == nil {
		b.v.Extra = map[string]any{}
	}
	b.v.Extra[key] = value
	return b
}

// View returns a copy of the built block.
func (b *viewBuilder) View() *allschemas.View {
	if b == nil {
		return nil
	}
	v := b.v
	return &v
}
