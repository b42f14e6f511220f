package dsl

import "github.com/chentanran/allschemas"

type nodeBuilder struct {
	n allschemas.Node
}

// Field starts a node for the given data attribute.
func Field(field, label string) *nodeBuilder {
	return &nodeBuilder{n: allschemas.Node{Field: field, Label: label}}
}

// Group starts a node without a field, typically a column group header that
// the table projection prunes unless a child-less header is wanted.
func Group(label string) *nodeBuilder {
	return &nodeBuilder{n: allschemas.Node{Label: label}}
}

// Search sets the search view.
func (b *nodeBuilder) Search(v *viewBuilder) *nodeBuilder { b.n.Search = v.View(); return b }

// Table sets the table view.
func (b *nodeBuilder) Table(v *viewBuilder) *nodeBuilder { b.n.Table = v.View(); return b }

// Form sets the form view.
func (b *nodeBuilder) Form(v *viewBuilder) *nodeBuilder { b.n.Form = v.View(); return b }

// Detail sets the detail view.
func (b *nodeBuilder) Detail(v *viewBuilder) *nodeBuilder { b.n.Detail = v.View(); return b }

// Children appends nested nodes.
func (b *nodeBuilder) Children(kids ...*nodeBuilder) *nodeBuilder {
	if b.n.Children == nil {
		b.n.Children = make([]allschemas.Node, 0, len(kids))
	}
	for _, k := range kids {
		b.n.Children = append(b.n.Children, k.Node())
	}
	return b
}

// Set stores a node-level key outside the known ones.
func (b *nodeBuilder) Set(key string, value any) *nodeBuilder {
	if b.n.Extra == nil {
		b.n.Extra = map[string]any{}
	}
	b.n.Extra[key] = value
	return b
}

// Node returns the built node.
func (b *nodeBuilder) Node() allschemas.Node { return b.n }

// Schema builds a node list.
func Schema(nodes ...*nodeBuilder) []allschemas.Node {
	out := make([]allschemas.Node, 0, len(nodes))
	for _, b := range nodes {
		out = append(out, b.Node())
	}
	return out
}
