package allschemas

import "github.com/chentanran/allschemas/internal/tree"

// ProjectTable builds the column tree. Nodes are visible unless table.show is
// explicitly false. Each column is the table block overlaid with the whole
// node, so node keys (including the nested "table" record) win. Columns
// without a field are pruned together with their subtree, and a column
// whose children were all pruned loses the children key.
func (e *Engine) ProjectTable(nodes []Node) []Record {
	mapped := tree.Map(nodes, nodeChildren, func(n Node) Record {
		if !n.Table.visible(true) {
			return nil
		}
		return merge(n.Table.Record(), n.Record())
	}, setChildren)
	return tree.Filter(mapped, Record.Children, setChildren, func(r Record) bool {
		return r.Field() != ""
	})
}

// ProjectForm builds the flat form schema in pre-order. Nodes are visible
// unless form.show is false.
func (e *Engine) ProjectForm(nodes []Node) []Record {
	out := []Record{}
	tree.Visit(nodes, nodeChildren, func(n Node) {
		if !n.Form.visible(true) {
			return
		}
		rec := merge(
			Record{KeyComponent: "Input"},
			n.Form.Record(),
			Record{KeyField: n.Field, KeyLabel: n.Label},
		)
		delete(rec, KeyShow)
		out = append(out, rec)
	})
	return out
}

// ProjectDetail builds the flat read-only schema in pre-order.
func (e *Engine) ProjectDetail(nodes []Node) []Record {
	out := []Record{}
	tree.Visit(nodes, nodeChildren, func(n Node) {
		if !n.Detail.visible(true) {
			return
		}
		rec := merge(n.Detail.Record(), Record{KeyField: n.Field, KeyLabel: n.Label})
		delete(rec, KeyShow)
		out = append(out, rec)
	})
	return out
}
