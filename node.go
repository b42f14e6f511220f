package allschemas

// Record keys with meaning to the projectors.
const (
	KeyField          = "field"
	KeyLabel          = "label"
	KeyChildren       = "children"
	KeyShow           = "show"
	KeyComponent      = "component"
	KeyComponentProps = "componentProps"
	KeyDictName       = "dictName"
	KeyAPI            = "api"
	KeyOptions        = "options"
	KeyOptionsAlias   = "optionsAlias"
	KeyLabelField     = "labelField"

	KeySearch = "search"
	KeyTable  = "table"
	KeyForm   = "form"
	KeyDetail = "detail"
)

// Node is one entity attribute described for all four views at once.
type Node struct {
	Field    string
	Label    string
	Children []Node // nested or grouped table columns

	Search *View
	Table  *View
	Form   *View
	Detail *View

	// Extra carries any other node-level keys. They reach the table
	// projection through the whole-node merge.
	Extra map[string]any
}

// Record renders the node as a record: Extra, then the identity keys that are
// set, then each present view block as a nested record. Children are not
// included.
func (n Node) Record() Record {
	r := make(Record, len(n.Extra)+6)
	for k, v := range n.Extra {
		r[k] = v
	}
	if n.Field != "" {
		r[KeyField] = n.Field
	}
	if n.Label != "" {
		r[KeyLabel] = n.Label
	}
	for key, v := range map[string]*View{KeySearch: n.Search, KeyTable: n.Table, KeyForm: n.Form, KeyDetail: n.Detail} {
		if v != nil {
			r[key] = v.Record()
		}
	}
	return r
}

func nodeChildren(n Node) []Node { return n.Children }

// View is a per-view annotation block.
type View struct {
	// Show controls inclusion. nil means absent, and the view's default
	// policy applies: hidden for search, visible for table/form/detail.
	Show           *bool
	Component      string
	ComponentProps map[string]any
	// DictName fills componentProps.options from the dictionary (search only).
	DictName string
	// API fills componentProps.options asynchronously (search only, when
	// DictName is empty).
	API Fetcher
	// Extra holds passthrough keys (rules, placeholder, width, ...).
	Extra map[string]any
}

// Record renders the view block, including only the keys that are set.
// Typed keys win over same-named Extra keys. A nil view renders as an empty
// record.
func (v *View) Record() Record {
	if v == nil {
		return Record{}
	}
	r := make(Record, len(v.Extra)+5)
	for k, val := range v.Extra {
		r[k] = val
	}
	if v.Show != nil {
		r[KeyShow] = *v.Show
	}
	if v.Component != "" {
		r[KeyComponent] = v.Component
	}
	if v.ComponentProps != nil {
		r[KeyComponentProps] = cloneMap(v.ComponentProps)
	}
	if v.DictName != "" {
		r[KeyDictName] = v.DictName
	}
	if v.API != nil {
		r[KeyAPI] = v.API
	}
	return r
}

func (v *View) visible(def bool) bool {
	if v == nil || v.Show == nil {
		return def
	}
	return *v.Show
}

// Bool returns a pointer to b, for View.Show.
func Bool(b bool) *bool { return &b }
