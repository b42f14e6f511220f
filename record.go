package allschemas

// Record is one projected schema entry. Values are plain data except under
// KeyAPI, which holds the Fetcher that enriches a search record.
type Record map[string]any

// Option is one entry of an option list ({value, label, ...}).
type Option map[string]any

// merge overlays layers left to right; later keys win.
func merge(layers ...Record) Record {
	n := 0
	for _, l := range layers {
		n += len(l)
	}
	out := make(Record, n)
	for _, l := range layers {
		for k, v := range l {
			out[k] = v
		}
	}
	return out
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Field returns the record's field, or "" when absent or not a string.
func (r Record) Field() string {
	s, _ := r[KeyField].(string)
	return s
}

// Label returns the record's label.
func (r Record) Label() string {
	s, _ := r[KeyLabel].(string)
	return s
}

// Component returns the renderer identifier.
func (r Record) Component() string {
	s, _ := r[KeyComponent].(string)
	return s
}

// ComponentProps returns the record's componentProps mapping, or nil.
func (r Record) ComponentProps() map[string]any {
	m, _ := r[KeyComponentProps].(map[string]any)
	return m
}

// Options returns componentProps.options, or nil when unset.
func (r Record) Options() []Option {
	opts, _ := r.ComponentProps()[KeyOptions].([]Option)
	return opts
}

// Children returns nested table columns.
func (r Record) Children() []Record {
	kids, _ := r[KeyChildren].([]Record)
	return kids
}

// HasChildren reports whether the children key is present.
func (r Record) HasChildren() bool {
	_, ok := r[KeyChildren]
	return ok
}

func setChildren(r Record, kids []Record) Record {
	if r == nil {
		r = Record{}
	}
	if kids == nil {
		delete(r, KeyChildren)
		return r
	}
	r[KeyChildren] = kids
	return r
}

// withOptions returns a copy of r whose componentProps is a copy of the
// previous one with options set.
func withOptions(r Record, opts []Option) Record {
	out := r.clone()
	props := cloneMap(r.ComponentProps())
	if props == nil {
		props = make(map[string]any, 1)
	}
	props[KeyOptions] = opts
	out[KeyComponentProps] = props
	return out
}

// labelFieldOf reads componentProps.optionsAlias.labelField.
func labelFieldOf(r Record) string {
	alias, _ := r.ComponentProps()[KeyOptionsAlias].(map[string]any)
	s, _ := alias[KeyLabelField].(string)
	return s
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
