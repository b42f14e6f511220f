package allschemas

import (
	json "github.com/goccy/go-json"
)

// Snapshot is a plain-data copy of AllSchemas at one point in time, shaped
// the way front-end consumers expect it.
type Snapshot struct {
	SearchSchema []any `json:"searchSchema" yaml:"searchSchema"`
	TableColumns []any `json:"tableColumns" yaml:"tableColumns"`
	FormSchema   []any `json:"formSchema" yaml:"formSchema"`
	DetailSchema []any `json:"detailSchema" yaml:"detailSchema"`
}

// Snapshot copies the current state. Fetchers under "api" are reported as
// true.
func (a *AllSchemas) Snapshot() Snapshot {
	var search []Record
	if a.Search != nil {
		search = a.Search.Items()
	}
	return Snapshot{
		SearchSchema: PlainRecords(search),
		TableColumns: PlainRecords(a.Table),
		FormSchema:   PlainRecords(a.Form),
		DetailSchema: PlainRecords(a.Detail),
	}
}

// MarshalJSON encodes the current snapshot.
func (a *AllSchemas) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Snapshot())
}

// PlainRecords converts records to generic maps and slices, never nil.
func PlainRecords(rs []Record) []any {
	out := make([]any, 0, len(rs))
	for _, r := range rs {
		out = append(out, plain(r))
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case Record:
		return plainMap(t)
	case Option:
		return plainMap(t)
	case map[string]any:
		return plainMap(t)
	case []Record:
		out := make([]any, len(t))
		for i, r := range t {
			out[i] = plain(r)
		}
		return out
	case []Option:
		out := make([]any, len(t))
		for i, o := range t {
			out[i] = plain(o)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = plain(x)
		}
		return out
	case Fetcher:
		return true
	default:
		return v
	}
}

func plainMap[M ~map[string]any](m M) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plain(v)
	}
	return out
}
