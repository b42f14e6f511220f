package allschemas

import (
	"context"

	"github.com/chentanran/allschemas/internal/tree"
)

// searchTask enriches one search record from its data source.
type searchTask struct {
	field      string
	api        Fetcher
	labelField string
}

// ProjectSearch builds the search schema and starts its enrichment tasks.
// Only nodes whose search view sets show=true are included.
func (e *Engine) ProjectSearch(ctx context.Context, nodes []Node) *SearchSchema {
	s, tasks := e.assembleSearch(nodes)
	s.start(ctx, e, tasks)
	return s
}

func (e *Engine) assembleSearch(nodes []Node) (*SearchSchema, []searchTask) {
	s := newSearchSchema()
	var tasks []searchTask
	tree.Visit(nodes, nodeChildren, func(n Node) {
		if !n.Search.visible(false) {
			return
		}
		rec := merge(
			Record{KeyComponent: "input"},
			n.Search.Record(),
			Record{KeyField: n.Field, KeyLabel: n.Label},
		)
		if name, _ := rec[KeyDictName].(string); name != "" {
			if opts, ok := e.dict.Lookup(name); ok {
				rec = withOptions(rec, TranslateOptionsWith(opts, labelFieldOf(rec), e.tr, e.labelMode))
			} else {
				e.log.Debug("dictionary entry not found", "field", n.Field, "dict", name)
			}
		} else if api, ok := rec[KeyAPI].(Fetcher); ok && api != nil {
			tasks = append(tasks, searchTask{field: n.Field, api: api, labelField: labelFieldOf(rec)})
		}
		delete(rec, KeyShow)
		delete(rec, KeyDictName)
		s.items = append(s.items, rec)
	})
	return s, tasks
}

func (e *Engine) enrich(ctx context.Context, s *SearchSchema, t searchTask) {
	res, err := t.api.Fetch(ctx)
	if err != nil {
		e.log.DebugContext(ctx, "search options fetch failed", "field", t.field, "error", err)
		return
	}
	if res == nil || res.Data == nil {
		e.log.DebugContext(ctx, "search options fetch returned no data", "field", t.field)
		return
	}
	opts := TranslateOptionsWith(res.Data, t.labelField, e.tr, e.labelMode)
	if !s.patch(t.field, opts) {
		e.log.DebugContext(ctx, "search record vanished before patch", "field", t.field)
	}
}
