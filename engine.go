package allschemas

import (
	"context"
	"log/slog"

	"github.com/chentanran/allschemas/i18n"
)

// AllSchemas is the result of one Build call. Table, Form and Detail are
// complete on return; Search keeps receiving option lists from pending
// data-source tasks.
type AllSchemas struct {
	Search *SearchSchema
	Table  []Record
	Form   []Record
	Detail []Record
}

// Engine projects unified schema trees. An Engine is safe for concurrent use
// as long as its collaborators are.
type Engine struct {
	dict      Dictionary
	tr        Translator
	log       *slog.Logger
	labelMode LabelFieldMode
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDictionary sets the dictionary consulted for search views with a
// dictName.
func WithDictionary(d Dictionary) EngineOption {
	return func(e *Engine) {
		if d != nil {
			e.dict = d
		}
	}
}

// WithTranslator sets the translator applied to option labels.
func WithTranslator(tr Translator) EngineOption {
	return func(e *Engine) {
		if tr != nil {
			e.tr = tr
		}
	}
}

// WithLogger sets the logger for enrichment diagnostics (debug level).
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithLabelFieldMode selects how optionsAlias.labelField is applied.
func WithLabelFieldMode(m LabelFieldMode) EngineOption {
	return func(e *Engine) { e.labelMode = m }
}

// NewEngine returns an Engine. Without options it has no dictionary entries,
// translates through i18n.T and discards logs.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		dict: noDictionary{},
		tr:   TranslatorFunc(i18n.T),
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build runs the four projections and then starts the search enrichment
// tasks. It does not wait for them; use Search.Wait for that. The nodes are
// not modified.
func (e *Engine) Build(ctx context.Context, nodes []Node) *AllSchemas {
	search, tasks := e.assembleSearch(nodes)
	all := &AllSchemas{
		Search: search,
		Table:  e.ProjectTable(nodes),
		Form:   e.ProjectForm(nodes),
		Detail: e.ProjectDetail(nodes),
	}
	e.log.DebugContext(ctx, "schemas projected",
		"search", search.Len(), "table", len(all.Table), "form", len(all.Form),
		"detail", len(all.Detail), "pending", len(tasks))
	search.start(ctx, e, tasks)
	return all
}

// Build projects nodes with a one-off Engine.
func Build(ctx context.Context, nodes []Node, opts ...EngineOption) *AllSchemas {
	return NewEngine(opts...).Build(ctx, nodes)
}
