// Package allschemas projects one unified, hierarchical schema definition into
// the four view schemas an admin screen consumes:
//
// - search: flat list of filter fields, with option lists filled from a
//   dictionary (synchronously) or from a data source (asynchronously)
// - table: column tree keeping the input's parent/child shape
// - form: flat list of editable fields
// - detail: flat list of read-only fields
//
// Design policy:
// - Keep the public API in the root package; tree traversal lives under internal/.
// - Collaborators (dictionary, translator, data sources) are injected through
//   EngineOption values; defaults are wired here so call sites stay short.
// - Projection never fails. Malformed nodes are skipped and enrichment errors
//   leave the default option state in place.
//
// Typical usage:
//
//	nodes, err := allschemas.LoadFile("user.yaml", allschemas.WithAPIResolver(registry))
//	eng := allschemas.NewEngine(allschemas.WithDictionary(cache))
//	all := eng.Build(ctx, nodes)
//	_ = all.Search.Wait(ctx) // optional: block until option lists are fetched
//	b, _ := json.Marshal(all)
package allschemas
