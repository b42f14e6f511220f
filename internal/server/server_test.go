package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chentanran/allschemas"
	"github.com/chentanran/allschemas/dict"
	"github.com/chentanran/allschemas/source"
)

func newTestRouter(t *testing.T, wait time.Duration) (http.Handler, *source.Registry) {
	t.Helper()
	cache := dict.New()
	cache.Set("status", []allschemas.Option{{"value": 1, "label": "on"}})
	reg := source.NewRegistry()
	h := NewHandlers(Options{
		Engine: allschemas.NewEngine(
			allschemas.WithDictionary(cache),
			allschemas.WithTranslator(allschemas.TranslatorFunc(strings.ToUpper)),
		),
		Dicts:    cache,
		Resolver: reg,
		Wait:     wait,
	})
	return NewRouter(h), reg
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return rr, body
}

const schemaYAML = `
- field: status
  label: Status
  search: {show: true, component: select, dictName: status}
- field: owner
  label: Owner
  search: {show: true, api: owners}
`

func TestProject_YAML(t *testing.T) {
	r, reg := newTestRouter(t, time.Second)
	reg.Register("owners", source.Static([]allschemas.Option{{"value": "u1", "label": "ann"}}))

	req := httptest.NewRequest("POST", "/v1/projections", strings.NewReader(schemaYAML))
	rr, body := do(t, r, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("X-Enrichment-Pending"))

	search := body["searchSchema"].([]any)
	require.Len(t, search, 2)
	status := search[0].(map[string]any)
	assert.Equal(t, "select", status["component"])
	opts := status["componentProps"].(map[string]any)["options"].([]any)
	assert.Equal(t, "ON", opts[0].(map[string]any)["label"])

	owner := search[1].(map[string]any)
	ownerOpts := owner["componentProps"].(map[string]any)["options"].([]any)
	assert.Equal(t, "ANN", ownerOpts[0].(map[string]any)["label"])
	assert.Equal(t, true, owner["api"])

	assert.Len(t, body["tableColumns"], 2)
	assert.Len(t, body["formSchema"], 2)
	assert.Len(t, body["detailSchema"], 2)
}

func TestProject_JSONContentType(t *testing.T) {
	r, _ := newTestRouter(t, time.Second)
	req := httptest.NewRequest("POST", "/v1/projections", strings.NewReader(`[{"field":"id","label":"ID"}]`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rr, body := do(t, r, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, body["tableColumns"], 1)
	assert.Empty(t, body["searchSchema"])
}

func TestProject_PendingEnrichment(t *testing.T) {
	r, reg := newTestRouter(t, time.Second)
	reg.Register("owners", allschemas.FetchFunc(func(ctx context.Context) (*allschemas.FetchResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))
	req := httptest.NewRequest("POST", "/v1/projections?wait=10ms", strings.NewReader(schemaYAML))
	rr, body := do(t, r, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "true", rr.Header().Get("X-Enrichment-Pending"))
	owner := body["searchSchema"].([]any)[1].(map[string]any)
	assert.Nil(t, owner["componentProps"])
}

func TestProject_Errors(t *testing.T) {
	r, _ := newTestRouter(t, time.Second)
	tests := []struct {
		name   string
		url    string
		body   string
		status int
	}{
		{"bad wait", "/v1/projections?wait=soon", "[]", http.StatusBadRequest},
		{"bad schema", "/v1/projections", "field: x", http.StatusUnprocessableEntity},
		{"unknown api", "/v1/projections", "- {field: a, search: {api: nope}}", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := do(t, r, httptest.NewRequest("POST", tt.url, strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, body, "error")
		})
	}
}

func TestDicts(t *testing.T) {
	r, _ := newTestRouter(t, time.Second)

	rr, body := do(t, r, httptest.NewRequest("GET", "/v1/dicts", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{"status"}, body["data"])

	rr, body = do(t, r, httptest.NewRequest("GET", "/v1/dicts/status", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, body["data"], 1)

	rr, _ = do(t, r, httptest.NewRequest("GET", "/v1/dicts/missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t, time.Second)
	rr, body := do(t, r, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", body["status"])
}
