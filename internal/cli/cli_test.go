package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/chentanran/allschemas/i18n"
)

const schemaYAML = `
schema:
  - field: status
    label: Status
    search: {show: true, component: select, dictName: status}
    table: {}
    form: {component: Select}
  - field: name
    label: Name
    table: {show: false}
`

const dictsYAML = `
status:
  - {value: 1, label: status.active}
  - {value: 0, label: status.disabled}
`

const catalogYAML = `
en:
  status.active: Active
  status.disabled: Disabled
zh-CN:
  status.active: 启用
  status.disabled: 停用
`

func workdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"schema.yaml":  schemaYAML,
		"dicts.yaml":   dictsYAML,
		"catalog.yaml": catalogYAML,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	t.Chdir(dir)
	t.Cleanup(func() { i18n.SetTranslator(nil) })
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), args, &out, &errOut)
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "allschemas "+Version))
}

func TestID(t *testing.T) {
	out, err := run(t, "id", "-n", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		_, err := uuid.Parse(l)
		assert.NoError(t, err)
	}
}

func TestProject_AllViewsJSON(t *testing.T) {
	workdir(t)
	out, err := run(t, "project", "schema.yaml", "--dicts", "dicts.yaml",
		"--catalog", "catalog.yaml", "--lang", "zh-CN", "--wait", "0s")
	require.NoError(t, err)

	var got struct {
		SearchSchema []map[string]any `json:"searchSchema"`
		TableColumns []map[string]any `json:"tableColumns"`
		FormSchema   []map[string]any `json:"formSchema"`
		DetailSchema []map[string]any `json:"detailSchema"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got.SearchSchema, 1)
	search := got.SearchSchema[0]
	assert.Equal(t, "select", search["component"])
	assert.NotContains(t, search, "dictName")
	props, ok := search["componentProps"].(map[string]any)
	require.True(t, ok)
	opts, ok := props["options"].([]any)
	require.True(t, ok)
	require.Len(t, opts, 2)
	assert.Equal(t, "启用", opts[0].(map[string]any)["label"])

	require.Len(t, got.TableColumns, 1)
	assert.Equal(t, "status", got.TableColumns[0]["field"])
	require.Len(t, got.FormSchema, 2)
	assert.Equal(t, "Select", got.FormSchema[0]["component"])
	assert.Equal(t, "Input", got.FormSchema[1]["component"])
	assert.Len(t, got.DetailSchema, 2)
}

func TestProject_SingleViewYAML(t *testing.T) {
	workdir(t)
	out, err := run(t, "project", "schema.yaml", "--view", "form", "--format", "yaml", "--wait", "0s")
	require.NoError(t, err)

	var form []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &form))
	require.Len(t, form, 2)
	assert.Equal(t, "status", form[0]["field"])
	assert.Equal(t, "name", form[1]["field"])
}

func TestProject_ConfigFile(t *testing.T) {
	dir := workdir(t)
	cfg := "format: yaml\nwait: 0s\ndicts: dicts.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "allschemas.yaml"), []byte(cfg), 0o644))

	out, err := run(t, "project", "schema.yaml", "--view", "search")
	require.NoError(t, err)
	var search []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &search))
	require.Len(t, search, 1)
	assert.Contains(t, search[0], "componentProps")
}

func TestProject_Errors(t *testing.T) {
	workdir(t)

	_, err := run(t, "project", "schema.yaml", "--view", "chart", "--wait", "0s")
	assert.ErrorContains(t, err, `unknown view "chart"`)

	_, err = run(t, "project", "missing.yaml")
	assert.Error(t, err)

	_, err = run(t, "project", "schema.yaml", "--format", "xml")
	assert.ErrorContains(t, err, "format")

	_, err = run(t, "project")
	assert.Error(t, err)
}
