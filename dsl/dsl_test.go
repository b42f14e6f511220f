package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chentanran/allschemas"
	"github.com/chentanran/allschemas/dsl"
	"github.com/chentanran/allschemas/source"
)

func TestBuilder_Node(t *testing.T) {
	n := dsl.Field("status", "Status").
		Search(dsl.View().Show().Component("Select").Dict("status").LabelField("name")).
		Table(dsl.View().Hide().Set("width", 80)).
		Set("sortable", true).
		Node()

	assert.Equal(t, "status", n.Field)
	require.NotNil(t, n.Search)
	assert.True(t, *n.Search.Show)
	assert.Equal(t, "Select", n.Search.Component)
	assert.Equal(t, "status", n.Search.DictName)
	assert.Equal(t, map[string]any{"optionsAlias": map[string]any{"labelField": "name"}}, n.Search.ComponentProps)
	assert.False(t, *n.Table.Show)
	assert.Equal(t, 80, n.Table.Extra["width"])
	assert.Nil(t, n.Form)
	assert.Equal(t, true, n.Extra["sortable"])
}

func TestBuilder_SchemaProjects(t *testing.T) {
	nodes := dsl.Schema(
		dsl.Field("name", "Name").Search(dsl.View().Show()),
		dsl.Group("Contact").Children(
			dsl.Field("phone", "Phone"),
			dsl.Field("email", "Email").Detail(dsl.View().Hide()),
		),
		dsl.Field("tag", "Tag").
			Search(dsl.View().Show().Component("Select").API(source.Static([]allschemas.Option{{"value": 1, "label": "t"}}))),
	)
	require.Len(t, nodes, 3)
	require.Len(t, nodes[1].Children, 2)

	ctx := context.Background()
	all := allschemas.NewEngine(allschemas.WithTranslator(allschemas.TranslatorFunc(func(s string) string { return s }))).Build(ctx, nodes)
	require.NoError(t, all.Search.Wait(ctx))

	rec, ok := all.Search.Get("tag")
	require.True(t, ok)
	assert.Len(t, rec.Options(), 1)

	// the group header has no field: pruned with its children
	assert.Len(t, all.Table, 2)
	assert.Len(t, all.Detail, 4)
}

func TestView_Options(t *testing.T) {
	v := dsl.View().Options(allschemas.Option{"value": 1}).Prop("clearable", true).View()
	assert.Equal(t, []allschemas.Option{{"value": 1}}, v.ComponentProps["options"])
	assert.Equal(t, true, v.ComponentProps["clearable"])
}
