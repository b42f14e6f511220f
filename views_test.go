package allschemas_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chentanran/allschemas"
)

func TestProjectTable_DefaultVisibleAndHidden(t *testing.T) {
	nodes := []allschemas.Node{
		{Field: "absent"},
		{Field: "on", Table: &allschemas.View{Show: allschemas.Bool(true)}},
		{Field: "off", Table: &allschemas.View{Show: allschemas.Bool(false)}},
		{Label: "no field"},
	}
	cols := allschemas.NewEngine().ProjectTable(nodes)
	assert.Equal(t, []string{"absent", "on"}, fields(cols))
}

func TestProjectTable_KeepsShapeAndPrunes(t *testing.T) {
	nodes := []allschemas.Node{
		{Field: "group", Label: "Group", Children: []allschemas.Node{
			{Field: "x", Label: "X"},
			{Field: "y", Table: &allschemas.View{Show: allschemas.Bool(false)}},
		}},
		{Field: "emptied", Children: []allschemas.Node{
			{Label: "no field"},
		}},
		{Field: "hidden", Table: &allschemas.View{Show: allschemas.Bool(false)}, Children: []allschemas.Node{
			{Field: "orphan"},
		}},
		{Field: "leaf", Children: []allschemas.Node{}},
	}
	cols := allschemas.NewEngine().ProjectTable(nodes)
	require.Equal(t, []string{"group", "emptied", "leaf"}, fields(cols))

	assert.Equal(t, []string{"x"}, fields(cols[0].Children()))
	assert.False(t, cols[0].Children()[0].HasChildren())
	assert.False(t, cols[1].HasChildren(), "all children pruned: key removed")
	assert.False(t, cols[2].HasChildren(), "empty children list: key removed")
}

func TestProjectTable_NodeWinsOverTableBlock(t *testing.T) {
	nodes := []allschemas.Node{{
		Field: "price",
		Label: "Price",
		Table: &allschemas.View{Extra: map[string]any{"label": "ignored", "width": 120}},
		Form:  &allschemas.View{Component: "InputNumber"},
		Extra: map[string]any{"sortable": true},
	}}
	cols := allschemas.NewEngine().ProjectTable(nodes)
	require.Len(t, cols, 1)
	col := cols[0]
	assert.Equal(t, "Price", col.Label())
	assert.Equal(t, 120, col["width"])
	assert.Equal(t, true, col["sortable"])
	assert.Equal(t, allschemas.Record{"label": "ignored", "width": 120}, col[allschemas.KeyTable])
	assert.Equal(t, allschemas.Record{"component": "InputNumber"}, col[allschemas.KeyForm])
}

func TestProjectTable_TableBlockFieldSurvivesWithoutNodeField(t *testing.T) {
	nodes := []allschemas.Node{{Table: &allschemas.View{Extra: map[string]any{"field": "action"}}}}
	cols := allschemas.NewEngine().ProjectTable(nodes)
	assert.Equal(t, []string{"action"}, fields(cols))
}

func TestProjectForm(t *testing.T) {
	nodes := []allschemas.Node{
		{Field: "name", Label: "Name", Form: &allschemas.View{
			Show:  allschemas.Bool(true),
			Extra: map[string]any{"field": "stray", "colProps": map[string]any{"span": 24}},
		}},
		{Field: "secret", Form: &allschemas.View{Show: allschemas.Bool(false)}},
		{Field: "parent", Children: []allschemas.Node{
			{Field: "child", Form: &allschemas.View{Component: "Select"}},
		}},
	}
	form := allschemas.NewEngine().ProjectForm(nodes)
	require.Equal(t, []string{"name", "parent", "child"}, fields(form))
	assert.Equal(t, allschemas.Record{
		"component": "Input",
		"field":     "name",
		"label":     "Name",
		"colProps":  map[string]any{"span": 24},
	}, form[0])
	assert.Equal(t, "Select", form[2].Component())
}

func TestProjectDetail(t *testing.T) {
	nodes := []allschemas.Node{
		{Field: "a", Label: "A", Detail: &allschemas.View{Extra: map[string]any{"span": 2}}},
		{Field: "b", Detail: &allschemas.View{Show: allschemas.Bool(false)}},
		{Field: "c", Detail: &allschemas.View{Component: "Tag", Show: allschemas.Bool(true)}},
	}
	detail := allschemas.NewEngine().ProjectDetail(nodes)
	require.Equal(t, []string{"a", "c"}, fields(detail))
	assert.Equal(t, allschemas.Record{"field": "a", "label": "A", "span": 2}, detail[0])
	assert.Equal(t, "Tag", detail[1].Component(), "detail passes view keys through")
	_, hasShow := detail[1][allschemas.KeyShow]
	assert.False(t, hasShow)
}

func TestBuild_FlatOrderIsPreOrderOfVisible(t *testing.T) {
	on := &allschemas.View{Show: allschemas.Bool(true)}
	off := &allschemas.View{Show: allschemas.Bool(false)}
	nodes := []allschemas.Node{
		{Field: "1", Search: on, Children: []allschemas.Node{
			{Field: "1.1", Search: on, Form: off},
			{Field: "1.2", Detail: off, Children: []allschemas.Node{{Field: "1.2.1", Search: on}}},
		}},
		{Field: "2", Search: on, Form: off, Detail: off},
	}
	all := allschemas.Build(context.Background(), nodes)
	assert.Equal(t, []string{"1", "1.1", "1.2.1", "2"}, fields(all.Search.Items()))
	assert.Equal(t, []string{"1", "1.2", "1.2.1"}, fields(all.Form))
	assert.Equal(t, []string{"1", "1.1", "1.2.1"}, fields(all.Detail))
}
