// Package dsl provides a fluent builder for unified schema trees.
//
// Overview
//   - Field(field, label) starts a node; attach per-view blocks with
//     Search/Table/Form/Detail and nested columns with Children.
//   - View() starts a view block; Show/Hide set visibility, Component/Prop set
//     rendering options, Dict/API select the option source of a search view.
//   - Schema(nodes...) collects builders into []allschemas.Node.
//
// Example
//
//	nodes := dsl.Schema(
//	    dsl.Field("name", "user.name").
//	        Search(dsl.View().Show()).
//	        Form(dsl.View().Set("rules", []any{map[string]any{"required": true}})),
//	    dsl.Field("status", "user.status").
//	        Search(dsl.View().Show().Component("Select").Dict("status")),
//	    dsl.Field("dept", "user.dept").
//	        Search(dsl.View().Show().Component("Select").API(source.HTTP(url)).LabelField("name")).
//	        Table(dsl.View().Hide()),
//	)
package dsl
