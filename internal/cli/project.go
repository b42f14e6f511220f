package cli

import (
	"context"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chentanran/allschemas"
)

func newProjectCmd() *cobra.Command {
	var view string
	cmd := &cobra.Command{
		Use:   "project FILE",
		Short: "Print the projections of a schema file",
		Long: `Reads a unified schema document and prints the projected schemas.
Option lists from api sources are awaited up to --wait (0 prints immediately,
default from config).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := envFrom(cmd)
			if err != nil {
				return err
			}
			nodes, err := allschemas.LoadFile(args[0], allschemas.WithAPIResolver(e.registry))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			all := e.engine.Build(ctx, nodes)
			if e.cfg.Wait > 0 {
				waitCtx, stop := context.WithTimeout(ctx, e.cfg.Wait)
				err := all.Search.Wait(waitCtx)
				stop()
				if err != nil {
					e.log.Warn("printing before all option lists arrived", "wait", e.cfg.Wait)
				}
			}

			out, err := selectView(all.Snapshot(), view)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), e.cfg.Format, out)
		},
	}
	cmd.Flags().StringVar(&view, "view", "all", "view to print (all|search|table|form|detail)")
	cmd.Flags().String("format", "", "output format (json|yaml)")
	cmd.Flags().Duration("wait", 0, "how long to wait for api option lists")
	return cmd
}

func selectView(s allschemas.Snapshot, view string) (any, error) {
	switch view {
	case "all", "":
		return s, nil
	case "search":
		return s.SearchSchema, nil
	case "table":
		return s.TableColumns, nil
	case "form":
		return s.FormSchema, nil
	case "detail":
		return s.DetailSchema, nil
	}
	return nil, fmt.Errorf("unknown view %q (want all, search, table, form or detail)", view)
}

func write(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
