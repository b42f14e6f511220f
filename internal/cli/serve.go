package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/chentanran/allschemas/dict"
	"github.com/chentanran/allschemas/internal/config"
	"github.com/chentanran/allschemas/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projections over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := envFrom(cmd)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), e)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default "+config.DefaultAddr+")")
	cmd.Flags().Bool("watch", false, "reload the dictionary file when it changes")
	cmd.Flags().Duration("wait", 0, "default wait for api option lists per request")
	return cmd
}

func runServer(ctx context.Context, e *env) error {
	if e.cfg.Watch && e.cfg.Dicts != "" {
		if err := dict.Watch(ctx, e.cfg.Dicts, e.dicts, e.log); err != nil {
			return err
		}
	}
	h := server.NewHandlers(server.Options{
		Engine:   e.engine,
		Dicts:    e.dicts,
		Resolver: e.registry,
		Wait:     e.cfg.Wait,
		Log:      e.log,
	})
	srv := &http.Server{
		Addr:              e.cfg.Addr,
		Handler:           server.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		e.log.Info("listening", "addr", e.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
