// Copyright 2019 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
	"zombiezen.com/go/blogql/blog"
	"zombiezen.com/go/blogql/blogql"
	"zombiezen.com/go/blogql/graphqlhttp"
	"zombiezen.com/go/blogql/internal/config"
	"zombiezen.com/go/blogql/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the GraphQL API over HTTP",
		Args:  cobra.NoArgs,
	}
	config.RegisterFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := config.NewViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	}
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupOTLP(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return xerrors.Errorf("serve: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			glog.Errorf("shutdown tracing: %v", err)
		}
	}()

	store := blog.NewSeededStore(nil)
	mux, err := newMux(cfg, store)
	if err != nil {
		return xerrors.Errorf("serve: %w", err)
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	counts := store.Len()
	glog.Infof("Serving GraphQL on %s/graphql (%d users, %d posts, %d comments)",
		cfg.Addr, counts.Users, counts.Posts, counts.Comments)

	select {
	case err := <-errc:
		return xerrors.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	glog.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return xerrors.Errorf("serve: shutdown: %w", err)
	}
	return nil
}

// newMux returns the server's routes: the GraphQL endpoint and, if configured,
// the metrics endpoint.
func newMux(cfg config.Config, store *blog.Store) (*http.ServeMux, error) {
	opts, err := schemaOptions(cfg)
	if err != nil {
		return nil, err
	}
	schema, err := blogql.NewSchema(store, opts...)
	if err != nil {
		return nil, err
	}
	if err := telemetry.RegisterViews(); err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/graphql", graphqlhttp.NewHandler(schema, &graphqlhttp.Options{
		Timeout:      cfg.Timeout,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Pretty:       cfg.Pretty,
	}))
	if cfg.MetricsPath != "" {
		pe, err := telemetry.NewPrometheusExporter("blogql")
		if err != nil {
			return nil, err
		}
		mux.Handle(cfg.MetricsPath, pe)
	}
	return mux, nil
}

func schemaOptions(cfg config.Config) ([]graphql.SchemaOpt, error) {
	tracer, err := telemetry.NewTracer(cfg.Tracer)
	if err != nil {
		return nil, err
	}
	opts := []graphql.SchemaOpt{
		graphql.Tracer(tracer),
		graphql.Logger(telemetry.PanicLogger{}),
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(cfg.MaxDepth))
	}
	if !cfg.Introspection {
		opts = append(opts, graphql.DisableIntrospection())
	}
	return opts, nil
}
