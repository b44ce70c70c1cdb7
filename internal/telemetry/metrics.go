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

// Package telemetry wires blogql's metrics, tracing and panic logging into
// OpenCensus, OpenTelemetry and glog.
package telemetry

import (
	"context"
	"strconv"
	"sync"
	"time"

	"contrib.go.opencensus.io/exporter/prometheus"
	"github.com/golang/glog"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"golang.org/x/xerrors"
)

// Measures recorded by the server.
var (
	Requests = stats.Int64("blogql/http/requests",
		"Number of GraphQL HTTP requests", stats.UnitDimensionless)
	LatencyMs = stats.Float64("blogql/http/latency",
		"Latency of GraphQL HTTP requests", stats.UnitMilliseconds)
	Mutations = stats.Int64("blogql/mutations",
		"Number of GraphQL mutations by outcome", stats.UnitDimensionless)
)

// Tag keys.
var (
	KeyStatus   = tag.MustNewKey("status")
	KeyMutation = tag.MustNewKey("mutation")
	KeyCode     = tag.MustNewKey("code")
)

// Mutation outcome codes other than the store's validation codes.
const (
	CodeOK       = "OK"
	CodeInternal = "INTERNAL"
)

var latencyMsDistribution = view.Distribution(
	0, 0.01, 0.05, 0.1, 0.3, 0.6, 0.8, 1, 2, 3, 4, 5, 6, 8, 10, 13, 16,
	20, 25, 30, 40, 50, 65, 80, 100, 130, 160, 200, 250, 300, 400, 500,
	650, 800, 1000, 2000, 5000)

// Views returns the views over the server's measures.
func Views() []*view.View {
	return []*view.View{
		{
			Name:        Requests.Name(),
			Measure:     Requests,
			Description: Requests.Description(),
			Aggregation: view.Count(),
			TagKeys:     []tag.Key{KeyStatus},
		},
		{
			Name:        LatencyMs.Name(),
			Measure:     LatencyMs,
			Description: LatencyMs.Description(),
			Aggregation: latencyMsDistribution,
			TagKeys:     []tag.Key{KeyStatus},
		},
		{
			Name:        Mutations.Name(),
			Measure:     Mutations,
			Description: Mutations.Description(),
			Aggregation: view.Count(),
			TagKeys:     []tag.Key{KeyMutation, KeyCode},
		},
	}
}

// RegisterViews registers Views with OpenCensus. It is safe to call more than
// once.
func RegisterViews() error {
	if err := view.Register(Views()...); err != nil {
		return xerrors.Errorf("register views: %w", err)
	}
	return nil
}

var exporters struct {
	mu sync.Mutex
	m  map[string]*prometheus.Exporter
}

// NewPrometheusExporter returns an http.Handler exposing registered views in
// the Prometheus text format. The exporter is registered with OpenCensus the
// first time a namespace is requested; later calls with the same namespace
// return that exporter.
func NewPrometheusExporter(namespace string) (*prometheus.Exporter, error) {
	exporters.mu.Lock()
	defer exporters.mu.Unlock()
	if pe := exporters.m[namespace]; pe != nil {
		return pe, nil
	}
	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: namespace,
		OnError:   func(err error) { glog.Errorf("prometheus exporter: %v", err) },
	})
	if err != nil {
		return nil, xerrors.Errorf("new prometheus exporter: %w", err)
	}
	view.RegisterExporter(pe)
	if exporters.m == nil {
		exporters.m = make(map[string]*prometheus.Exporter)
	}
	exporters.m[namespace] = pe
	return pe, nil
}

// RecordRequest records a completed HTTP request.
func RecordRequest(ctx context.Context, status int, latency time.Duration) {
	ms := float64(latency) / float64(time.Millisecond)
	err := stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyStatus, strconv.Itoa(status))},
		Requests.M(1), LatencyMs.M(ms))
	if err != nil {
		glog.Errorf("record request: %v", err)
	}
}

// RecordMutation records the outcome of a mutation. code is CodeOK on success.
func RecordMutation(ctx context.Context, mutation, code string) {
	err := stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyMutation, mutation), tag.Upsert(KeyCode, code)},
		Mutations.M(1))
	if err != nil {
		glog.Errorf("record mutation: %v", err)
	}
}
