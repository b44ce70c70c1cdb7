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

package telemetry

import (
	"context"
	"fmt"

	"github.com/graph-gophers/graphql-go/errors"
	"github.com/graph-gophers/graphql-go/introspection"
	"github.com/graph-gophers/graphql-go/trace/noop"
	gqlotel "github.com/graph-gophers/graphql-go/trace/otel"
	"github.com/graph-gophers/graphql-go/trace/tracer"
	"go.opencensus.io/trace"
	"golang.org/x/xerrors"
)

// Tracer kinds accepted by NewTracer.
const (
	TracerNone       = "none"
	TracerOpenCensus = "opencensus"
	TracerOTel       = "otel"
)

// NewTracer returns the GraphQL tracer of the given kind.
func NewTracer(kind string) (tracer.Tracer, error) {
	switch kind {
	case TracerNone, "":
		return noop.Tracer{}, nil
	case TracerOpenCensus:
		return OpenCensusTracer{}, nil
	case TracerOTel:
		return gqlotel.DefaultTracer(), nil
	default:
		return nil, xerrors.Errorf("new tracer: unknown kind %q", kind)
	}
}

// OpenCensusTracer records GraphQL requests, validation and non-trivial field
// resolution as OpenCensus spans.
type OpenCensusTracer struct{}

// TraceQuery starts a span covering the execution of a whole request.
func (OpenCensusTracer) TraceQuery(ctx context.Context, queryString string, operationName string, variables map[string]interface{}, varTypes map[string]*introspection.Type) (context.Context, tracer.QueryFinishFunc) {
	ctx, span := trace.StartSpan(ctx, "GraphQL Request")
	span.AddAttributes(trace.StringAttribute("graphql.query", queryString))
	if operationName != "" {
		span.AddAttributes(trace.StringAttribute("graphql.operationName", operationName))
	}
	return ctx, func(errs []*errors.QueryError) {
		setStatus(span, errs)
		span.End()
	}
}

// TraceField starts a span for a resolver call. Trivial fields, those read
// without calling a method, are not traced.
func (OpenCensusTracer) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, tracer.FieldFinishFunc) {
	if trivial {
		return ctx, func(*errors.QueryError) {}
	}
	ctx, span := trace.StartSpan(ctx, "Field: "+label)
	span.AddAttributes(
		trace.StringAttribute("graphql.type", typeName),
		trace.StringAttribute("graphql.field", fieldName),
	)
	for name, value := range args {
		span.AddAttributes(trace.StringAttribute("graphql.args."+name, fmt.Sprint(value)))
	}
	return ctx, func(err *errors.QueryError) {
		if err != nil {
			setStatus(span, []*errors.QueryError{err})
		}
		span.End()
	}
}

// TraceValidation starts a span covering query validation.
func (OpenCensusTracer) TraceValidation(ctx context.Context) tracer.ValidationFinishFunc {
	_, span := trace.StartSpan(ctx, "GraphQL Validate")
	return func(errs []*errors.QueryError) {
		setStatus(span, errs)
		span.End()
	}
}

func setStatus(span *trace.Span, errs []*errors.QueryError) {
	if len(errs) == 0 {
		return
	}
	msg := errs[0].Error()
	if len(errs) > 1 {
		msg += fmt.Sprintf(" (and %d more errors)", len(errs)-1)
	}
	span.SetStatus(trace.Status{Code: trace.StatusCodeUnknown, Message: msg})
}
