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

// Package graphqlhttp provides functions for serving GraphQL over HTTP as
// described in https://graphql.org/learn/serving-over-http/.
package graphqlhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/golang/glog"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"golang.org/x/xerrors"
	"zombiezen.com/go/blogql/internal/telemetry"
)

// Request holds the inputs for a GraphQL execution.
type Request struct {
	// Query is the GraphQL document text.
	Query string `json:"query"`
	// If OperationName is not empty, then the operation with the given name will
	// be executed. Otherwise, the query must only include a single operation.
	OperationName string `json:"operationName,omitempty"`
	// Variables specifies the values of the operation's variables.
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// IsQuery reports whether the operation the request selects is a query.
// Documents that do not parse, or that do not select exactly one operation,
// are reported as queries so that the GraphQL engine can report the problem.
func (req Request) IsQuery() bool {
	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		return true
	}
	op := doc.Operations.ForName(req.OperationName)
	return op == nil || op.Operation == ast.Query
}

// Options configures a Handler. A nil *Options is equivalent to the zero value.
type Options struct {
	// Timeout bounds the execution of each request. Zero means no timeout.
	Timeout time.Duration
	// MaxBodyBytes limits the size of request bodies. Zero means unlimited.
	MaxBodyBytes int64
	// Pretty indents JSON responses.
	Pretty bool
}

// Handler serves GraphQL HTTP requests by executing them on its schema.
type Handler struct {
	schema *graphql.Schema
	opts   Options
}

// NewHandler returns a new handler that sends requests to the given schema.
func NewHandler(schema *graphql.Schema, opts *Options) *Handler {
	h := &Handler{schema: schema}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// ServeHTTP executes a GraphQL request.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusOK
	defer func() {
		telemetry.RecordRequest(r.Context(), status, time.Since(start))
	}()

	if h.opts.MaxBodyBytes > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	}
	gqlRequest, err := Parse(r)
	if err != nil {
		status = StatusCode(err)
		if status == http.StatusMethodNotAllowed {
			w.Header().Set("Allow", "GET, HEAD, POST")
		}
		glog.V(1).Infof("%s %s: %v", r.Method, r.URL.Path, err)
		http.Error(w, err.Error(), status)
		return
	}
	ctx := r.Context()
	if h.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.Timeout)
		defer cancel()
	}
	gqlResponse := h.schema.Exec(ctx, gqlRequest.Query, gqlRequest.OperationName, gqlRequest.Variables)
	if glog.V(1) {
		glog.Infof("%s %s: operation %q finished in %v with %d error(s)",
			r.Method, r.URL.Path, gqlRequest.OperationName, time.Since(start), len(gqlResponse.Errors))
	}
	if err := writeResponse(w, gqlResponse, h.opts.Pretty); err != nil {
		status = http.StatusInternalServerError
		glog.Errorf("write graphql response: %v", err)
	}
}

// Parse parses a GraphQL HTTP request. If an error is returned, StatusCode
// will return the proper HTTP status code to use.
//
// Request methods may be GET, HEAD, or POST. If the method is not one of these,
// then an error is returned that will make StatusCode return
// http.StatusMethodNotAllowed.
func Parse(r *http.Request) (Request, error) {
	request := Request{
		Query: r.URL.Query().Get("query"),
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if v := r.FormValue("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &request.Variables); err != nil {
				return Request{}, &httpError{
					msg:   "parse graphql request: ",
					code:  http.StatusBadRequest,
					cause: err,
				}
			}
		}
		request.OperationName = r.FormValue("operationName")
		if !request.IsQuery() {
			return Request{}, &httpError{
				msg:  "parse graphql request: GET requests must be queries",
				code: http.StatusBadRequest,
			}
		}
	case http.MethodPost:
		rawContentType := r.Header.Get("Content-Type")
		contentType, _, err := mime.ParseMediaType(rawContentType)
		if err != nil {
			return Request{}, &httpError{
				msg:  "parse graphql request: invalid content type: " + rawContentType,
				code: http.StatusUnsupportedMediaType,
			}
		}
		switch contentType {
		case "application/json":
			if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
				return Request{}, bodyError(err)
			}
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return Request{}, bodyError(err)
			}
			request.Query = r.FormValue("query")
			request.OperationName = r.FormValue("operationName")
			if v := r.FormValue("variables"); v != "" {
				if err := json.Unmarshal([]byte(v), &request.Variables); err != nil {
					return Request{}, bodyError(err)
				}
			}
		case "application/graphql":
			data, err := io.ReadAll(r.Body)
			if err != nil {
				return Request{}, bodyError(err)
			}
			if len(data) > 0 {
				request.Query = string(data)
			}
		default:
			return Request{}, &httpError{
				msg:  "parse graphql request: unrecognized content type: " + contentType,
				code: http.StatusUnsupportedMediaType,
			}
		}
	default:
		return Request{}, &httpError{
			msg:  fmt.Sprintf("parse graphql request: method %s not allowed", r.Method),
			code: http.StatusMethodNotAllowed,
		}
	}
	return request, nil
}

func bodyError(err error) error {
	code := http.StatusBadRequest
	var tooLarge *http.MaxBytesError
	if xerrors.As(err, &tooLarge) {
		code = http.StatusRequestEntityTooLarge
	}
	return &httpError{
		msg:   "parse graphql request: ",
		code:  code,
		cause: err,
	}
}

type httpError struct {
	msg   string
	code  int
	cause error
}

func (e *httpError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + e.cause.Error()
}

func (e *httpError) Unwrap() error {
	return e.cause
}

// StatusCode returns the HTTP status code an error indicates.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var e *httpError
	if !xerrors.As(err, &e) {
		return http.StatusInternalServerError
	}
	return e.code
}

// WriteResponse writes a GraphQL result as an HTTP response.
func WriteResponse(w http.ResponseWriter, response *graphql.Response) {
	if err := writeResponse(w, response, false); err != nil {
		glog.Errorf("write graphql response: %v", err)
	}
}

func writeResponse(w http.ResponseWriter, response *graphql.Response, pretty bool) error {
	var payload []byte
	var err error
	if pretty {
		payload, err = json.MarshalIndent(response, "", "  ")
	} else {
		payload, err = json.Marshal(response)
	}
	if err != nil {
		http.Error(w, "GraphQL marshal error", http.StatusInternalServerError)
		return xerrors.Errorf("marshal: %w", err)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	if _, err := w.Write(payload); err != nil {
		return err
	}
	return nil
}
