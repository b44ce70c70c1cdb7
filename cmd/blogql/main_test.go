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
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"zombiezen.com/go/blogql/blog"
	"zombiezen.com/go/blogql/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, "", "schema")
	require.NoError(t, err)
	require.Contains(t, out, "type Query {")
	require.Contains(t, out, "createComment(data: CreateCommentInput): Comment!")
}

func TestQueryCommand(t *testing.T) {
	t.Run("Argument", func(t *testing.T) {
		out, err := execute(t, "", "query", "--compact", "{ me { name } }")
		require.NoError(t, err)
		require.JSONEq(t, `{"data":{"me":{"name":"Ganiu"}}}`, out)
	})
	t.Run("Stdin", func(t *testing.T) {
		out, err := execute(t, "{ add(numbers: [2, 3]) }", "query")
		require.NoError(t, err)
		require.JSONEq(t, `{"data":{"add":5}}`, out)
	})
	t.Run("NegativeFloats", func(t *testing.T) {
		out, err := execute(t, "", "query", "--compact", "{ add(numbers: [-1.5, 2]) }")
		require.NoError(t, err)
		require.JSONEq(t, `{"data":{"add":0.5}}`, out)
	})
	t.Run("Variables", func(t *testing.T) {
		out, err := execute(t, "",
			"query",
			"--variables", `{"q":"aba"}`,
			"--operation", "Find",
			`query Other { hello } query Find($q: String) { users(query: $q) { id } }`,
		)
		require.NoError(t, err)
		require.JSONEq(t, `{"data":{"users":[{"id":"id1248uij"}]}}`, out)
	})
	t.Run("MutationError", func(t *testing.T) {
		out, err := execute(t, "",
			"query",
			`mutation { createPost(data: {title: "t", published: true, author: "nobody"}) { id } }`,
		)
		require.Error(t, err)
		var response struct {
			Errors []struct {
				Message    string
				Extensions map[string]interface{}
			}
		}
		require.NoError(t, json.Unmarshal([]byte(out), &response))
		require.Len(t, response.Errors, 1)
		require.Equal(t, "user not found", response.Errors[0].Message)
		require.Equal(t, string(blog.CodeUnknownAuthor), response.Errors[0].Extensions["code"])
	})
	t.Run("BadVariables", func(t *testing.T) {
		_, err := execute(t, "", "query", "--variables", "{", "{ hello }")
		require.Error(t, err)
	})
}

func TestNewMux(t *testing.T) {
	cfg := config.Default()
	cfg.Tracer = "opencensus"
	mux, err := newMux(cfg, blog.NewSeededStore(nil))
	require.NoError(t, err)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/graphql", "application/json",
		strings.NewReader(`{"query":"{ users { name } }"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"data":{"users":[{"name":"Ganiu"},{"name":"Abayomi"}]}}`, string(body))

	resp, err = http.Get(srv.URL + cfg.MetricsPath)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSchemaOptions(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDepth = 3
	cfg.Introspection = false
	opts, err := schemaOptions(cfg)
	require.NoError(t, err)
	require.Len(t, opts, 4)

	cfg.Tracer = "zipkin"
	_, err = schemaOptions(cfg)
	require.Error(t, err)
}
