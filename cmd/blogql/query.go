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
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
	"zombiezen.com/go/blogql/blog"
	"zombiezen.com/go/blogql/blogql"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the GraphQL schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), blogql.SDL)
			return err
		},
	}
}

type queryOptions struct {
	variables     string
	operationName string
	compact       bool
}

func newQueryCommand() *cobra.Command {
	opts := new(queryOptions)
	cmd := &cobra.Command{
		Use:   "query [DOCUMENT]",
		Short: "Run a GraphQL document against a fresh demo store",
		Long: `Run a GraphQL document against a fresh demo store and print the JSON
response. The document is read from standard input if it is not given as an
argument. Mutations affect only this invocation's store.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc string
			if len(args) == 1 {
				doc = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return xerrors.Errorf("query: read document: %w", err)
				}
				doc = string(data)
			}
			return runQuery(cmd, opts, doc)
		},
	}
	cmd.Flags().StringVar(&opts.variables, "variables", "", "JSON object of variable values")
	cmd.Flags().StringVar(&opts.operationName, "operation", "", "Name of the operation to run")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Print the response on a single line")
	return cmd
}

func runQuery(cmd *cobra.Command, opts *queryOptions, doc string) error {
	var variables map[string]interface{}
	if opts.variables != "" {
		if err := json.Unmarshal([]byte(opts.variables), &variables); err != nil {
			return xerrors.Errorf("query: parse variables: %w", err)
		}
	}
	schema, err := blogql.NewSchema(blog.NewSeededStore(nil))
	if err != nil {
		return xerrors.Errorf("query: %w", err)
	}
	response := schema.Exec(cmd.Context(), doc, opts.operationName, variables)
	enc := json.NewEncoder(cmd.OutOrStdout())
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(response); err != nil {
		return xerrors.Errorf("query: %w", err)
	}
	if n := len(response.Errors); n > 0 {
		return xerrors.Errorf("query: response has %d error(s)", n)
	}
	return nil
}
