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

// blogql serves a demo blog (users, posts and comments) over GraphQL.
package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	// glog refuses to log until the Go flag set has been parsed. cobra parses
	// the glog flags itself through the persistent flag set, so parsing no
	// arguments here cannot fail.
	_ = goflag.CommandLine.Parse(nil)
	err := newRootCommand().Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "blogql:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "blogql",
		Short: "Demo GraphQL API over users, posts and comments",
		Long: `
blogql serves a small GraphQL API over an in-memory store of users, the posts
they write and the comments left on those posts. The store starts with a fixed
set of demo records and is lost when the process exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	root.AddCommand(
		newServeCommand(),
		newSchemaCommand(),
		newQueryCommand(),
	)
	return root
}
