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

// Package blogql serves a blog.Store over GraphQL.
//
// The schema is the one in schema.graphql, available as SDL. NewSchema binds it
// to a store using github.com/graph-gophers/graphql-go. The same root Resolver
// provides the Query and Mutation fields; User, Post and Comment fields that
// refer to other records are resolved by scanning the store each time they are
// requested.
package blogql

import (
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
	"golang.org/x/xerrors"
	"zombiezen.com/go/blogql/blog"
)

// SDL is the GraphQL schema served by this package.
//
//go:embed schema.graphql
var SDL string

// NewSchema returns a GraphQL schema whose resolvers read and write store.
func NewSchema(store *blog.Store, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	if store == nil {
		return nil, xerrors.New("new schema: nil store")
	}
	schema, err := graphql.ParseSchema(SDL, NewResolver(store), opts...)
	if err != nil {
		return nil, xerrors.Errorf("new schema: %w", err)
	}
	return schema, nil
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	store *blog.Store
}

// NewResolver returns a root resolver backed by store.
func NewResolver(store *blog.Store) *Resolver {
	return &Resolver{store: store}
}

// Text of the profile fields.
const (
	helloText    = `Hello Gee "World"}`
	nameText     = "Ganiu"
	locationText = "Igbe Oloja"
	bioText      = "I'm an astute programmers with years of experince in sofotware development"
)

// Hello resolves Query.hello.
func (r *Resolver) Hello() string { return helloText }

// Name resolves Query.name.
func (r *Resolver) Name() string { return nameText }

// Location resolves Query.location.
func (r *Resolver) Location() string { return locationText }

// Bio resolves Query.bio.
func (r *Resolver) Bio() string { return bioText }

// GreetingArgs are the arguments to Query.greeting.
type GreetingArgs struct {
	Name     *string
	Position *string
}

// Greeting resolves Query.greeting.
func (r *Resolver) Greeting(args GreetingArgs) string {
	return blog.Greeting(deref(args.Name), deref(args.Position))
}

// AddArgs are the arguments to Query.add.
type AddArgs struct {
	Numbers []float64
}

// Add resolves Query.add.
func (r *Resolver) Add(args AddArgs) float64 {
	return blog.Add(args.Numbers)
}

// Me resolves Query.me. It returns the same user regardless of who asks.
func (r *Resolver) Me() (*UserResolver, error) {
	u, ok := r.store.Me()
	if !ok {
		return nil, xerrors.Errorf("me: user %s not found", blog.MeID)
	}
	return newUserResolver(r.store, u), nil
}

// CommentArgs are the arguments to Query.comment.
type CommentArgs struct {
	ID string
}

// Comment resolves Query.comment. A comment that does not exist resolves to
// null.
func (r *Resolver) Comment(args CommentArgs) *CommentResolver {
	c, ok := r.store.Comment(args.ID)
	if !ok {
		return nil
	}
	return newCommentResolver(r.store, c)
}

// SearchArgs are the arguments to Query.users, Query.posts and Query.comments.
type SearchArgs struct {
	Query *string
}

// Users resolves Query.users.
func (r *Resolver) Users(args SearchArgs) []*UserResolver {
	return userResolvers(r.store, r.store.Users(deref(args.Query)))
}

// Posts resolves Query.posts.
func (r *Resolver) Posts(args SearchArgs) []*PostResolver {
	return postResolvers(r.store, r.store.Posts(deref(args.Query)))
}

// Comments resolves Query.comments.
func (r *Resolver) Comments(args SearchArgs) []*CommentResolver {
	return commentResolvers(r.store, r.store.Comments(deref(args.Query)))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
