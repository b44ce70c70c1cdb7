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

package blogql

import (
	"context"

	"github.com/golang/glog"
	"zombiezen.com/go/blogql/blog"
	"zombiezen.com/go/blogql/internal/telemetry"
)

// CreateUserInput is the GraphQL CreateUserInput type.
type CreateUserInput struct {
	Name  string
	Email string
	Age   *int32
}

// CreateUserArgs are the arguments to Mutation.createUser.
type CreateUserArgs struct {
	Data *CreateUserInput
}

// CreateUser resolves Mutation.createUser.
func (r *Resolver) CreateUser(ctx context.Context, args CreateUserArgs) (*UserResolver, error) {
	const mutation = "createUser"
	if args.Data == nil {
		return nil, r.rejected(ctx, mutation, errMissingInput(mutation))
	}
	u, err := r.store.CreateUser(blog.CreateUserInput{
		Name:  args.Data.Name,
		Email: args.Data.Email,
		Age:   blog.NullIntFromPtr(args.Data.Age),
	})
	if err != nil {
		return nil, r.rejected(ctx, mutation, toClientError(err))
	}
	r.created(ctx, mutation, u.ID)
	return newUserResolver(r.store, u), nil
}

// CreatePostInput is the GraphQL CreatePostInput type.
type CreatePostInput struct {
	Title     string
	Published bool
	Author    string
}

// CreatePostArgs are the arguments to Mutation.createPost.
type CreatePostArgs struct {
	Data *CreatePostInput
}

// CreatePost resolves Mutation.createPost.
func (r *Resolver) CreatePost(ctx context.Context, args CreatePostArgs) (*PostResolver, error) {
	const mutation = "createPost"
	if args.Data == nil {
		return nil, r.rejected(ctx, mutation, errMissingInput(mutation))
	}
	p, err := r.store.CreatePost(blog.CreatePostInput{
		Title:     args.Data.Title,
		Published: args.Data.Published,
		Author:    args.Data.Author,
	})
	if err != nil {
		return nil, r.rejected(ctx, mutation, toClientError(err))
	}
	r.created(ctx, mutation, p.ID)
	return newPostResolver(r.store, p), nil
}

// CreateCommentInput is the GraphQL CreateCommentInput type.
type CreateCommentInput struct {
	Text   string
	Post   string
	Author string
}

// CreateCommentArgs are the arguments to Mutation.createComment.
type CreateCommentArgs struct {
	Data *CreateCommentInput
}

// CreateComment resolves Mutation.createComment.
func (r *Resolver) CreateComment(ctx context.Context, args CreateCommentArgs) (*CommentResolver, error) {
	const mutation = "createComment"
	if args.Data == nil {
		return nil, r.rejected(ctx, mutation, errMissingInput(mutation))
	}
	c, err := r.store.CreateComment(blog.CreateCommentInput{
		Text:   args.Data.Text,
		Post:   args.Data.Post,
		Author: args.Data.Author,
	})
	if err != nil {
		return nil, r.rejected(ctx, mutation, toClientError(err))
	}
	r.created(ctx, mutation, c.ID)
	return newCommentResolver(r.store, c), nil
}

func (r *Resolver) created(ctx context.Context, mutation, id string) {
	if glog.V(1) {
		glog.Infof("%s: created %s (%+v)", mutation, id, r.store.Len())
	}
	telemetry.RecordMutation(ctx, mutation, telemetry.CodeOK)
}

// rejected records a failed mutation and returns err.
func (r *Resolver) rejected(ctx context.Context, mutation string, err error) error {
	code := errorCode(err)
	if code == "" {
		code = telemetry.CodeInternal
		glog.Errorf("%s: %v", mutation, err)
	} else {
		glog.Warningf("%s rejected: %v", mutation, err)
	}
	telemetry.RecordMutation(ctx, mutation, code)
	return err
}
