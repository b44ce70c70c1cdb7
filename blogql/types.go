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
	graphql "github.com/graph-gophers/graphql-go"
	"golang.org/x/xerrors"
	"zombiezen.com/go/blogql/blog"
)

// UserResolver resolves the fields of a User.
type UserResolver struct {
	store *blog.Store
	user  blog.User
}

func newUserResolver(store *blog.Store, u blog.User) *UserResolver {
	return &UserResolver{store: store, user: u}
}

func userResolvers(store *blog.Store, users []blog.User) []*UserResolver {
	rs := make([]*UserResolver, 0, len(users))
	for _, u := range users {
		rs = append(rs, newUserResolver(store, u))
	}
	return rs
}

// ID resolves User.id.
func (r *UserResolver) ID() graphql.ID { return graphql.ID(r.user.ID) }

// Name resolves User.name.
func (r *UserResolver) Name() string { return r.user.Name }

// Email resolves User.email.
func (r *UserResolver) Email() string { return r.user.Email }

// Age resolves User.age.
func (r *UserResolver) Age() *int32 { return r.user.Age.Ptr() }

// Posts resolves User.posts: the posts the user wrote.
func (r *UserResolver) Posts() []*PostResolver {
	return postResolvers(r.store, r.store.PostsByAuthor(r.user.ID))
}

// Comments resolves User.comments: the comments the user wrote.
func (r *UserResolver) Comments() []*CommentResolver {
	return commentResolvers(r.store, r.store.CommentsByAuthor(r.user.ID))
}

// PostResolver resolves the fields of a Post.
type PostResolver struct {
	store *blog.Store
	post  blog.Post
}

func newPostResolver(store *blog.Store, p blog.Post) *PostResolver {
	return &PostResolver{store: store, post: p}
}

func postResolvers(store *blog.Store, posts []blog.Post) []*PostResolver {
	rs := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		rs = append(rs, newPostResolver(store, p))
	}
	return rs
}

// ID resolves Post.id.
func (r *PostResolver) ID() graphql.ID { return graphql.ID(r.post.ID) }

// Title resolves Post.title.
func (r *PostResolver) Title() string { return r.post.Title }

// Published resolves Post.published.
func (r *PostResolver) Published() bool { return r.post.Published }

// Author resolves Post.author.
func (r *PostResolver) Author() (*UserResolver, error) {
	u, ok := r.store.User(r.post.Author)
	if !ok {
		return nil, xerrors.Errorf("post %s: author %s not found", r.post.ID, r.post.Author)
	}
	return newUserResolver(r.store, u), nil
}

// Comments resolves Post.comments.
func (r *PostResolver) Comments() []*CommentResolver {
	return commentResolvers(r.store, r.store.CommentsOnPost(r.post.ID))
}

// CommentResolver resolves the fields of a Comment.
type CommentResolver struct {
	store   *blog.Store
	comment blog.Comment
}

func newCommentResolver(store *blog.Store, c blog.Comment) *CommentResolver {
	return &CommentResolver{store: store, comment: c}
}

func commentResolvers(store *blog.Store, comments []blog.Comment) []*CommentResolver {
	rs := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		rs = append(rs, newCommentResolver(store, c))
	}
	return rs
}

// ID resolves Comment.id.
func (r *CommentResolver) ID() graphql.ID { return graphql.ID(r.comment.ID) }

// Text resolves Comment.text.
func (r *CommentResolver) Text() string { return r.comment.Text }

// Author resolves Comment.author.
func (r *CommentResolver) Author() (*UserResolver, error) {
	u, ok := r.store.User(r.comment.Author)
	if !ok {
		return nil, xerrors.Errorf("comment %s: author %s not found", r.comment.ID, r.comment.Author)
	}
	return newUserResolver(r.store, u), nil
}

// Post resolves Comment.post.
func (r *CommentResolver) Post() (*PostResolver, error) {
	p, ok := r.store.Post(r.comment.Post)
	if !ok {
		return nil, xerrors.Errorf("comment %s: post %s not found", r.comment.ID, r.comment.Post)
	}
	return newPostResolver(r.store, p), nil
}
