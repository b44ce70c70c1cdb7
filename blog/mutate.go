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

package blog

import "golang.org/x/xerrors"

// CreateUserInput holds the fields of a new user.
type CreateUserInput struct {
	Name  string
	Email string
	Age   NullInt
}

// CreatePostInput holds the fields of a new post.
type CreatePostInput struct {
	Title     string
	Published bool
	Author    string
}

// CreateCommentInput holds the fields of a new comment.
type CreateCommentInput struct {
	Text   string
	Post   string
	Author string
}

// CreateUser adds a new user to the store. It returns an error wrapping
// ErrDuplicateEmail if another user already has the same email. Emails are
// compared exactly.
func (s *Store) CreateUser(input CreateUserInput) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := find(s.users, func(u *User) bool { return u.Email == input.Email }); taken {
		return User{}, xerrors.Errorf("create user %q: %w", input.Email, ErrDuplicateEmail)
	}
	u := User{
		ID:    s.newID(),
		Name:  input.Name,
		Email: input.Email,
		Age:   input.Age,
	}
	s.users = append(s.users, u)
	return u, nil
}

// CreatePost adds a new post to the store. It returns an error wrapping
// ErrUnknownAuthor if input.Author does not name an existing user.
func (s *Store) CreatePost(input CreatePostInput) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasUser(input.Author) {
		return Post{}, xerrors.Errorf("create post: author %q: %w", input.Author, ErrUnknownAuthor)
	}
	p := Post{
		ID:        s.newID(),
		Title:     input.Title,
		Published: input.Published,
		Author:    input.Author,
	}
	s.posts = append(s.posts, p)
	return p, nil
}

// CreateComment adds a new comment to the store. The author is checked first,
// then the post's existence, then whether the post is published. The first
// failing check determines the error: ErrUnknownAuthor, ErrUnknownPost or
// ErrUnpublishedPost.
func (s *Store) CreateComment(input CreateCommentInput) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasUser(input.Author) {
		return Comment{}, xerrors.Errorf("create comment: author %q: %w", input.Author, ErrUnknownAuthor)
	}
	post, ok := find(s.posts, func(p *Post) bool { return p.ID == input.Post })
	if !ok {
		return Comment{}, xerrors.Errorf("create comment: post %q: %w", input.Post, ErrUnknownPost)
	}
	if !post.Published {
		return Comment{}, xerrors.Errorf("create comment: post %q: %w", input.Post, ErrUnpublishedPost)
	}
	c := Comment{
		ID:     s.newID(),
		Text:   input.Text,
		Author: input.Author,
		Post:   input.Post,
	}
	s.comments = append(s.comments, c)
	return c, nil
}

// hasUser reports whether a user with the given ID exists. The caller must
// hold s.mu.
func (s *Store) hasUser(id string) bool {
	_, ok := find(s.users, func(u *User) bool { return u.ID == id })
	return ok
}
