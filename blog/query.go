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

// Users returns the users whose name contains query, ignoring case. An empty
// query returns every user. Users are returned in the order they were created.
func (s *Store) Users(query string) []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.users, func(u *User) bool { return containsFold(u.Name, query) })
}

// Posts returns the posts whose title contains query, ignoring case. An empty
// query returns every post.
func (s *Store) Posts(query string) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.posts, func(p *Post) bool { return containsFold(p.Title, query) })
}

// Comments returns the comments whose text contains query, ignoring case. An
// empty query returns every comment.
func (s *Store) Comments(query string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.comments, func(c *Comment) bool { return containsFold(c.Text, query) })
}

// User returns the user with the given ID.
func (s *Store) User(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.users, func(u *User) bool { return u.ID == id })
}

// Post returns the post with the given ID.
func (s *Store) Post(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.posts, func(p *Post) bool { return p.ID == id })
}

// Comment returns the comment with the given ID.
func (s *Store) Comment(id string) (Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.comments, func(c *Comment) bool { return c.ID == id })
}

// Me returns the demo user. It is the same user for every caller.
func (s *Store) Me() (User, bool) {
	return s.User(MeID)
}

// PostsByAuthor returns the posts written by the given user.
func (s *Store) PostsByAuthor(userID string) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.posts, func(p *Post) bool { return p.Author == userID })
}

// CommentsByAuthor returns the comments written by the given user.
func (s *Store) CommentsByAuthor(userID string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.comments, func(c *Comment) bool { return c.Author == userID })
}

// CommentsOnPost returns the comments left on the given post.
func (s *Store) CommentsOnPost(postID string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.comments, func(c *Comment) bool { return c.Post == postID })
}
