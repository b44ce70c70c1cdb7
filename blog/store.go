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

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// User is a registered author.
type User struct {
	ID    string
	Name  string
	Email string
	Age   NullInt
}

// Post is an article written by a user. Author holds the author's user ID.
type Post struct {
	ID        string
	Title     string
	Published bool
	Author    string
}

// Comment is a remark left by a user on a post. Author holds a user ID and
// Post holds a post ID.
type Comment struct {
	ID     string
	Text   string
	Author string
	Post   string
}

// Store is an in-memory collection of users, posts and comments. The zero
// value is not usable; create one with NewStore or NewSeededStore.
type Store struct {
	newID func() string

	mu       sync.RWMutex
	users    []User
	posts    []Post
	comments []Comment
}

// Options configures a Store. A nil *Options is equivalent to the zero value.
type Options struct {
	// NewID returns a fresh record identifier on each call. If nil, random
	// UUIDs are used.
	NewID func() string
}

// NewStore returns an empty store.
func NewStore(opts *Options) *Store {
	s := &Store{newID: uuid.NewString}
	if opts != nil && opts.NewID != nil {
		s.newID = opts.NewID
	}
	return s
}

// Counts holds the number of records in each of a store's collections.
type Counts struct {
	Users    int
	Posts    int
	Comments int
}

// Len returns the current size of each collection.
func (s *Store) Len() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{
		Users:    len(s.users),
		Posts:    len(s.posts),
		Comments: len(s.comments),
	}
}

// find returns the first record that matches.
func find[T any](records []T, match func(*T) bool) (T, bool) {
	for i := range records {
		if match(&records[i]) {
			return records[i], true
		}
	}
	var zero T
	return zero, false
}

// filter returns a copy of every record that matches, in order.
func filter[T any](records []T, match func(*T) bool) []T {
	var matches []T
	for i := range records {
		if match(&records[i]) {
			matches = append(matches, records[i])
		}
	}
	return matches
}

// containsFold reports whether query is a case-insensitive substring of text.
// An empty query matches everything.
func containsFold(text, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
