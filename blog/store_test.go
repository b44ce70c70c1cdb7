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
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/xerrors"
)

// newTestStore returns a seeded store whose IDs are "new1", "new2", and so on.
func newTestStore() *Store {
	n := 0
	return NewSeededStore(&Options{
		NewID: func() string {
			n++
			return fmt.Sprintf("new%d", n)
		},
	})
}

func userIDs(users []User) []string {
	var ids []string
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func postIDs(posts []Post) []string {
	var ids []string
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func commentIDs(comments []Comment) []string {
	var ids []string
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestUsers(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"id12345", "id1248uij"}},
		{query: "ganiu", want: []string{"id12345"}},
		{query: "GANIU", want: []string{"id12345"}},
		{query: "a", want: []string{"id12345", "id1248uij"}},
		{query: "yom", want: []string{"id1248uij"}},
		{query: "zzz", want: nil},
	}
	s := newTestStore()
	for _, test := range tests {
		got := userIDs(s.Users(test.query))
		if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Users(%q) (-want +got):\n%s", test.query, diff)
		}
	}
}

func TestPosts(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"po22345", "po23435", "po2345y", "po23re45"}},
		{query: "school", want: []string{"po22345", "po23435"}},
		{query: "MARKET", want: []string{"po2345y"}},
		{query: "night", want: nil},
	}
	s := newTestStore()
	for _, test := range tests {
		got := postIDs(s.Posts(test.query))
		if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Posts(%q) (-want +got):\n%s", test.query, diff)
		}
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"cm110201", "cm1y67378", "cm1u809301", "cm136328"}},
		{query: "Boss", want: []string{"cm136328"}},
		{query: "a comment", want: []string{"cm1y67378", "cm136328"}},
		{query: "nothing like this", want: nil},
	}
	s := newTestStore()
	for _, test := range tests {
		got := commentIDs(s.Comments(test.query))
		if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Comments(%q) (-want +got):\n%s", test.query, diff)
		}
	}
}

func TestLookups(t *testing.T) {
	s := newTestStore()
	if c, ok := s.Comment("cm136328"); !ok || c.Text != "This is a comment for the boss" {
		t.Errorf("Comment(%q) = %+v, %t; want boss comment, true", "cm136328", c, ok)
	}
	if c, ok := s.Comment("nope"); ok {
		t.Errorf("Comment(%q) = %+v, true; want _, false", "nope", c)
	}
	if _, ok := s.Comment("CM136328"); ok {
		t.Errorf("Comment(%q) found; IDs must match exactly", "CM136328")
	}
	me, ok := s.Me()
	if !ok {
		t.Fatal("Me() not found")
	}
	want := User{ID: "id12345", Name: "Ganiu", Email: "ganiu@usebreeze.io", Age: NewNullInt(21)}
	if diff := cmp.Diff(want, me); diff != "" {
		t.Errorf("Me() (-want +got):\n%s", diff)
	}
}

func TestRelationships(t *testing.T) {
	s := newTestStore()
	if diff := cmp.Diff([]string{"po22345", "po2345y"}, postIDs(s.PostsByAuthor("id12345"))); diff != "" {
		t.Errorf("PostsByAuthor(id12345) (-want +got):\n%s", diff)
	}
	if got := s.CommentsByAuthor("id1248uij"); len(got) != 0 {
		t.Errorf("CommentsByAuthor(id1248uij) = %v; want empty", got)
	}
	wantComments := []string{"cm110201", "cm1y67378", "cm1u809301", "cm136328"}
	if diff := cmp.Diff(wantComments, commentIDs(s.CommentsOnPost("po23435"))); diff != "" {
		t.Errorf("CommentsOnPost(po23435) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantComments, commentIDs(s.CommentsByAuthor("id12345"))); diff != "" {
		t.Errorf("CommentsByAuthor(id12345) (-want +got):\n%s", diff)
	}
}

func TestCreateUser(t *testing.T) {
	s := NewStore(&Options{NewID: func() string { return "u1" }})
	got, err := s.CreateUser(CreateUserInput{Name: "X", Email: "dup@x.com", Age: NewNullInt(1)})
	if err != nil {
		t.Fatal(err)
	}
	want := User{ID: "u1", Name: "X", Email: "dup@x.com", Age: NewNullInt(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CreateUser(...) (-want +got):\n%s", diff)
	}

	_, err = s.CreateUser(CreateUserInput{Name: "Y", Email: "dup@x.com"})
	if !xerrors.Is(err, ErrDuplicateEmail) {
		t.Errorf("second CreateUser error = %v; want %v", err, ErrDuplicateEmail)
	}
	if got := s.Len(); got != (Counts{Users: 1}) {
		t.Errorf("Len() after failed CreateUser = %+v; want {Users:1}", got)
	}

	// Emails are compared exactly.
	if _, err := s.CreateUser(CreateUserInput{Name: "Z", Email: "DUP@x.com"}); err != nil {
		t.Errorf("CreateUser with differently cased email: %v", err)
	}
}

func TestCreatePost(t *testing.T) {
	s := newTestStore()
	before := s.Len()
	_, err := s.CreatePost(CreatePostInput{Title: "T", Published: true, Author: "unknown-id"})
	if !xerrors.Is(err, ErrUnknownAuthor) {
		t.Errorf("CreatePost with unknown author error = %v; want %v", err, ErrUnknownAuthor)
	}
	if got := s.Len(); got != before {
		t.Errorf("Len() after failed CreatePost = %+v; want %+v", got, before)
	}

	p, err := s.CreatePost(CreatePostInput{Title: "T", Published: true, Author: "id1248uij"})
	if err != nil {
		t.Fatal(err)
	}
	want := Post{ID: "new1", Title: "T", Published: true, Author: "id1248uij"}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("CreatePost(...) (-want +got):\n%s", diff)
	}
	got := postIDs(s.PostsByAuthor("id1248uij"))
	if diff := cmp.Diff([]string{"po23435", "po23re45", "new1"}, got); diff != "" {
		t.Errorf("PostsByAuthor after CreatePost (-want +got):\n%s", diff)
	}
}

func TestCreateComment(t *testing.T) {
	tests := []struct {
		name  string
		input CreateCommentInput
		want  error
	}{
		{
			name:  "UnknownAuthor",
			input: CreateCommentInput{Text: "hi", Author: "ghost", Post: "po22345"},
			want:  ErrUnknownAuthor,
		},
		{
			name:  "UnknownAuthorBeforeUnknownPost",
			input: CreateCommentInput{Text: "hi", Author: "ghost", Post: "nowhere"},
			want:  ErrUnknownAuthor,
		},
		{
			name:  "UnknownPost",
			input: CreateCommentInput{Text: "hi", Author: "id12345", Post: "nowhere"},
			want:  ErrUnknownPost,
		},
		{
			name:  "UnpublishedPost",
			input: CreateCommentInput{Text: "hi", Author: "id12345", Post: "po2345y"},
			want:  ErrUnpublishedPost,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestStore()
			before := s.Len()
			_, err := s.CreateComment(test.input)
			if !xerrors.Is(err, test.want) {
				t.Errorf("CreateComment(%+v) error = %v; want %v", test.input, err, test.want)
			}
			if got := s.Len(); got != before {
				t.Errorf("Len() after failed CreateComment = %+v; want %+v", got, before)
			}
		})
	}

	t.Run("Published", func(t *testing.T) {
		s := newTestStore()
		c, err := s.CreateComment(CreateCommentInput{Text: "hi", Author: "id1248uij", Post: "po22345"})
		if err != nil {
			t.Fatal(err)
		}
		want := Comment{ID: "new1", Text: "hi", Author: "id1248uij", Post: "po22345"}
		if diff := cmp.Diff(want, c); diff != "" {
			t.Errorf("CreateComment(...) (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"new1"}, commentIDs(s.CommentsOnPost("po22345"))); diff != "" {
			t.Errorf("CommentsOnPost after CreateComment (-want +got):\n%s", diff)
		}
	})
}

func TestValidationErrorOf(t *testing.T) {
	s := newTestStore()
	_, err := s.CreateUser(CreateUserInput{Name: "Ganiu", Email: "ganiu@usebreeze.io"})
	ve := ValidationErrorOf(err)
	if ve == nil || ve.Code != CodeDuplicateEmail {
		t.Errorf("ValidationErrorOf(%v) = %v; want code %s", err, ve, CodeDuplicateEmail)
	}
	if ve := ValidationErrorOf(xerrors.New("bork")); ve != nil {
		t.Errorf("ValidationErrorOf(bork) = %v; want <nil>", ve)
	}
}

func TestConcurrentCreateUser(t *testing.T) {
	s := NewStore(nil)
	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateUser(CreateUserInput{
				Name:  fmt.Sprintf("user%d", i),
				Email: "same@example.com",
			})
		}(i)
	}
	wg.Wait()
	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case !xerrors.Is(err, ErrDuplicateEmail):
			t.Errorf("CreateUser error = %v; want %v", err, ErrDuplicateEmail)
		}
	}
	if succeeded != 1 {
		t.Errorf("%d concurrent CreateUser calls succeeded; want 1", succeeded)
	}
	if got := s.Len().Users; got != 1 {
		t.Errorf("Len().Users = %d; want 1", got)
	}
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s := NewStore(nil)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		u, err := s.CreateUser(CreateUserInput{Name: "n", Email: fmt.Sprintf("%d@example.com", i)})
		if err != nil {
			t.Fatal(err)
		}
		if u.ID == "" || seen[u.ID] {
			t.Fatalf("CreateUser #%d produced ID %q; want unique non-empty", i, u.ID)
		}
		seen[u.ID] = true
	}
}
