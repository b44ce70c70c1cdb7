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

// MeID is the ID of the seed user returned by Store.Me.
const MeID = "id12345"

// NewSeededStore returns a store populated by Seed.
func NewSeededStore(opts *Options) *Store {
	s := NewStore(opts)
	Seed(s)
	return s
}

// Seed appends the demo users, posts and comments to s. Seed records bypass
// validation: several seed comments are on an unpublished post.
func Seed(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users,
		User{ID: "id12345", Name: "Ganiu", Email: "ganiu@usebreeze.io", Age: NewNullInt(21)},
		User{ID: "id1248uij", Name: "Abayomi", Email: "abayomi@usebreeze.io", Age: NewNullInt(18)},
	)
	s.posts = append(s.posts,
		Post{ID: "po22345", Title: "First day at school", Published: true, Author: "id12345"},
		Post{ID: "po23435", Title: "First day at school", Published: false, Author: "id1248uij"},
		Post{ID: "po2345y", Title: "First day at the market", Published: false, Author: "id12345"},
		Post{ID: "po23re45", Title: "First day at work", Published: false, Author: "id1248uij"},
	)
	s.comments = append(s.comments,
		Comment{ID: "cm110201", Text: "This is a simple comment", Author: "id12345", Post: "po23435"},
		Comment{ID: "cm1y67378", Text: "This is a what you call a comment", Author: "id12345", Post: "po23435"},
		Comment{ID: "cm1u809301", Text: "This is a another comment", Author: "id12345", Post: "po23435"},
		Comment{ID: "cm136328", Text: "This is a comment for the boss", Author: "id12345", Post: "po23435"},
	)
}
