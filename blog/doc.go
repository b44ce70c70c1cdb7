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

/*
Package blog holds the in-memory entity store behind the blogql GraphQL
service: users, the posts they write and the comments left on those posts.

Records are immutable once created. The only state change the store supports is
appending a new record, and each Create method checks its relational
invariants before appending:

	CreateUser     the email must not already be taken
	CreatePost     the author must be an existing user
	CreateComment  the author must exist, and the post must exist and be published

Associations between records are never stored as back-references. A user's
posts, a post's comments and so on are found by scanning the relevant
collection, so results always reflect insertion order.

A Store is safe to use from multiple goroutines. Each Create method performs its
checks and its append under a single write lock, so two concurrent CreateUser
calls with the same email cannot both succeed.
*/
package blog
