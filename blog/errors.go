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

// Code identifies the kind of a ValidationError. Codes are stable and are
// surfaced to GraphQL clients as the "code" error extension.
type Code string

// Validation error codes.
const (
	CodeDuplicateEmail  Code = "DUPLICATE_EMAIL"
	CodeUnknownAuthor   Code = "UNKNOWN_AUTHOR"
	CodeUnknownPost     Code = "UNKNOWN_POST"
	CodeUnpublishedPost Code = "UNPUBLISHED_POST"
)

// ValidationError is returned when a Create method rejects its input because
// the new record would break one of the store's relational invariants. The
// store is left unchanged.
type ValidationError struct {
	Code    Code
	Message string
}

// Error returns e.Message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Errors returned (wrapped) by the Create methods. Use xerrors.Is to test for
// them.
var (
	ErrDuplicateEmail  = &ValidationError{Code: CodeDuplicateEmail, Message: "email taken"}
	ErrUnknownAuthor   = &ValidationError{Code: CodeUnknownAuthor, Message: "user not found"}
	ErrUnknownPost     = &ValidationError{Code: CodeUnknownPost, Message: "post not found"}
	ErrUnpublishedPost = &ValidationError{Code: CodeUnpublishedPost, Message: "cannot comment on an unpublished post"}
)

// ValidationErrorOf returns the ValidationError in err's chain or nil if there
// is none.
func ValidationErrorOf(err error) *ValidationError {
	var ve *ValidationError
	if !xerrors.As(err, &ve) {
		return nil
	}
	return ve
}
