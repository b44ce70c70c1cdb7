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
	"golang.org/x/xerrors"
	"zombiezen.com/go/blogql/blog"
)

// CodeMissingInput is the error code for a mutation called without its data
// argument.
const CodeMissingInput = "MISSING_INPUT"

// Error is a mutation failure reported to the client. Its code is sent as the
// "code" extension of the GraphQL error.
type Error struct {
	Code    string
	Message string
	err     error
}

// Error returns e.Message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying store error, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Extensions returns the GraphQL error extensions for e.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// toClientError converts a store error into an *Error. Errors that are not
// validation failures are returned unchanged.
func toClientError(err error) error {
	ve := blog.ValidationErrorOf(err)
	if ve == nil {
		return err
	}
	return &Error{Code: string(ve.Code), Message: ve.Message, err: err}
}

func errMissingInput(mutation string) error {
	return &Error{
		Code:    CodeMissingInput,
		Message: mutation + ": missing data argument",
	}
}

// errorCode returns the code to record for a mutation that failed with err.
func errorCode(err error) string {
	var e *Error
	if xerrors.As(err, &e) {
		return e.Code
	}
	return ""
}
