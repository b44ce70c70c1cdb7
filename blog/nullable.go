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

import "strconv"

// NullInt represents an Int that may be null. The zero value is null.
type NullInt struct {
	Int   int32
	Valid bool
}

// NewNullInt returns a valid NullInt holding i.
func NewNullInt(i int32) NullInt {
	return NullInt{Int: i, Valid: true}
}

// NullIntFromPtr converts a possibly nil pointer into a NullInt.
func NullIntFromPtr(p *int32) NullInt {
	if p == nil {
		return NullInt{}
	}
	return NewNullInt(*p)
}

// Ptr returns a pointer to a copy of the integer or nil if n is null.
func (n NullInt) Ptr() *int32 {
	if !n.Valid {
		return nil
	}
	i := n.Int
	return &i
}

// String returns the decimal representation or "null".
func (n NullInt) String() string {
	if !n.Valid {
		return "null"
	}
	return strconv.FormatInt(int64(n.Int), 10)
}
