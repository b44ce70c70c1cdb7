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

import "fmt"

// Greeting returns a personal greeting when both name and position are
// non-empty and a generic one otherwise.
func Greeting(name, position string) string {
	if name == "" || position == "" {
		return "Hello!"
	}
	return fmt.Sprintf("Hello %s, you are my favourite %s", name, position)
}

// Add sums numbers from left to right. The sum of no numbers is 0.
func Add(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	sum := numbers[0]
	for _, x := range numbers[1:] {
		sum += x
	}
	return sum
}
