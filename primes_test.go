// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package robdd

import "testing"

func TestPrimes(t *testing.T) {
	var primeTests = []struct {
		n, gte, lte int
	}{
		{1, 3, 1},
		{2, 3, 2},
		{3, 3, 3},
		{10, 11, 7},
		{100, 101, 97},
		{252, 257, 251},
		{1000, 1009, 997},
	}
	for _, tt := range primeTests {
		if actual := primeGte(tt.n); actual != tt.gte {
			t.Errorf("primeGte(%d): expected %d, actual %d", tt.n, tt.gte, actual)
		}
		if actual := primeLte(tt.n); actual != tt.lte {
			t.Errorf("primeLte(%d): expected %d, actual %d", tt.n, tt.lte, actual)
		}
	}
}
