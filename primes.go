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

import "math/big"

// Sizes of the node table and of the caches are odd primes, so that the hash
// functions spread entries evenly.

// primeGte returns the smallest odd prime greater or equal to n.
func primeGte(n int) int {
	if n < 3 {
		return 3
	}
	for n |= 1; !isPrime(n); n += 2 {
	}
	return n
}

// primeLte returns the largest odd prime less or equal to n, or n itself when
// it is smaller than 3.
func primeLte(n int) int {
	if n < 3 {
		return n
	}
	if n%2 == 0 {
		n--
	}
	for ; !isPrime(n); n -= 2 {
	}
	return n
}

// isPrime is exact for all the sizes we use, since ProbablyPrime is 100%
// accurate for inputs less than 2^64.
func isPrime(n int) bool {
	return big.NewInt(int64(n)).ProbablyPrime(0)
}
