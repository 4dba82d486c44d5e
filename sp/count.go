// SPDX-License-Identifier: MIT

package sp

import (
	"math"
	"math/bits"
)

// Count returns how many trees Enumerate yields for n capacitors with
// pairwise distinct values, saturating at math.MaxUint64. Repeated values
// only shrink the sequence.
//
// With T(1) = 1 and H(n) the number of Series-rooted trees (equal to the
// Parallel-rooted count by symmetry):
//
//	H(n) = Σ_{k=1}^{n-1} w(n,k) · R(k) · T(n-k),  T(n) = 2·H(n)
//
// where R(1) = 1, R(k) = H(k), and w is 1 for Contiguous and C(n-1, k-1)
// for Subsets.
func Count(n int, mode PartitionMode) uint64 {
	if n <= 0 {
		return 0
	}
	t := make([]uint64, n+1)
	h := make([]uint64, n+1)
	t[1], h[1] = 1, 1
	var binom [][]uint64
	if mode == Subsets {
		binom = pascal(n)
	}
	for m := 2; m <= n; m++ {
		var sum uint64
		for k := 1; k < m; k++ {
			term := satMul(h[k], t[m-k])
			if binom != nil {
				term = satMul(term, binom[m-1][k-1])
			}
			sum = satAdd(sum, term)
		}
		h[m] = sum
		t[m] = satMul(2, sum)
	}

	return t[n]
}

func pascal(n int) [][]uint64 {
	c := make([][]uint64, n)
	for i := range c {
		c[i] = make([]uint64, i+1)
		c[i][0], c[i][i] = 1, 1
		for j := 1; j < i; j++ {
			c[i][j] = satAdd(c[i-1][j-1], c[i-1][j])
		}
	}

	return c
}

func satAdd(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}

	return s
}

func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}
