package utils

import (
	"fmt"
	"sort"
)

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Copy() (r Index) {
	r = make(Index, len(I))
	copy(r, I)
	return
}

func (I Index) Subset(J Index) (r Index) {
	r = make(Index, len(J))
	for j, val := range J {
		r[j] = I[val]
	}
	return
}

// ArgSort returns the index that visits values in ascending order. Equal
// values are ordered by tieBreak when it is given, otherwise by position.
func ArgSort(values []float64, tieBreak ...[]float64) (I Index) {
	var (
		tb []float64
	)
	if len(tieBreak) != 0 {
		tb = tieBreak[0]
		if len(tb) != len(values) {
			panic(fmt.Errorf("tie break length %d does not match values length %d", len(tb), len(values)))
		}
	}
	I = NewRange(0, len(values)-1)
	sort.SliceStable(I, func(a, b int) bool {
		va, vb := values[I[a]], values[I[b]]
		if va != vb || tb == nil {
			return va < vb
		}
		return tb[I[a]] < tb[I[b]]
	})
	return
}

// Inverse returns J such that J[I[i]] = i. I must be a permutation.
func (I Index) Inverse() (J Index) {
	J = NewIndex(len(I))
	for i, val := range I {
		J[val] = i
	}
	return
}

func (I Index) IsPermutation() bool {
	seen := make([]bool, len(I))
	for _, val := range I {
		if val < 0 || val >= len(I) || seen[val] {
			return false
		}
		seen[val] = true
	}
	return true
}

// Scatter writes src[i] into dst[I[i]]
func (I Index) Scatter(dst, src []float64) (err error) {
	if len(I) != len(src) || len(dst) != len(src) {
		err = fmt.Errorf("dimension mismatch: len(I) = %d, len(dst) = %d, len(src) = %d",
			len(I), len(dst), len(src))
		return
	}
	for i, ind := range I {
		dst[ind] = src[i]
	}
	return
}

// Gather returns src[I[i]] for every i
func (I Index) Gather(src []float64) (r []float64) {
	r = make([]float64, len(I))
	for i, ind := range I {
		r[i] = src[ind]
	}
	return
}
