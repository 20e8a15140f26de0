// Package moveslice provides a thin slice facade over chess moves, used by
// the generator and the search to hold candidate move lists and principal
// variations without per-call allocation churn.
package moveslice

import (
	"sort"
	"strings"

	. "github.com/Alex7342/BitboatdChessEngine/internal/types"
)

// MoveSlice is a plain []Move with a few conveniences layered on top.
type MoveSlice []Move

// New returns an empty move slice with the given capacity pre-reserved.
func New(cap int) MoveSlice {
	return make(MoveSlice, 0, cap)
}

// PushBack appends m to the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the last move. Panics if empty.
func (ms *MoveSlice) PopBack() Move {
	n := len(*ms)
	if n == 0 {
		panic("moveslice: PopBack on empty slice")
	}
	m := (*ms)[n-1]
	*ms = (*ms)[:n-1]
	return m
}

// Clear empties the slice without releasing its backing array.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Contains reports whether m is already present, compared logically.
func (ms MoveSlice) Contains(m Move) bool {
	for _, x := range ms {
		if x.Equal(m) {
			return true
		}
	}
	return false
}

// SortByKey sorts the slice in descending order of key(m), stable so that
// otherwise-equal moves keep their generation order (quiets keep
// history-table ties in piece-then-square order).
func (ms MoveSlice) SortByKey(key func(Move) int64) {
	sort.SliceStable(ms, func(i, j int) bool {
		return key(ms[i]) > key(ms[j])
	})
}

// StringUci joins the slice as space-separated UCI move strings.
func (ms MoveSlice) StringUci() string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
