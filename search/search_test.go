package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Expected index for each v in 0..10, or -1 for none.
type searchCase struct {
	a        []int
	expected []int
}

func runCases(t *testing.T, f func([]int, int) (int, bool), cases ...searchCase) {
	t.Helper()
	for _, c := range cases {
		for v, exp := range c.expected {
			idx, ok := f(c.a, v)
			if exp < 0 {
				require.False(t, ok, "%v: searching %d found %d", c.a, v, idx)
				continue
			}
			require.True(t, ok, "%v: searching %d", c.a, v)
			require.Equal(t, exp, idx, "%v: searching %d", c.a, v)
		}
	}
}

func TestBinary(t *testing.T) {
	runCases(t, Binary[int],
		searchCase{
			a:        []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
			expected: []int{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, -1},
		},
		searchCase{
			a:        nil,
			expected: []int{-1, -1},
		},
	)
}

func TestFirst(t *testing.T) {
	runCases(t, First[int], searchCase{
		a:        []int{1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 8, 8, 9},
		expected: []int{-1, 0, 1, 3, 4, 6, 7, 9, 10, 12, -1},
	})
}

func TestLast(t *testing.T) {
	runCases(t, Last[int], searchCase{
		a:        []int{1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 8, 8, 9},
		expected: []int{-1, 0, 2, 3, 5, 6, 8, 9, 11, 12, -1},
	})
}

func TestFirstGTE(t *testing.T) {
	runCases(t, FirstGTE[int], searchCase{
		a:        []int{1, 2, 2, 3, 5, 6, 6, 7, 9},
		expected: []int{0, 0, 1, 3, 4, 4, 5, 7, 8, 8, -1},
	})
}

func TestLastLTE(t *testing.T) {
	runCases(t, LastLTE[int], searchCase{
		a:        []int{1, 2, 2, 3, 5, 6, 6, 7, 9},
		expected: []int{-1, 0, 2, 3, 3, 4, 6, 7, 7, 8, 8},
	})
}

func TestCycled(t *testing.T) {
	runCases(t, Cycled[int],
		searchCase{
			a:        []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
			expected: []int{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, -1},
		},
		searchCase{
			a:        []int{5, 6, 7, 8, 9, 1, 2, 3, 4},
			expected: []int{-1, 5, 6, 7, 8, 0, 1, 2, 3, 4, -1},
		},
		searchCase{
			a:        []int{9, 1, 2, 3, 4, 5, 6, 7, 8},
			expected: []int{-1, 1, 2, 3, 4, 5, 6, 7, 8, 0, -1},
		},
		searchCase{
			a:        []int{2, 3, 4, 5, 6, 7, 8, 9, 1},
			expected: []int{-1, 8, 0, 1, 2, 3, 4, 5, 6, 7, -1},
		},
	)
}

func TestFuncForms(t *testing.T) {
	desc := func(a, b string) bool { return a > b }
	a := []string{"e", "d", "d", "b", "a"}

	idx, ok := BinaryFunc(a, "b", desc)
	require.True(t, ok)
	require.Equal(t, 3, idx)

	idx, ok = FirstFunc(a, "d", desc)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	idx, ok = LastFunc(a, "d", desc)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	// Under desc, "greater or equal" means alphabetically at or before.
	idx, ok = FirstGTEFunc(a, "c", desc)
	require.True(t, ok)
	require.Equal(t, 3, idx)

	idx, ok = LastLTEFunc(a, "c", desc)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, ok = CycledFunc(a[:1], "z", desc)
	require.False(t, ok)
}
