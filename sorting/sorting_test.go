package sorting

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/bradenaw/juniper/xsort"
	"github.com/stretchr/testify/require"
)

var sorts = []struct {
	name string
	sort func([]int)
}{
	{"Bubble", Bubble[int]},
	{"Insertion", Insertion[int]},
	{"Selection", Selection[int]},
	{"Quick", Quick[int]},
}

func TestSorts(t *testing.T) {
	cases := [][]int{
		nil,
		{1},
		{2, 1},
		{4, 3, 5, 1, 2},
		{5, 4, 3, 2, 1},
		{1, 2, 3, 4, 5},
		{3, 1, 3, 2, 1, 3},
		{7, 7, 7, 7},
	}

	for _, s := range sorts {
		t.Run(s.name, func(t *testing.T) {
			for _, c := range cases {
				a := append([]int(nil), c...)
				s.sort(a)

				expected := append([]int(nil), c...)
				sort.Ints(expected)
				require.Equal(t, expected, a, "input %v", c)
			}
		})
	}
}

func TestSortsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for _, s := range sorts {
		t.Run(s.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				// Lengths include 0, so the empty slice is covered too.
				a := make([]int, r.Intn(200))
				for j := range a {
					a[j] = r.Intn(50)
				}
				expected := make([]int, len(a))
				copy(expected, a)
				sort.Ints(expected)

				s.sort(a)
				require.Equal(t, expected, a)
			}
		})
	}
}

func TestSortFuncs(t *testing.T) {
	desc := func(a, b string) bool { return a > b }
	funcs := []func([]string, xsort.Less[string]){
		BubbleFunc[string],
		InsertionFunc[string],
		SelectionFunc[string],
		QuickFunc[string],
	}
	for _, f := range funcs {
		a := []string{"b", "d", "a", "c"}
		f(a, desc)
		require.Equal(t, []string{"d", "c", "b", "a"}, a)
	}
}

func TestSortsEmpty(t *testing.T) {
	for _, s := range sorts {
		a := []int{}
		s.sort(a)
		require.Equal(t, []int{}, a, s.name)

		var b []int
		s.sort(b)
		require.Nil(t, b, s.name)
	}
}

func TestQuickSorted(t *testing.T) {
	a := make([]int, 10_000)
	for i := range a {
		a[i] = i
	}
	Quick(a)
	require.True(t, sort.IntsAreSorted(a))
}

func TestSmallestN(t *testing.T) {
	v := []int{4, 3, 5, 1, 2}

	_, ok := SmallestN(v, 0)
	require.False(t, ok)
	for n := 1; n <= 5; n++ {
		x, ok := SmallestN(v, n)
		require.True(t, ok)
		require.Equal(t, n, x)
	}
	_, ok = SmallestN(v, 6)
	require.False(t, ok)
}

func TestSmallestNRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a := make([]int, 1+r.Intn(100))
		for j := range a {
			a[j] = r.Intn(30)
		}
		sorted := append([]int(nil), a...)
		sort.Ints(sorted)

		n := 1 + r.Intn(len(a))
		x, ok := SmallestN(a, n)
		require.True(t, ok)
		require.Equal(t, sorted[n-1], x)
	}
}

func TestSmallestNFunc(t *testing.T) {
	x, ok := SmallestNFunc([]int{4, 3, 5, 1, 2}, 1, func(a, b int) bool { return a > b })
	require.True(t, ok)
	require.Equal(t, 5, x)
}
