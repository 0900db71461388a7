package satchel

import (
	"testing"

	"github.com/bradenaw/juniper/iterator"
	"github.com/stretchr/testify/require"
)

func TestBag(t *testing.T) {
	b := NewBag[int]()
	require.Equal(t, 0, b.Len())
	require.True(t, b.IsEmpty())

	b.Add(10)
	require.Equal(t, 1, b.Len())
	require.False(t, b.IsEmpty())

	b.Add(20)
	require.Equal(t, 2, b.Len())
	require.False(t, b.IsEmpty())
}

func TestBagIter(t *testing.T) {
	b := NewBag[int]()
	require.Empty(t, iterator.Collect(b.Iter()))

	b.Add(10)
	b.Add(20)
	b.Add(30)
	b.Add(40)
	b.Add(50)

	require.Equal(t, []int{10, 20, 30, 40, 50}, iterator.Collect(b.Iter()))
}

func TestBagKeepsDuplicates(t *testing.T) {
	b := NewBag[string]()
	b.Add("x")
	b.Add("y")
	b.Add("x")
	b.Add("x")

	require.Equal(t, 4, b.Len())
	require.Equal(t, []string{"x", "y", "x", "x"}, iterator.Collect(b.Iter()))
}
