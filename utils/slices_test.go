package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	values := []int{3, 1, 3, 2}

	require.Equal(t, 0, FindIndex(values, 3))
	require.Equal(t, 3, FindIndex(values, 2))
	require.Equal(t, -1, FindIndex(values, 9))
	require.Equal(t, -1, FindIndex([]string{}, "a"))
}

func TestFindLastIndex(t *testing.T) {
	values := []int{3, 1, 3, 2}

	require.Equal(t, 2, FindLastIndex(values, 3))
	require.Equal(t, -1, FindLastIndex(values, 9))
}

func TestCount(t *testing.T) {
	require.Equal(t, 2, Count([]int{3, 1, 3, 2}, 3))
	require.Zero(t, Count([]int{}, 3))
}
