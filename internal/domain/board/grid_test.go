package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goban/internal/errors"
)

func TestNewGridInvalidSize(t *testing.T) {
	for _, size := range []int{0, 1, 6, 8, 20, 21} {
		_, err := NewGrid(size)
		require.ErrorIs(t, err, errors.ErrInvalidSize, "size %d", size)
	}
	for _, size := range SupportedSizes {
		_, err := NewGrid(size)
		require.NoError(t, err, "size %d", size)
	}
}

func TestGridNeighborWiring(t *testing.T) {
	g, err := NewGrid(9)
	require.NoError(t, err)
	require.Equal(t, 81, g.NumPoints())

	// Угол A1: только правый и верхний соседи.
	corner, err := g.AtString("A1")
	require.NoError(t, err)
	require.Equal(t, -1, corner.Left)
	require.Equal(t, -1, corner.Below)
	require.Equal(t, g.points[corner.Right].Vertex.String(), "B1")
	require.Equal(t, g.points[corner.Above].Vertex.String(), "A2")

	// Центр E5: все четыре.
	center, err := g.AtString("E5")
	require.NoError(t, err)
	var buf [4]int
	idx, err := g.Index(center.Vertex)
	require.NoError(t, err)
	require.Len(t, g.Neighbors(idx, &buf), 4)

	// Взаимность ссылок по всей сетке.
	for i := 0; i < g.NumPoints(); i++ {
		p := g.PointAt(i)
		if p.Left >= 0 {
			require.Equal(t, i, g.PointAt(p.Left).Right)
		}
		if p.Above >= 0 {
			require.Equal(t, i, g.PointAt(p.Above).Below)
		}
	}
}

func TestGridStarPoints(t *testing.T) {
	g, err := NewGrid(19)
	require.NoError(t, err)
	for _, s := range []string{"D4", "K10", "Q16", "D16", "Q4", "K4"} {
		p, err := g.AtString(s)
		require.NoError(t, err)
		require.True(t, p.Star, "expected star point at %s", s)
	}
	p, err := g.AtString("E5")
	require.NoError(t, err)
	require.False(t, p.Star)
}

func TestGridLookupOutside(t *testing.T) {
	g, err := NewGrid(9)
	require.NoError(t, err)
	_, err = g.At(Vertex{Col: 9, Row: 0})
	require.ErrorIs(t, err, errors.ErrInvalidOperation)
	_, err = g.Index(Vertex{Col: -1, Row: 3})
	require.ErrorIs(t, err, errors.ErrInvalidOperation)
}
