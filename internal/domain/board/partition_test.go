package board

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"goban/internal/errors"
)

func newTestPartition(t *testing.T, size int) (*Grid, *Partition) {
	t.Helper()
	g, err := NewGrid(size)
	require.NoError(t, err)
	p := NewPartition(g)
	p.AssignInitialPartition()
	return g, p
}

func mustIndex(t *testing.T, g *Grid, s string) int {
	t.Helper()
	v, err := ParseVertex(s, g.Size())
	require.NoError(t, err)
	idx, err := g.Index(v)
	require.NoError(t, err)
	return idx
}

// checkPartitionInvariants сверяет партицию с определением из первых
// принципов: каждая точка ровно в одном регионе, смежные точки одного
// состояния — в одном регионе, кэш дыханий совпадает с полным пересчётом.
func checkPartitionInvariants(t *testing.T, g *Grid, p *Partition) {
	t.Helper()

	seen := make(map[int]RegionID)
	for _, id := range p.RegionIDs() {
		r, err := p.Region(id)
		require.NoError(t, err)
		require.NotEmpty(t, r.Points(), "region %d is empty", id)
		for _, idx := range r.Points() {
			prev, dup := seen[idx]
			require.False(t, dup, "point %d in regions %d and %d", idx, prev, id)
			seen[idx] = id
			require.Equal(t, id, g.PointAt(idx).Region)
			require.Equal(t, r.Color(), g.PointAt(idx).State)
		}
	}
	require.Len(t, seen, g.NumPoints(), "every point must belong to exactly one region")

	var buf [4]int
	for idx := 0; idx < g.NumPoints(); idx++ {
		for _, nb := range g.Neighbors(idx, &buf) {
			if g.PointAt(idx).State == g.PointAt(nb).State {
				require.Equal(t, g.PointAt(idx).Region, g.PointAt(nb).Region,
					"adjacent same-state points %s and %s in different regions",
					g.PointAt(idx).Vertex, g.PointAt(nb).Vertex)
			}
		}
	}

	for _, id := range p.RegionIDs() {
		r, _ := p.Region(id)
		if !r.IsStoneGroup() {
			continue
		}
		require.Equal(t, bruteForceLiberties(g, r), r.Liberties(),
			"cached liberties diverged for region %d", id)
	}
}

func bruteForceLiberties(g *Grid, r *Region) int {
	libs := make(map[int]struct{})
	var buf [4]int
	for _, idx := range r.Points() {
		for _, nb := range g.Neighbors(idx, &buf) {
			if g.PointAt(nb).State == Empty {
				libs[nb] = struct{}{}
			}
		}
	}
	return len(libs)
}

func TestAssignInitialPartition(t *testing.T) {
	g, p := newTestPartition(t, 9)
	require.Equal(t, 1, p.NumRegions())
	r := p.RegionOf(0)
	require.Equal(t, 81, r.Size())
	require.Equal(t, Empty, r.Color())
	require.False(t, r.IsStoneGroup())
	require.Empty(t, r.AdjacentRegions())
	checkPartitionInvariants(t, g, p)
}

func TestPlaceStoneCenter(t *testing.T) {
	g, p := newTestPartition(t, 9)
	idx := mustIndex(t, g, "E5")

	captured, err := p.PlaceStone(idx, Black)
	require.NoError(t, err)
	require.Empty(t, captured)

	r := p.RegionOf(idx)
	require.Equal(t, 1, r.Size())
	require.Equal(t, Black, r.Color())
	require.True(t, r.IsStoneGroup())
	require.Equal(t, 4, r.Liberties())
	require.Equal(t, 2, p.NumRegions())
	checkPartitionInvariants(t, g, p)
}

func TestPlaceStonePreconditions(t *testing.T) {
	g, p := newTestPartition(t, 9)
	idx := mustIndex(t, g, "E5")

	_, err := p.PlaceStone(idx, Empty)
	require.ErrorIs(t, err, errors.ErrInvalidOperation)

	_, err = p.PlaceStone(-1, Black)
	require.ErrorIs(t, err, errors.ErrInvalidOperation)
	_, err = p.PlaceStone(g.NumPoints(), Black)
	require.ErrorIs(t, err, errors.ErrInvalidOperation)

	_, err = p.PlaceStone(idx, Black)
	require.NoError(t, err)
	_, err = p.PlaceStone(idx, White)
	require.ErrorIs(t, err, errors.ErrInvalidOperation)
	checkPartitionInvariants(t, g, p)
}

func TestRemoveStonesPreconditions(t *testing.T) {
	g, p := newTestPartition(t, 9)
	err := p.RemoveStones([]int{mustIndex(t, g, "E5")})
	require.ErrorIs(t, err, errors.ErrInvalidOperation)
	require.ErrorIs(t, p.RemoveStones([]int{-5}), errors.ErrInvalidOperation)
}

func TestMergeNeighbours(t *testing.T) {
	g, p := newTestPartition(t, 9)

	// Два отдельных камня, затем соединяющий: три точки в одном регионе.
	for _, s := range []string{"C3", "E3"} {
		_, err := p.PlaceStone(mustIndex(t, g, s), Black)
		require.NoError(t, err)
	}
	require.NotEqual(t,
		g.PointAt(mustIndex(t, g, "C3")).Region,
		g.PointAt(mustIndex(t, g, "E3")).Region)

	_, err := p.PlaceStone(mustIndex(t, g, "D3"), Black)
	require.NoError(t, err)

	r := p.RegionOf(mustIndex(t, g, "D3"))
	require.Equal(t, 3, r.Size())
	require.Equal(t, 8, r.Liberties())
	checkPartitionInvariants(t, g, p)
}

func TestWallSplitsEmptyRegion(t *testing.T) {
	g, p := newTestPartition(t, 7)

	// Стена D1..D7 рассекает пустую доску на две половины.
	for _, s := range []string{"D1", "D2", "D3", "D4", "D5", "D6", "D7"} {
		_, err := p.PlaceStone(mustIndex(t, g, s), Black)
		require.NoError(t, err)
		checkPartitionInvariants(t, g, p)
	}

	require.Equal(t, 3, p.NumRegions())
	sizes := []int{}
	for _, id := range p.RegionIDs() {
		r, _ := p.Region(id)
		sizes = append(sizes, r.Size())
	}
	sort.Ints(sizes)
	require.Equal(t, []int{7, 21, 21}, sizes)

	wall := p.RegionOf(mustIndex(t, g, "D4"))
	require.Equal(t, 14, wall.Liberties())
	require.Len(t, wall.AdjacentRegions(), 2)
}

func TestCaptureCandidateReturned(t *testing.T) {
	g, p := newTestPartition(t, 9)

	_, err := p.PlaceStone(mustIndex(t, g, "E5"), White)
	require.NoError(t, err)
	for _, s := range []string{"D5", "F5", "E4"} {
		captured, err := p.PlaceStone(mustIndex(t, g, s), Black)
		require.NoError(t, err)
		require.Empty(t, captured)
	}

	captured, err := p.PlaceStone(mustIndex(t, g, "E6"), Black)
	require.NoError(t, err)
	require.Len(t, captured, 1)
	require.Equal(t, White, captured[0].Color())
	require.Equal(t, 1, captured[0].Size())
	require.Equal(t, 0, captured[0].Liberties())

	// Партиция кандидатов не снимает: это решение доски.
	st := g.PointAt(mustIndex(t, g, "E5")).State
	require.Equal(t, White, st)
	checkPartitionInvariants(t, g, p)
}

func TestRemoveStonesMergesBackIntoEmpty(t *testing.T) {
	g, p := newTestPartition(t, 9)

	idx := mustIndex(t, g, "E5")
	_, err := p.PlaceStone(idx, White)
	require.NoError(t, err)
	require.Equal(t, 2, p.NumRegions())

	require.NoError(t, p.RemoveStones([]int{idx}))
	require.Equal(t, 1, p.NumRegions())
	require.Equal(t, Empty, g.PointAt(idx).State)
	require.Equal(t, 81, p.RegionOf(idx).Size())
	checkPartitionInvariants(t, g, p)
}

func TestRemoveConnectorSplitsStoneRegion(t *testing.T) {
	g, p := newTestPartition(t, 9)

	// Группа из трёх белых в линию; снятие среднего должно расколоть её.
	for _, s := range []string{"D5", "E5", "F5"} {
		_, err := p.PlaceStone(mustIndex(t, g, s), White)
		require.NoError(t, err)
	}
	require.Equal(t, 3, p.RegionOf(mustIndex(t, g, "E5")).Size())

	require.NoError(t, p.RemoveStones([]int{mustIndex(t, g, "E5")}))

	left := p.RegionOf(mustIndex(t, g, "D5"))
	right := p.RegionOf(mustIndex(t, g, "F5"))
	require.NotEqual(t, left.ID(), right.ID())
	require.Equal(t, 1, left.Size())
	require.Equal(t, 1, right.Size())
	require.Equal(t, 4, left.Liberties())
	checkPartitionInvariants(t, g, p)
}

func TestLazyCacheRecomputedAfterNeighbourMutation(t *testing.T) {
	g, p := newTestPartition(t, 9)

	idx := mustIndex(t, g, "E5")
	_, err := p.PlaceStone(idx, Black)
	require.NoError(t, err)
	r := p.RegionOf(idx)
	require.Equal(t, 4, r.Liberties())

	// Чужой камень рядом обязан инвалидировать кэш дыханий соседа.
	_, err = p.PlaceStone(mustIndex(t, g, "D5"), White)
	require.NoError(t, err)
	require.Equal(t, 3, r.Liberties())

	require.NoError(t, p.RemoveStones([]int{mustIndex(t, g, "D5")}))
	require.Equal(t, 4, r.Liberties())
	checkPartitionInvariants(t, g, p)
}

func TestMergeRefreshesRemoteAdjacency(t *testing.T) {
	g, p := newTestPartition(t, 5)

	// Чёрные A1 и A3 — два региона; белый B3 смежен только с A3.
	_, err := p.PlaceStone(mustIndex(t, g, "A1"), Black)
	require.NoError(t, err)
	_, err = p.PlaceStone(mustIndex(t, g, "A3"), Black)
	require.NoError(t, err)
	_, err = p.PlaceStone(mustIndex(t, g, "B3"), White)
	require.NoError(t, err)

	// Прогреваем кэш смежности белого: в него попадает хэндл региона A3.
	white := p.RegionOf(mustIndex(t, g, "B3"))
	white.AdjacentRegions()

	// A2 сшивает A1 и A3, хэндл одного из них умирает. Кэш белого обязан
	// пересчитаться и не отдавать мёртвый хэндл.
	_, err = p.PlaceStone(mustIndex(t, g, "A2"), Black)
	require.NoError(t, err)

	for _, id := range white.AdjacentRegions() {
		_, err := p.Region(id)
		require.NoError(t, err, "adjacency cache still holds region %d", id)
	}
	checkPartitionInvariants(t, g, p)
}

func TestScriptedGameKeepsInvariants(t *testing.T) {
	g, p := newTestPartition(t, 9)

	script := []struct {
		vertex string
		color  State
	}{
		{"E5", Black}, {"E4", White}, {"D4", Black}, {"F4", White},
		{"F5", Black}, {"D3", White}, {"C4", Black}, {"E3", White},
		{"G4", Black}, {"G3", White}, {"D5", Black}, {"H4", White},
	}
	for _, mv := range script {
		captured, err := p.PlaceStone(mustIndex(t, g, mv.vertex), mv.color)
		require.NoError(t, err, "place %s", mv.vertex)
		for _, r := range captured {
			require.NoError(t, p.RemoveStones(append([]int{}, r.Points()...)))
		}
		checkPartitionInvariants(t, g, p)
	}
}
