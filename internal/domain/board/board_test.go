package board

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"goban/internal/errors"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := NewBoard(size)
	require.NoError(t, err)
	return b
}

func play(t *testing.T, b *Board, s string, c State) MoveRecord {
	t.Helper()
	v, err := ParseVertex(s, b.Size())
	require.NoError(t, err)
	rec, err := b.PlayStone(v, c)
	require.NoError(t, err, "play %s %s", c, s)
	return rec
}

// boardFingerprint — каноническая форма занятости и границ регионов,
// пригодная для побайтового сравнения до и после отката.
func boardFingerprint(b *Board) string {
	var sb strings.Builder
	for i := 0; i < b.Grid().NumPoints(); i++ {
		sb.WriteString(b.Grid().PointAt(i).State.String()[:1])
	}
	sb.WriteByte('|')

	var regions []string
	for _, id := range b.Partition().RegionIDs() {
		r, _ := b.Partition().Region(id)
		pts := append([]int{}, r.Points()...)
		sort.Ints(pts)
		regions = append(regions, fmt.Sprintf("%s:%v", r.Color(), pts))
	}
	sort.Strings(regions)
	sb.WriteString(strings.Join(regions, ";"))
	return sb.String()
}

func TestPlayStoneCenterNineByNine(t *testing.T) {
	b := newTestBoard(t, 9)

	rec := play(t, b, "E5", Black)
	require.Empty(t, rec.Captured)

	idx := mustIndex(t, b.Grid(), "E5")
	r := b.Partition().RegionOf(idx)
	require.Equal(t, 1, r.Size())
	require.Equal(t, 4, r.Liberties())
	require.Equal(t, Black, r.Color())
}

func TestPlayStoneOnOccupiedPoint(t *testing.T) {
	b := newTestBoard(t, 9)
	play(t, b, "E5", Black)

	v, _ := ParseVertex("E5", 9)
	_, err := b.PlayStone(v, White)
	require.ErrorIs(t, err, errors.ErrIllegalMove)
}

func TestCaptureSurroundedStone(t *testing.T) {
	b := newTestBoard(t, 5)

	play(t, b, "C3", White)
	play(t, b, "B3", Black)
	play(t, b, "D3", Black)
	play(t, b, "C2", Black)

	rec := play(t, b, "C4", Black)
	require.Len(t, rec.Captured, 1)
	require.Equal(t, "C3", rec.Captured[0].String())

	// После снятия точка пуста и влита обратно в окружающую пустоту.
	st, err := b.StateAt(Vertex{Col: 2, Row: 2})
	require.NoError(t, err)
	require.Equal(t, Empty, st)
	// C3 со всех сторон окружён чёрными, так что после снятия он —
	// одноточечный пустой регион (глаз), а не часть внешней пустоты.
	emptyRegion := b.Partition().RegionOf(mustIndex(t, b.Grid(), "C3"))
	require.Equal(t, Empty, emptyRegion.Color())
	require.Equal(t, 1, emptyRegion.Size())
	outer := b.Partition().RegionOf(mustIndex(t, b.Grid(), "A1"))
	require.Equal(t, 20, outer.Size())
	checkPartitionInvariants(t, b.Grid(), b.Partition())
}

func TestCaptureConnectorLeavesStonesSeparate(t *testing.T) {
	b := newTestBoard(t, 7)

	// Два несмежных чёрных камня, соединённых белым: снятие белого
	// связующего уничтожает его регион целиком, чёрные остаются порознь.
	play(t, b, "B1", Black)
	play(t, b, "C1", White)
	play(t, b, "D1", Black)

	rec := play(t, b, "C2", Black)
	require.Len(t, rec.Captured, 1)
	require.Equal(t, "C1", rec.Captured[0].String())

	left := b.Partition().RegionOf(mustIndex(t, b.Grid(), "B1"))
	right := b.Partition().RegionOf(mustIndex(t, b.Grid(), "D1"))
	require.NotEqual(t, left.ID(), right.ID())
	require.Equal(t, 1, left.Size())
	require.Equal(t, 1, right.Size())

	for _, id := range b.Partition().RegionIDs() {
		r, _ := b.Partition().Region(id)
		require.False(t, r.Color() == White, "no white region may survive the capture")
	}
	checkPartitionInvariants(t, b.Grid(), b.Partition())
}

func TestSuicideForbidden(t *testing.T) {
	b := newTestBoard(t, 5)

	play(t, b, "B1", Black)
	play(t, b, "A2", Black)

	before := boardFingerprint(b)
	v, _ := ParseVertex("A1", 5)
	_, err := b.PlayStone(v, White)
	require.ErrorIs(t, err, errors.ErrIllegalMove)
	// Пробная постановка откатывается бесследно.
	require.Equal(t, before, boardFingerprint(b))
}

func TestCaptureBeatsSuicide(t *testing.T) {
	b := newTestBoard(t, 5)

	// Белый A1 в углу, чёрные B1 и A2 вокруг: чёрному мешает белый,
	// но постановка в его последнее дыхание легальна, если снимает его.
	play(t, b, "A1", White)
	play(t, b, "B1", Black)
	rec := play(t, b, "A2", Black)
	require.Len(t, rec.Captured, 1)
	require.Equal(t, "A1", rec.Captured[0].String())
}

func TestKoRecapture(t *testing.T) {
	b := newTestBoard(t, 9)

	// Каноническое ко:
	//   чёрные: D5, E4, E6
	//   белые:  F4, F6, G5
	// Белый ставит E5 (глаз формы), чёрный бьёт его ходом F5 — ко.
	play(t, b, "D5", Black)
	play(t, b, "F4", White)
	play(t, b, "E4", Black)
	play(t, b, "F6", White)
	play(t, b, "E6", Black)
	play(t, b, "G5", White)
	play(t, b, "E5", White)

	rec := play(t, b, "F5", Black)
	require.Len(t, rec.Captured, 1)
	require.Equal(t, "E5", rec.Captured[0].String())

	// Немедленный обратный захват запрещён простым ко.
	v, _ := ParseVertex("E5", 9)
	_, err := b.PlayStone(v, White)
	require.ErrorIs(t, err, errors.ErrIllegalMove)

	// После хода в другом месте запрет снимается.
	play(t, b, "J9", White)
	play(t, b, "A1", Black)
	rec2, err := b.PlayStone(v, White)
	require.NoError(t, err)
	require.Len(t, rec2.Captured, 1)
	require.Equal(t, "F5", rec2.Captured[0].String())
}

func TestUndoRestoresExactState(t *testing.T) {
	b := newTestBoard(t, 5)

	play(t, b, "C3", White)
	play(t, b, "B3", Black)
	play(t, b, "D3", Black)
	play(t, b, "C2", Black)

	before := boardFingerprint(b)
	gen := b.Generation()

	rec := play(t, b, "C4", Black)
	require.Len(t, rec.Captured, 1)
	require.NotEqual(t, before, boardFingerprint(b))

	require.NoError(t, b.Undo(rec))
	require.Equal(t, before, boardFingerprint(b), "undo must restore occupancy and region boundaries")
	require.NotEqual(t, gen, b.Generation(), "undo is still a mutation for snapshot invalidation")
	checkPartitionInvariants(t, b.Grid(), b.Partition())
}

func TestUndoChainBackToEmptyBoard(t *testing.T) {
	b := newTestBoard(t, 9)
	empty := boardFingerprint(b)

	moves := []struct {
		s string
		c State
	}{
		{"E5", Black}, {"E4", White}, {"D4", Black}, {"F4", White}, {"F5", Black},
	}
	var recs []MoveRecord
	var prints []string
	for _, mv := range moves {
		prints = append(prints, boardFingerprint(b))
		recs = append(recs, play(t, b, mv.s, mv.c))
	}

	for i := len(recs) - 1; i >= 0; i-- {
		require.NoError(t, b.Undo(recs[i]))
		require.Equal(t, prints[i], boardFingerprint(b))
	}
	require.Equal(t, empty, boardFingerprint(b))
	require.Equal(t, 1, b.Partition().NumRegions())
}

func TestUndoPreconditions(t *testing.T) {
	b := newTestBoard(t, 9)
	v, _ := ParseVertex("E5", 9)
	err := b.Undo(MoveRecord{Vertex: v, Color: Black})
	require.ErrorIs(t, err, errors.ErrInvalidOperation)
}

func TestSetupStones(t *testing.T) {
	b := newTestBoard(t, 9)
	vs := []Vertex{}
	for _, s := range []string{"C3", "G7", "C7", "G3"} {
		v, err := ParseVertex(s, 9)
		require.NoError(t, err)
		vs = append(vs, v)
	}
	require.NoError(t, b.SetupStones(vs, Black))
	for _, v := range vs {
		st, err := b.StateAt(v)
		require.NoError(t, err)
		require.Equal(t, Black, st)
	}
	checkPartitionInvariants(t, b.Grid(), b.Partition())
}
