package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goban/internal/domain/board"
	"goban/internal/errors"
	"goban/internal/statuses"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := &Game{
		Status:      statuses.StatusWaitOpponent,
		BoardSize:   9,
		Komi:        6.5,
		PlayerBlack: "alice",
		PlayerWhite: "bob",
	}
	return g
}

func TestStartRequiresBothPlayers(t *testing.T) {
	g := newTestGame(t)
	g.PlayerWhite = ""
	require.ErrorIs(t, g.Start(), errors.ErrInvalidTransition)
	require.Equal(t, statuses.StatusWaitOpponent, g.Status)

	g.PlayerWhite = "bob"
	require.NoError(t, g.Start())
	require.Equal(t, statuses.StatusActive, g.Status)
	require.Equal(t, "black", g.WhoIsNext)
	require.NotNil(t, g.Board)
	require.NotNil(t, g.StartedAt)
}

func TestStartTwiceFails(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())
	require.ErrorIs(t, g.Start(), errors.ErrInvalidTransition)
}

func TestHandicapSetupGivesWhiteTheMove(t *testing.T) {
	g := newTestGame(t)
	g.Handicap = []string{"C3", "G7"}
	require.NoError(t, g.Start())
	require.Equal(t, "white", g.WhoIsNext)

	for _, s := range g.Handicap {
		v, err := board.ParseVertex(s, g.BoardSize)
		require.NoError(t, err)
		st, err := g.Board.StateAt(v)
		require.NoError(t, err)
		require.Equal(t, board.Black, st)
	}
	// Форовые камни не являются ходами.
	require.Empty(t, g.Moves)
}

func TestTurnAlternation(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())

	_, err := g.PlayMove("white", "E5", false)
	require.ErrorIs(t, err, errors.ErrIllegalMove)

	m, err := g.PlayMove("black", "E5", false)
	require.NoError(t, err)
	require.Equal(t, "E5", m.Coordinates)
	require.Equal(t, "white", g.WhoIsNext)

	_, err = g.PlayMove("black", "C3", false)
	require.ErrorIs(t, err, errors.ErrIllegalMove)

	_, err = g.PlayMove("white", "C3", false)
	require.NoError(t, err)
	require.Len(t, g.Moves, 2)
}

func TestPlayMoveValidation(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())

	_, err := g.PlayMove("green", "E5", false)
	require.ErrorIs(t, err, errors.ErrInvalidOperation)

	_, err = g.PlayMove("black", "I5", false)
	require.ErrorIs(t, err, errors.ErrIllegalMove)

	require.NoError(t, g.Pause())
	_, err = g.PlayMove("black", "E5", false)
	require.ErrorIs(t, err, errors.ErrInvalidTransition)

	require.NoError(t, g.Resume())
	_, err = g.PlayMove("black", "E5", false)
	require.NoError(t, err)
}

func TestFourPassesEndTheGame(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())

	for i, c := range []string{"black", "white", "black"} {
		_, err := g.Pass(c)
		require.NoError(t, err, "pass %d", i)
		require.False(t, g.Ended())
	}
	_, err := g.Pass("white")
	require.NoError(t, err)
	require.True(t, g.Ended())
	require.Equal(t, statuses.ReasonPasses, g.EndReason)
	require.NotNil(t, g.EndedAt)

	_, err = g.Pass("black")
	require.ErrorIs(t, err, errors.ErrInvalidTransition)
}

func TestMoveResetsPassStreak(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())

	passes := []string{"black", "white", "black"}
	for _, c := range passes {
		_, err := g.Pass(c)
		require.NoError(t, err)
	}
	_, err := g.PlayMove("white", "E5", false)
	require.NoError(t, err)

	// Серия пасов прервана, счётчик начинается заново.
	for _, c := range []string{"black", "white", "black"} {
		_, err := g.Pass(c)
		require.NoError(t, err)
	}
	require.False(t, g.Ended())
	_, err = g.Pass("white")
	require.NoError(t, err)
	require.True(t, g.Ended())
}

func TestResignSetsResult(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())

	m, err := g.Resign("black")
	require.NoError(t, err)
	require.True(t, m.Resign)
	require.True(t, g.Ended())
	require.Equal(t, statuses.ReasonResignation, g.EndReason)
	require.Equal(t, "W+R", g.Result)
}

func TestUndoRestoresTurnAndBoard(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())

	_, err := g.PlayMove("black", "E5", false)
	require.NoError(t, err)
	_, err = g.PlayMove("white", "C3", false)
	require.NoError(t, err)

	undone, err := g.UndoLast()
	require.NoError(t, err)
	require.Equal(t, "C3", undone.Coordinates)
	require.Equal(t, "white", g.WhoIsNext)
	require.Len(t, g.Moves, 1)

	v, err := board.ParseVertex("C3", 9)
	require.NoError(t, err)
	st, err := g.Board.StateAt(v)
	require.NoError(t, err)
	require.Equal(t, board.Empty, st)

	// После отката белый может сыграть в другую точку.
	_, err = g.PlayMove("white", "G7", false)
	require.NoError(t, err)
}

func TestUndoPassRestoresStreak(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())

	for _, c := range []string{"black", "white", "black"} {
		_, err := g.Pass(c)
		require.NoError(t, err)
	}
	undone, err := g.UndoLast()
	require.NoError(t, err)
	require.True(t, undone.Pass)
	require.Equal(t, "black", g.WhoIsNext)

	// Три паса снова: два оставшихся плюс один новый — партия жива,
	// завершает её только четвёртый подряд.
	_, err = g.Pass("black")
	require.NoError(t, err)
	require.False(t, g.Ended())
	_, err = g.Pass("white")
	require.NoError(t, err)
	require.True(t, g.Ended())
}

func TestPassLiftsKoBan(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())

	setup := func(color board.State, coords ...string) {
		vs := make([]board.Vertex, 0, len(coords))
		for _, c := range coords {
			v, err := board.ParseVertex(c, g.BoardSize)
			require.NoError(t, err)
			vs = append(vs, v)
		}
		require.NoError(t, g.Board.SetupStones(vs, color))
	}
	setup(board.Black, "C2", "B3", "C4")
	setup(board.White, "D2", "E3", "D4", "C3")

	m, err := g.PlayMove("black", "D3", false)
	require.NoError(t, err)
	require.Equal(t, []string{"C3"}, m.Captured)

	// Немедленный обратный захват запрещён простым ко.
	_, err = g.PlayMove("white", "C3", false)
	require.ErrorIs(t, err, errors.ErrIllegalMove)

	// Запрет действует ровно один ход: пас его снимает.
	_, err = g.Pass("white")
	require.NoError(t, err)
	_, err = g.Pass("black")
	require.NoError(t, err)

	m, err = g.PlayMove("white", "C3", false)
	require.NoError(t, err)
	require.Equal(t, []string{"D3"}, m.Captured)
}

func TestUndoOnEmptyHistory(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())
	_, err := g.UndoLast()
	require.ErrorIs(t, err, errors.ErrNothingToUndo)
}

func TestEnterScoringAndEndGame(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start())

	require.NoError(t, g.EnterScoring())
	require.Equal(t, statuses.StatusScoring, g.Status)

	_, err := g.PlayMove("black", "E5", false)
	require.ErrorIs(t, err, errors.ErrInvalidTransition)

	require.NoError(t, g.EndGame(statuses.ReasonNormal))
	require.True(t, g.Ended())
	require.ErrorIs(t, g.EndGame(statuses.ReasonNormal), errors.ErrInvalidTransition)
}
