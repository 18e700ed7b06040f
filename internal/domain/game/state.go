package game

import (
	"fmt"
	"time"

	"goban/internal/domain/board"
	"goban/internal/errors"
	"goban/internal/statuses"
)

// Машина состояний партии: wait_opponent → active → (paused ⇄ active) →
// completed[reason]. Все мутации идут через эти методы и должны быть
// сериализованы владельцем партии (см. usecase/game.session).

// Start переводит партию в active, строит доску и ставит форовые камни.
func (g *Game) Start() error {
	if g.Status != statuses.StatusWaitOpponent {
		return fmt.Errorf("%w: cannot start game in status %q", errors.ErrInvalidTransition, g.Status)
	}
	if g.PlayerBlack == "" || g.PlayerWhite == "" {
		return fmt.Errorf("%w: both players must join before start", errors.ErrInvalidTransition)
	}

	b, err := board.NewBoard(g.BoardSize)
	if err != nil {
		return err
	}
	if len(g.Handicap) > 0 {
		vs := make([]board.Vertex, 0, len(g.Handicap))
		for _, s := range g.Handicap {
			v, err := board.ParseVertex(s, g.BoardSize)
			if err != nil {
				return err
			}
			vs = append(vs, v)
		}
		if err := b.SetupStones(vs, board.Black); err != nil {
			return err
		}
	}

	g.Board = b
	g.records = g.records[:0]
	g.passStreak = 0
	g.Status = statuses.StatusActive
	g.WhoIsNext = board.Black.String()
	if len(g.Handicap) > 0 {
		// При форе первым ходит белый.
		g.WhoIsNext = board.White.String()
	}
	now := time.Now()
	g.StartedAt = &now
	return nil
}

// Rehydrate восстанавливает живую доску из сохранённой цепочки ходов.
// Используется после загрузки партии из базы: документ хранит только
// Moves, доска переигрывается заново.
func (g *Game) Rehydrate() error {
	if g.Status == statuses.StatusWaitOpponent {
		return nil
	}

	b, err := board.NewBoard(g.BoardSize)
	if err != nil {
		return err
	}
	if len(g.Handicap) > 0 {
		vs := make([]board.Vertex, 0, len(g.Handicap))
		for _, s := range g.Handicap {
			v, err := board.ParseVertex(s, g.BoardSize)
			if err != nil {
				return err
			}
			vs = append(vs, v)
		}
		if err := b.SetupStones(vs, board.Black); err != nil {
			return err
		}
	}

	g.records = make([]board.MoveRecord, 0, len(g.Moves))
	for _, m := range g.Moves {
		if !m.IsBoardMove() {
			b.ClearKo()
			g.records = append(g.records, board.MoveRecord{})
			continue
		}
		c, err := board.ParseState(m.Color)
		if err != nil {
			return err
		}
		v, err := board.ParseVertex(m.Coordinates, g.BoardSize)
		if err != nil {
			return err
		}
		rec, err := b.PlayStone(v, c)
		if err != nil {
			return fmt.Errorf("replay of move %s %s: %w", m.Color, m.Coordinates, err)
		}
		g.records = append(g.records, rec)
	}

	g.Board = b
	g.passStreak = trailingPasses(g.Moves)
	return nil
}

// CapturedCounts возвращает число пленных, снятых каждым цветом за партию.
func (g *Game) CapturedCounts() (byBlack, byWhite int) {
	for _, m := range g.Moves {
		if m.Color == board.Black.String() {
			byBlack += len(m.Captured)
		} else {
			byWhite += len(m.Captured)
		}
	}
	return byBlack, byWhite
}

// Pause приостанавливает партию.
func (g *Game) Pause() error {
	if g.Status != statuses.StatusActive {
		return fmt.Errorf("%w: cannot pause game in status %q", errors.ErrInvalidTransition, g.Status)
	}
	g.Status = statuses.StatusPaused
	return nil
}

// Resume возвращает партию из paused в active.
func (g *Game) Resume() error {
	if g.Status != statuses.StatusPaused {
		return fmt.Errorf("%w: cannot resume game in status %q", errors.ErrInvalidTransition, g.Status)
	}
	g.Status = statuses.StatusActive
	return nil
}

// PlayMove ставит камень за color и дописывает ход в хвост цепочки.
// Возвращает добавленный ход со списком снятых точек.
func (g *Game) PlayMove(color string, coordinates string, byBot bool) (Move, error) {
	c, err := g.turnColor(color)
	if err != nil {
		return Move{}, err
	}
	v, err := board.ParseVertex(coordinates, g.BoardSize)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", errors.ErrIllegalMove, err)
	}

	rec, err := g.Board.PlayStone(v, c)
	if err != nil {
		return Move{}, err
	}

	m := newStoneMove(rec, byBot)
	g.Moves = append(g.Moves, m)
	g.records = append(g.records, rec)
	g.passStreak = 0
	g.WhoIsNext = c.Opponent().String()
	return m, nil
}

// Pass пропускает ход. Четыре паса подряд завершают партию.
func (g *Game) Pass(color string) (Move, error) {
	c, err := g.turnColor(color)
	if err != nil {
		return Move{}, err
	}

	m := Move{Color: c.String(), Pass: true}
	g.Moves = append(g.Moves, m)
	g.records = append(g.records, board.MoveRecord{})
	g.Board.ClearKo()
	g.passStreak++
	g.WhoIsNext = c.Opponent().String()

	if g.passStreak >= 4 {
		g.end(statuses.ReasonPasses)
	}
	return m, nil
}

// Resign завершает партию сдачей color.
func (g *Game) Resign(color string) (Move, error) {
	c, err := board.ParseState(color)
	if err != nil || c == board.Empty {
		return Move{}, fmt.Errorf("%w: bad color %q", errors.ErrInvalidOperation, color)
	}
	if g.Status != statuses.StatusActive && g.Status != statuses.StatusScoring {
		return Move{}, fmt.Errorf("%w: cannot resign in status %q", errors.ErrInvalidTransition, g.Status)
	}

	m := Move{Color: c.String(), Resign: true}
	g.Moves = append(g.Moves, m)
	g.records = append(g.records, board.MoveRecord{})
	g.end(statuses.ReasonResignation)
	g.Result = fmt.Sprintf("%s+R", upperInitial(c.Opponent()))
	return m, nil
}

// UndoLast отцепляет хвостовой ход и откатывает доску. Пас и сдача доску не
// трогали, для них откатывается только цепочка.
func (g *Game) UndoLast() (Move, error) {
	if g.Status != statuses.StatusActive && g.Status != statuses.StatusPaused {
		return Move{}, fmt.Errorf("%w: cannot undo in status %q", errors.ErrInvalidTransition, g.Status)
	}
	if len(g.Moves) == 0 {
		return Move{}, errors.ErrNothingToUndo
	}

	last := g.Moves[len(g.Moves)-1]
	rec := g.records[len(g.records)-1]
	if last.IsBoardMove() {
		if err := g.Board.Undo(rec); err != nil {
			return Move{}, err
		}
	}
	g.Moves = g.Moves[:len(g.Moves)-1]
	g.records = g.records[:len(g.records)-1]
	g.WhoIsNext = last.Color
	g.passStreak = trailingPasses(g.Moves)
	return last, nil
}

// EnterScoring переводит активную партию в режим подсчёта.
func (g *Game) EnterScoring() error {
	if g.Status != statuses.StatusActive {
		return fmt.Errorf("%w: cannot score game in status %q", errors.ErrInvalidTransition, g.Status)
	}
	g.Status = statuses.StatusScoring
	return nil
}

// EndGame завершает партию с внешним вердиктом (время, договорённость).
func (g *Game) EndGame(reason string) error {
	if g.Status == statuses.StatusCompleted {
		return fmt.Errorf("%w: game already completed", errors.ErrInvalidTransition)
	}
	g.end(reason)
	return nil
}

// Ended сообщает, завершена ли партия.
func (g *Game) Ended() bool { return g.Status == statuses.StatusCompleted }

func (g *Game) end(reason string) {
	g.Status = statuses.StatusCompleted
	g.EndReason = reason
	now := time.Now()
	g.EndedAt = &now
}

// turnColor валидирует цвет, статус партии и очерёдность.
func (g *Game) turnColor(color string) (board.State, error) {
	c, err := board.ParseState(color)
	if err != nil || c == board.Empty {
		return board.Empty, fmt.Errorf("%w: bad color %q", errors.ErrInvalidOperation, color)
	}
	if g.Status != statuses.StatusActive {
		return board.Empty, fmt.Errorf("%w: game is %q, not active", errors.ErrInvalidTransition, g.Status)
	}
	if g.WhoIsNext != "" && g.WhoIsNext != c.String() {
		return board.Empty, fmt.Errorf("%w: it is %s's turn", errors.ErrIllegalMove, g.WhoIsNext)
	}
	return c, nil
}

func trailingPasses(moves []Move) int {
	n := 0
	for i := len(moves) - 1; i >= 0; i-- {
		if !moves[i].Pass {
			break
		}
		n++
	}
	return n
}

func upperInitial(c board.State) string {
	if c == board.White {
		return "W"
	}
	return "B"
}
