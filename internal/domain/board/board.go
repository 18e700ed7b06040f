package board

import (
	"fmt"

	"goban/internal/errors"
)

// MoveRecord — результат успешной постановки камня. Содержит всё, что нужно
// для точного отката: снятые камни и состояние правила ко до хода.
type MoveRecord struct {
	Vertex   Vertex
	Color    State
	Captured []Vertex

	prevKo int
}

// RepetitionRule — подключаемая политика повторений. Ядро гарантирует только
// механическую корректность постановки/снятия/отката; какое именно правило
// ко действует, решает политика.
type RepetitionRule interface {
	// Allows сообщает, разрешает ли политика ход цвета color в точку idx.
	Allows(b *Board, idx int, color State) bool
}

// SimpleKo — политика по умолчанию: запрещён немедленный обратный захват
// единственного камня.
type SimpleKo struct{}

func (SimpleKo) Allows(b *Board, idx int, _ State) bool {
	return idx != b.koIdx
}

// NoRepetitionRule разрешает любые повторения.
type NoRepetitionRule struct{}

func (NoRepetitionRule) Allows(*Board, int, State) bool { return true }

// Board объединяет сетку и партицию и отвечает за легальность ходов:
// занятость, самоубийство и консультацию политики повторений. Все мутации
// должны выполняться одним логическим владельцем, без параллелизма.
type Board struct {
	grid  *Grid
	part  *Partition
	rule  RepetitionRule
	koIdx int
	gen   uint64
}

func NewBoard(size int) (*Board, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	part := NewPartition(grid)
	part.AssignInitialPartition()
	return &Board{
		grid:  grid,
		part:  part,
		rule:  SimpleKo{},
		koIdx: -1,
	}, nil
}

func (b *Board) Grid() *Grid           { return b.grid }
func (b *Board) Partition() *Partition { return b.part }
func (b *Board) Size() int             { return b.grid.Size() }
func (b *Board) SetRule(r RepetitionRule) {
	if r == nil {
		r = NoRepetitionRule{}
	}
	b.rule = r
}

// Generation растёт при каждой мутации доски. Снимок для подсчёта очков,
// сделанный при другом значении, считается устаревшим.
func (b *Board) Generation() uint64 { return b.gen }

// KoIndex — индекс точки, запрещённой простым ко, либо -1.
func (b *Board) KoIndex() int { return b.koIdx }

// ClearKo снимает запрет ко. Запрет действует ровно один ход, поэтому
// пас между захватом и обратным захватом снимает его.
func (b *Board) ClearKo() { b.koIdx = -1 }

// StateAt возвращает занятость пересечения.
func (b *Board) StateAt(v Vertex) (State, error) {
	pt, err := b.grid.At(v)
	if err != nil {
		return Empty, err
	}
	return pt.State, nil
}

// PlayStone проверяет легальность, ставит камень и снимает группы противника,
// оставшиеся без дыханий. Возвращает запись хода со списком снятых точек
// (возможно пустым).
func (b *Board) PlayStone(v Vertex, color State) (MoveRecord, error) {
	idx, err := b.grid.Index(v)
	if err != nil {
		return MoveRecord{}, err
	}
	if color != Black && color != White {
		return MoveRecord{}, fmt.Errorf("%w: cannot play %s", errors.ErrInvalidOperation, color)
	}
	if b.grid.PointAt(idx).State != Empty {
		return MoveRecord{}, fmt.Errorf("%w: point %s is occupied", errors.ErrIllegalMove, v)
	}
	if !b.rule.Allows(b, idx, color) {
		return MoveRecord{}, fmt.Errorf("%w: repetition rule forbids %s", errors.ErrIllegalMove, v)
	}

	candidates, err := b.part.PlaceStone(idx, color)
	if err != nil {
		return MoveRecord{}, err
	}

	var captured []Vertex
	if len(candidates) == 0 {
		if own := b.part.RegionOf(idx); own.Liberties() == 0 {
			// Самоубийство: откатываем пробную постановку.
			if rmErr := b.part.RemoveStones([]int{idx}); rmErr != nil {
				return MoveRecord{}, rmErr
			}
			return MoveRecord{}, fmt.Errorf("%w: playing %s would be suicide", errors.ErrIllegalMove, v)
		}
	} else {
		var capturedIdx []int
		for _, r := range candidates {
			capturedIdx = append(capturedIdx, r.Points()...)
		}
		for _, ci := range capturedIdx {
			captured = append(captured, b.grid.PointAt(ci).Vertex)
		}
		if err := b.part.RemoveStones(capturedIdx); err != nil {
			return MoveRecord{}, err
		}
	}

	rec := MoveRecord{
		Vertex:   v,
		Color:    color,
		Captured: captured,
		prevKo:   b.koIdx,
	}

	b.koIdx = -1
	if len(captured) == 1 {
		if own := b.part.RegionOf(idx); own.Size() == 1 && own.Liberties() == 1 {
			capIdx, _ := b.grid.Index(captured[0])
			b.koIdx = capIdx
		}
	}
	b.gen++
	return rec, nil
}

// Undo восстанавливает занятость и границы регионов ровно в предходовое
// состояние, проигрывая обратные операции партиции: постановленный камень
// снимается, снятые ставятся обратно. Прежняя конфигурация полностью
// известна из записи хода, пересчитывать её с нуля не нужно.
func (b *Board) Undo(rec MoveRecord) error {
	idx, err := b.grid.Index(rec.Vertex)
	if err != nil {
		return err
	}
	if b.grid.PointAt(idx).State != rec.Color {
		return fmt.Errorf("%w: point %s does not hold a %s stone", errors.ErrInvalidOperation, rec.Vertex, rec.Color)
	}

	if err := b.part.RemoveStones([]int{idx}); err != nil {
		return err
	}
	opp := rec.Color.Opponent()
	for _, cv := range rec.Captured {
		ci, err := b.grid.Index(cv)
		if err != nil {
			return err
		}
		// Возвращаемая группа могла временно остаться без дыханий, это не
		// ошибка: кандидатов на снятие здесь никто не снимает.
		if _, err := b.part.PlaceStone(ci, opp); err != nil {
			return err
		}
	}

	b.koIdx = rec.prevKo
	b.gen++
	return nil
}

// SetupStones ставит форовые камни до начала игры, без проверки правил
// повторения и без снятий. Точки должны быть пусты.
func (b *Board) SetupStones(vs []Vertex, color State) error {
	for _, v := range vs {
		idx, err := b.grid.Index(v)
		if err != nil {
			return err
		}
		if _, err := b.part.PlaceStone(idx, color); err != nil {
			return err
		}
		b.gen++
	}
	return nil
}

// Snapshot — неизменяемая копия занятости для фонового подсчёта очков.
// Живая доска может продолжать принимать ходы; результат подсчёта по
// снимку с чужим Generation должен быть отброшен.
type Snapshot struct {
	Size       int
	States     []State
	Generation uint64
}

func (b *Board) Snapshot() *Snapshot {
	states := make([]State, b.grid.NumPoints())
	for i := range states {
		states[i] = b.grid.PointAt(i).State
	}
	return &Snapshot{
		Size:       b.grid.Size(),
		States:     states,
		Generation: b.gen,
	}
}
