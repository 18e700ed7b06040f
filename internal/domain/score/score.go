package score

import (
	"fmt"
	"sort"

	"goban/internal/domain/board"
	"goban/internal/errors"
)

// Score — подсчёт очков по неподвижному снимку доски. Живая доска не
// мутируется: мёртвые камни учитываются в одноразовой оверлейной разметке,
// которая строится заново при каждом вычислении. Снимок несёт Generation
// доски; если доска с тех пор изменилась, результат подлежит отбросу.
type Score struct {
	snap *board.Snapshot
	komi float64
	dead map[int]bool

	capturedBlack int
	capturedWhite int
}

// Result — итог одного вычисления. Повторный вызов без промежуточных
// мутаций даёт идентичный результат.
type Result struct {
	TerritoryBlack int      `json:"territory_black"`
	TerritoryWhite int      `json:"territory_white"`
	StonesBlack    int      `json:"stones_black"`
	StonesWhite    int      `json:"stones_white"`
	CapturedBlack  int      `json:"captured_black"`
	CapturedWhite  int      `json:"captured_white"`
	DeadBlack      []string `json:"dead_black,omitempty"`
	DeadWhite      []string `json:"dead_white,omitempty"`
	TotalBlack     float64  `json:"total_black"`
	TotalWhite     float64  `json:"total_white"`
	Komi           float64  `json:"komi"`
	Inconsistent   bool     `json:"inconsistent"`
	Dame           []string `json:"dame,omitempty"` // спорная/ничейная территория
	Winner         string   `json:"winner,omitempty"`
	Margin         float64  `json:"margin"`
}

// String — человекочитаемый итог вида "B+3.5".
func (r Result) String() string {
	switch r.Winner {
	case board.Black.String():
		return fmt.Sprintf("B+%.1f", r.Margin)
	case board.White.String():
		return fmt.Sprintf("W+%.1f", r.Margin)
	default:
		return "draw"
	}
}

func New(snap *board.Snapshot, komi float64) *Score {
	return &Score{
		snap: snap,
		komi: komi,
		dead: make(map[int]bool),
	}
}

// Generation — поколение доски, на котором сделан снимок.
func (s *Score) Generation() uint64 { return s.snap.Generation }

// SetCaptures задаёт справочные счётчики снятых камней. На итог при
// подсчёте по площади они не влияют.
func (s *Score) SetCaptures(byBlack, byWhite int) {
	s.capturedBlack = byBlack
	s.capturedWhite = byWhite
}

// ToggleDeadStone переключает мёртвость всей группы, содержащей вершину.
// Группа снимается и возвращается целиком: пометить мёртвым полкамня нельзя.
func (s *Score) ToggleDeadStone(v board.Vertex) error {
	idx, err := s.index(v)
	if err != nil {
		return err
	}
	c := s.snap.States[idx]
	if c == board.Empty {
		return fmt.Errorf("%w: no stone at %s to mark dead", errors.ErrInvalidOperation, v)
	}

	group := s.floodGroup(idx, c)
	mark := !s.dead[idx]
	for _, gi := range group {
		if mark {
			s.dead[gi] = true
		} else {
			delete(s.dead, gi)
		}
	}
	return nil
}

// DeadStones — текущая разметка мёртвых камней.
func (s *Score) DeadStones() []board.Vertex {
	var vs []board.Vertex
	for idx := range s.dead {
		vs = append(vs, s.vertex(idx))
	}
	return vs
}

// Compute выполняет заливку территории по оверлею (снимок минус мёртвые
// камни) и собирает итог по правилам площади: камни на доске плюс
// территория, коми белым. Спорные регионы, граничащие с обоими цветами,
// не достаются никому и поднимают флаг Inconsistent.
func (s *Score) Compute() Result {
	size := s.snap.Size
	n := size * size

	overlay := make([]board.State, n)
	copy(overlay, s.snap.States)
	for idx := range s.dead {
		overlay[idx] = board.Empty
	}

	res := Result{
		Komi:          s.komi,
		CapturedBlack: s.capturedBlack,
		CapturedWhite: s.capturedWhite,
	}

	for idx := range s.dead {
		v := s.vertex(idx).String()
		if s.snap.States[idx] == board.Black {
			res.DeadBlack = append(res.DeadBlack, v)
		} else {
			res.DeadWhite = append(res.DeadWhite, v)
		}
	}
	sort.Strings(res.DeadBlack)
	sort.Strings(res.DeadWhite)

	visited := make([]bool, n)
	for start := 0; start < n; start++ {
		switch overlay[start] {
		case board.Black:
			res.StonesBlack++
			continue
		case board.White:
			res.StonesWhite++
			continue
		}
		if visited[start] {
			continue
		}

		// Заливка одного пустого региона с накоплением граничащих цветов.
		var region []int
		borders := [2]bool{} // black, white
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			region = append(region, idx)
			for _, nb := range s.neighbors(idx) {
				switch overlay[nb] {
				case board.Black:
					borders[0] = true
				case board.White:
					borders[1] = true
				default:
					if !visited[nb] {
						visited[nb] = true
						stack = append(stack, nb)
					}
				}
			}
		}

		switch {
		case borders[0] && !borders[1]:
			res.TerritoryBlack += len(region)
		case borders[1] && !borders[0]:
			res.TerritoryWhite += len(region)
		default:
			// Обоим или никому: владельца не угадываем.
			if borders[0] && borders[1] {
				res.Inconsistent = true
			}
			for _, idx := range region {
				res.Dame = append(res.Dame, s.vertex(idx).String())
			}
		}
	}

	res.TotalBlack = float64(res.StonesBlack + res.TerritoryBlack)
	res.TotalWhite = float64(res.StonesWhite+res.TerritoryWhite) + s.komi

	switch {
	case res.TotalBlack > res.TotalWhite:
		res.Winner = board.Black.String()
		res.Margin = res.TotalBlack - res.TotalWhite
	case res.TotalWhite > res.TotalBlack:
		res.Winner = board.White.String()
		res.Margin = res.TotalWhite - res.TotalBlack
	}
	return res
}

// FinalResult возвращает итог, пригодный для автоматического завершения
// партии. Пока остаётся спорная территория, возвращается
// ErrScoringUnavailable: вызывающий даёт игроку разрешить спор ручными
// отметками мёртвых камней и пересчитать.
func (s *Score) FinalResult() (Result, error) {
	res := s.Compute()
	if res.Inconsistent {
		return res, errors.ErrScoringUnavailable
	}
	return res, nil
}

func (s *Score) index(v board.Vertex) (int, error) {
	if v.Col < 0 || v.Col >= s.snap.Size || v.Row < 0 || v.Row >= s.snap.Size {
		return -1, fmt.Errorf("%w: vertex %s is outside the snapshot", errors.ErrInvalidOperation, v)
	}
	return v.Row*s.snap.Size + v.Col, nil
}

func (s *Score) vertex(idx int) board.Vertex {
	return board.Vertex{Col: idx % s.snap.Size, Row: idx / s.snap.Size}
}

func (s *Score) neighbors(idx int) []int {
	size := s.snap.Size
	col, row := idx%size, idx/size
	nbs := make([]int, 0, 4)
	if col > 0 {
		nbs = append(nbs, idx-1)
	}
	if col < size-1 {
		nbs = append(nbs, idx+1)
	}
	if row > 0 {
		nbs = append(nbs, idx-size)
	}
	if row < size-1 {
		nbs = append(nbs, idx+size)
	}
	return nbs
}

func (s *Score) floodGroup(start int, c board.State) []int {
	visited := map[int]bool{start: true}
	group := []int{start}
	stack := []int{start}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range s.neighbors(idx) {
			if !visited[nb] && s.snap.States[nb] == c {
				visited[nb] = true
				group = append(group, nb)
				stack = append(stack, nb)
			}
		}
	}
	return group
}
