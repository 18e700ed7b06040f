package board

import (
	"fmt"

	"goban/internal/errors"
)

// Point — одно пересечение доски. Соседи хранятся индексами в арене точек
// (-1, если сосед за краём), регион — хэндлом в Partition.
type Point struct {
	Vertex Vertex
	State  State
	Region RegionID
	Left   int
	Right  int
	Above  int
	Below  int
	Star   bool
}

// Grid строит полный набор точек с прошитыми соседями за O(N) и после
// конструктора неизменен, кроме полей State и Region, которыми владеют
// Board и Partition.
type Grid struct {
	size   int
	points []Point
}

func NewGrid(size int) (*Grid, error) {
	if !isSupportedSize(size) {
		return nil, fmt.Errorf("%w: board size %d", errors.ErrInvalidSize, size)
	}

	g := &Grid{
		size:   size,
		points: make([]Point, size*size),
	}

	stars := starLines(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			idx := row*size + col
			p := &g.points[idx]
			p.Vertex = Vertex{Col: col, Row: row}
			p.Region = NoRegion
			p.Left, p.Right, p.Above, p.Below = -1, -1, -1, -1
			if col > 0 {
				p.Left = idx - 1
			}
			if col < size-1 {
				p.Right = idx + 1
			}
			if row < size-1 {
				p.Above = idx + size
			}
			if row > 0 {
				p.Below = idx - size
			}
			p.Star = stars[col] && stars[row]
		}
	}
	return g, nil
}

func isSupportedSize(size int) bool {
	for _, s := range SupportedSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Хоси — декоративные отметки: на больших досках девять, на малых углы и центр.
func starLines(size int) map[int]bool {
	offset := 2
	if size >= 13 {
		offset = 3
	}
	lines := map[int]bool{offset: true, size - 1 - offset: true}
	if size >= 13 || size == 9 || size == 7 {
		lines[size/2] = true
	}
	return lines
}

func (g *Grid) Size() int { return g.size }

// NumPoints возвращает размер арены точек.
func (g *Grid) NumPoints() int { return len(g.points) }

// Index переводит вершину в индекс арены.
func (g *Grid) Index(v Vertex) (int, error) {
	if !v.inBounds(g.size) {
		return -1, fmt.Errorf("%w: vertex %s is outside the grid", errors.ErrInvalidOperation, v)
	}
	return v.Row*g.size + v.Col, nil
}

// PointAt отдаёт точку по индексу арены. Индекс должен быть валиден.
func (g *Grid) PointAt(idx int) *Point {
	return &g.points[idx]
}

// At отдаёт точку по вершине.
func (g *Grid) At(v Vertex) (*Point, error) {
	idx, err := g.Index(v)
	if err != nil {
		return nil, err
	}
	return &g.points[idx], nil
}

// AtString отдаёт точку по канонической форме вершины ("D4").
func (g *Grid) AtString(s string) (*Point, error) {
	v, err := ParseVertex(s, g.size)
	if err != nil {
		return nil, err
	}
	return g.At(v)
}

// Neighbors записывает в buf индексы существующих соседей точки и возвращает
// срез заполненной части. Буфер позволяет обходить соседей без аллокаций.
func (g *Grid) Neighbors(idx int, buf *[4]int) []int {
	p := &g.points[idx]
	n := 0
	for _, nb := range [4]int{p.Left, p.Right, p.Above, p.Below} {
		if nb >= 0 {
			buf[n] = nb
			n++
		}
	}
	return buf[:n]
}
