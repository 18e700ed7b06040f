package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Поддерживаемые размеры доски (всегда нечётные).
var SupportedSizes = []int{5, 7, 9, 11, 13, 15, 17, 19}

// Буквы колонок по конвенции GTP: I пропускается, чтобы не путать с 1.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// SizeSupported сообщает, входит ли size в список поддерживаемых.
func SizeSupported(size int) bool {
	for _, s := range SupportedSizes {
		if s == size {
			return true
		}
	}
	return false
}

// State — состояние пункта доски.
type State uint8

const (
	Empty State = iota
	Black
	White
)

func (s State) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Opponent возвращает противоположный цвет. Для Empty возвращает Empty.
func (s State) Opponent() State {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func ParseState(s string) (State, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	case "empty", ".":
		return Empty, nil
	}
	return Empty, fmt.Errorf("unknown stone color %q", s)
}

// Vertex — координата пересечения. Col и Row нулевые, Row растёт снизу вверх,
// так что каноническая форма совпадает с GTP: A1 — левый нижний угол.
type Vertex struct {
	Col int
	Row int
}

func (v Vertex) String() string {
	if v.Col < 0 || v.Col >= len(columnLetters) || v.Row < 0 {
		return "??"
	}
	return fmt.Sprintf("%c%d", columnLetters[v.Col], v.Row+1)
}

// ParseVertex разбирает каноническую форму ("D4", "Q16"). Размер доски нужен
// только для проверки границ.
func ParseVertex(s string, size int) (Vertex, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Vertex{}, fmt.Errorf("invalid vertex %q", s)
	}
	col := strings.IndexByte(columnLetters, s[0])
	if col < 0 {
		return Vertex{}, fmt.Errorf("invalid vertex column in %q", s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Vertex{}, fmt.Errorf("invalid vertex row in %q", s)
	}
	v := Vertex{Col: col, Row: row - 1}
	if !v.inBounds(size) {
		return Vertex{}, fmt.Errorf("vertex %q is outside a %dx%d board", s, size, size)
	}
	return v, nil
}

func (v Vertex) inBounds(size int) bool {
	return v.Col >= 0 && v.Col < size && v.Row >= 0 && v.Row < size
}
