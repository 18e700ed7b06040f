package game

import "goban/internal/domain/board"

// Move — один узел канонической истории партии. Цепочка не ветвится:
// только добавление в хвост и усечение хвоста при откате.
// @name Move
type Move struct {
	Color       string   `json:"color" bson:"color"`
	Coordinates string   `json:"coordinates" bson:"coordinates"` // "", если пас или сдача
	Pass        bool     `json:"pass,omitempty" bson:"pass,omitempty"`
	Resign      bool     `json:"resign,omitempty" bson:"resign,omitempty"`
	Captured    []string `json:"captured,omitempty" bson:"captured,omitempty"`
	ByBot       bool     `json:"by_bot,omitempty" bson:"by_bot,omitempty"`
}

// IsBoardMove сообщает, меняет ли ход доску.
func (m Move) IsBoardMove() bool { return !m.Pass && !m.Resign }

func newStoneMove(rec board.MoveRecord, byBot bool) Move {
	m := Move{
		Color:       rec.Color.String(),
		Coordinates: rec.Vertex.String(),
		ByBot:       byBot,
	}
	for _, v := range rec.Captured {
		m.Captured = append(m.Captured, v.String())
	}
	return m
}
