package game

import (
	"time"

	"github.com/gorilla/websocket"

	"goban/internal/domain/board"
)

type Game struct {
	Users         []*GameUser `json:"users" bson:"users"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	StartedAt     *time.Time  `json:"started_at,omitempty" bson:"started_at,omitempty"`
	EndedAt       *time.Time  `json:"ended_at,omitempty" bson:"ended_at,omitempty"`
	Status        string      `json:"status" bson:"status"`
	EndReason     string      `json:"end_reason,omitempty" bson:"end_reason,omitempty"`
	BoardSize     int         `json:"board_size" bson:"board_size"`
	GameKeySecret string      `json:"game_key" bson:"game_key"` // уникальный ключ
	GameKeyPublic string      `json:"game_key_public" bson:"game_key_public"`
	Moves         []Move      `json:"moves" bson:"moves"`
	WhoIsNext     string      `json:"who_is_next" bson:"who_is_next"` // color
	PlayerBlack   string      `json:"player_black" bson:"player_black"`
	PlayerWhite   string      `json:"player_white" bson:"player_white"`
	Komi          float64     `json:"komi" bson:"komi"`
	Handicap      []string    `json:"handicap,omitempty" bson:"handicap,omitempty"`
	Result        string      `json:"result,omitempty" bson:"result,omitempty"`
	Sgf           string      `json:"sgf,omitempty" bson:"-"`
	BoardStates   []int       `json:"board_states,omitempty" bson:"-"` // слепок занятости для наблюдателя

	PlayerBlackWS *websocket.Conn `json:"-" bson:"-"`
	PlayerWhiteWS *websocket.Conn `json:"-" bson:"-"`

	// Живое состояние: доска и записи ходов для отката. В базу не уходит,
	// партия восстанавливается переигрыванием Moves.
	Board      *board.Board `json:"-" bson:"-"`
	records    []board.MoveRecord
	passStreak int
}

type GameUser struct {
	ID     string          `json:"id" bson:"id"`
	Role   string          `json:"role" bson:"role"`
	Color  string          `json:"color" bson:"color"`
	Rating float64         `json:"rating" bson:"rating"`
	Score  float64         `json:"score" bson:"score"`
	WS     *websocket.Conn `json:"-" bson:"-"`
}

type CreateGameRequest struct {
	BoardSize      int      `json:"board_size"`
	Komi           float64  `json:"komi"`
	Handicap       []string `json:"handicap,omitempty"`
	IsCreatorBlack bool     `json:"is_creator_black"`
}

type GameCreateResponse struct {
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`
}

type GameJoinRequest struct {
	GameKey string `json:"game_key" bson:"game_key"`
	UserID  string `json:"user_id" bson:"user_id"`
	Role    string `json:"role" bson:"role"`
}

// PositionRequest — позиция для анализа движком: размер, коми и цепочка
// сыгранных ходов.
type PositionRequest struct {
	BoardSize int     `json:"board_size"`
	Komi      float64 `json:"komi"`
	Moves     []Move  `json:"moves"`
}

// MoveRequest — команда игрока, приходящая по вебсокету или REST.
// Ровно одно из полей Pass/Resign/Undo может быть взведено; иначе это
// постановка камня в Coordinates.
type MoveRequest struct {
	GameKey     string `json:"game_key"`
	Color       string `json:"color"`
	Coordinates string `json:"coordinates,omitempty"`
	Pass        bool   `json:"pass,omitempty"`
	Resign      bool   `json:"resign,omitempty"`
	Undo        bool   `json:"undo,omitempty"`
}

type GameStateResponse struct {
	Move   Move        `json:"move"`
	SGF    string      `json:"sgf"`
	Status string      `json:"status"`
	Score  interface{} `json:"score,omitempty"`
}
