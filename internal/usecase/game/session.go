package game

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"goban/internal/domain/board"
	"goban/internal/domain/game"
	"goban/internal/domain/score"
	"goban/internal/errors"
	"goban/internal/statuses"
)

// Session — живая партия в памяти процесса. Все команды проходят через
// mu, так что доска и цепочка ходов всегда меняются строго по одной
// команде за раз; читатели получают слепки и не держат блокировку.
type Session struct {
	mu    sync.Mutex
	Game  *game.Game
	score *score.Score
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// PlayStone ставит камень и возвращает записанный ход.
func (s *Session) PlayStone(color, coordinates string, byBot bool) (game.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.PlayMove(color, coordinates, byBot)
}

func (s *Session) Pass(color string) (game.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.Pass(color)
}

func (s *Session) Resign(color string) (game.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.Resign(color)
}

func (s *Session) Undo() (game.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.UndoLast()
}

// EnterScoring переводит партию в режим подсчёта и снимает слепок доски.
func (s *Session) EnterScoring() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Game.EnterScoring(); err != nil {
		return err
	}
	sc := score.New(s.Game.Board.Snapshot(), s.Game.Komi)
	byBlack, byWhite := s.Game.CapturedCounts()
	sc.SetCaptures(byBlack, byWhite)
	s.score = sc
	return nil
}

// ToggleDead переключает мёртвую группу и возвращает пересчитанный итог.
func (s *Session) ToggleDead(coordinates string) (score.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, err := s.currentScore()
	if err != nil {
		return score.Result{}, err
	}
	v, err := board.ParseVertex(coordinates, s.Game.BoardSize)
	if err != nil {
		return score.Result{}, err
	}
	if err := sc.ToggleDeadStone(v); err != nil {
		return score.Result{}, err
	}
	return sc.Compute(), nil
}

// Score возвращает текущий расклад подсчёта без финализации.
func (s *Session) Score() (score.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, err := s.currentScore()
	if err != nil {
		return score.Result{}, err
	}
	return sc.Compute(), nil
}

// Finalize завершает партию подсчитанным результатом. Если границы
// территорий всё ещё спорны, партия остаётся в подсчёте.
func (s *Session) Finalize(log *zap.SugaredLogger) (score.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, err := s.currentScore()
	if err != nil {
		return score.Result{}, err
	}
	res, err := sc.FinalResult()
	if err != nil {
		return score.Result{}, err
	}
	if err := s.Game.EndGame(statuses.ReasonNormal); err != nil {
		return score.Result{}, err
	}
	s.Game.Result = res.String()
	log.Infow("партия завершена подсчётом",
		"game", s.Game.GameKeyPublic, "result", s.Game.Result)
	return res, nil
}

// currentScore проверяет, что слепок подсчёта не протух: любой ход после
// EnterScoring делает его недействительным.
func (s *Session) currentScore() (*score.Score, error) {
	if s.score == nil {
		return nil, fmt.Errorf("%w: scoring has not been started", errors.ErrInvalidOperation)
	}
	if s.score.Generation() != s.Game.Board.Generation() {
		return nil, fmt.Errorf("%w: board changed since scoring snapshot", errors.ErrInvalidOperation)
	}
	return s.score, nil
}

// SessionRegistry держит живые партии по секретному ключу. Партия,
// которой нет в реестре, поднимается из документа переигрыванием ходов.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

func (r *SessionRegistry) Get(secretKey string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[secretKey]
	return s, ok
}

// Attach регистрирует партию, при необходимости восстанавливая доску.
func (r *SessionRegistry) Attach(g *game.Game) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[g.GameKeySecret]; ok {
		return s, nil
	}
	if g.Board == nil {
		if err := g.Rehydrate(); err != nil {
			return nil, err
		}
	}
	s := &Session{Game: g}
	r.sessions[g.GameKeySecret] = s
	return s, nil
}

func (r *SessionRegistry) Remove(secretKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, secretKey)
}
