package errors

import "errors"

var (
	// Механика доски и партиции.
	ErrInvalidSize      = errors.New("unsupported board size")
	ErrInvalidOperation = errors.New("invalid board operation")
	ErrIllegalMove      = errors.New("illegal move")

	// Подсчёт очков.
	ErrScoringUnavailable = errors.New("scoring unavailable: inconsistent territory must be resolved")

	// Жизненный цикл партии.
	ErrInvalidTransition = errors.New("invalid game state transition")
	ErrNothingToUndo     = errors.New("nothing to undo")

	// Сервисный слой.
	ErrSessionNotFound  = errors.New("session was not found")
	ErrCreateGameFailed = errors.New("create game failed")
	ErrJoinGameFailed   = errors.New("join game failed")
	ErrGameNotFound     = errors.New("game not found")
	ErrInternal         = errors.New("internal error")
)
