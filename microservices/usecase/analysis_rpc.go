package usecase

import (
	"context"
	"strings"

	analysisRPC "goban/microservices/proto"
)

type EngineStore interface {
	DeadStones(ctx context.Context, boardSize int, komi float64, moves [][2]string) ([]string, error)
	GenerateMove(ctx context.Context, boardSize int, komi float64, moves [][2]string, color string) (string, error)
}

type AnalysisUseCase struct {
	store EngineStore
	analysisRPC.UnimplementedAnalysisServiceServer
}

func NewAnalysisUseCase(store EngineStore) *AnalysisUseCase {
	return &AnalysisUseCase{
		store: store,
	}
}

// SuggestDeadStones спрашивает движок, какие камни позиции мертвы.
func (a *AnalysisUseCase) SuggestDeadStones(ctx context.Context, in *analysisRPC.Position) (*analysisRPC.DeadStones, error) {
	dead, err := a.store.DeadStones(ctx, int(in.BoardSize), in.Komi, convertMoves(in.Moves))
	if err != nil {
		return nil, err
	}
	return &analysisRPC.DeadStones{Coordinates: dead}, nil
}

// GenerateMove просит движок сыграть за сторону, чья очередь хода.
func (a *AnalysisUseCase) GenerateMove(ctx context.Context, in *analysisRPC.Position) (*analysisRPC.BotMove, error) {
	color := nextColor(in.Moves)
	coord, err := a.store.GenerateMove(ctx, int(in.BoardSize), in.Komi, convertMoves(in.Moves), color)
	if err != nil {
		return nil, err
	}

	resp := &analysisRPC.BotMove{}
	if strings.EqualFold(coord, "pass") || strings.EqualFold(coord, "resign") {
		resp.Pass = true
	} else {
		resp.Coordinates = strings.ToUpper(coord)
	}
	return resp, nil
}

func convertMoves(moves []*analysisRPC.Move) [][2]string {
	out := make([][2]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, [2]string{gtpColor(m.Color), m.Coordinates})
	}
	return out
}

func nextColor(moves []*analysisRPC.Move) string {
	if len(moves) == 0 {
		return "black"
	}
	if gtpColor(moves[len(moves)-1].Color) == "black" {
		return "white"
	}
	return "black"
}

func gtpColor(c string) string {
	if strings.HasPrefix(strings.ToLower(c), "w") {
		return "white"
	}
	return "black"
}
