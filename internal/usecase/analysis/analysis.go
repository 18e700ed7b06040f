package analysis

import (
	"context"

	"goban/internal/domain/game"
	analysisRPC "goban/microservices/proto"
)

// GenMove просит движок сыграть следующий ход в позиции.
func GenMove(ctx context.Context, pos game.PositionRequest, client analysisRPC.AnalysisServiceClient) (game.Move, error) {
	botResponse, err := client.GenerateMove(ctx, convertPositionToRPC(pos))
	if err != nil {
		return game.Move{}, err
	}

	return game.Move{
		Coordinates: botResponse.Coordinates,
		Pass:        botResponse.Pass,
		Color:       nextColor(pos.Moves),
		ByBot:       true,
	}, nil
}

// SuggestDeadStones спрашивает движок о мёртвых камнях позиции.
// Подсказка подсвечивается на этапе подсчёта, решение остаётся за игроками.
func SuggestDeadStones(ctx context.Context, pos game.PositionRequest, client analysisRPC.AnalysisServiceClient) ([]string, error) {
	resp, err := client.SuggestDeadStones(ctx, convertPositionToRPC(pos))
	if err != nil {
		return nil, err
	}
	return resp.Coordinates, nil
}

func convertPositionToRPC(pos game.PositionRequest) *analysisRPC.Position {
	rpcMoves := make([]*analysisRPC.Move, 0, len(pos.Moves))
	for _, m := range pos.Moves {
		if m.Resign {
			continue
		}
		rpcMoves = append(rpcMoves, &analysisRPC.Move{
			Color:       m.Color,
			Coordinates: m.Coordinates,
		})
	}
	return &analysisRPC.Position{
		BoardSize: int32(pos.BoardSize),
		Komi:      pos.Komi,
		Moves:     rpcMoves,
	}
}

func nextColor(moves []game.Move) string {
	if len(moves) == 0 {
		return "black"
	}
	if moves[len(moves)-1].Color == "black" {
		return "white"
	}
	return "black"
}
