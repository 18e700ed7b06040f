package analysis

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/game"
	analysisUC "goban/internal/usecase/analysis"
	analysisProto "goban/microservices/proto"
)

type BotMoveResponse struct {
	BotMove game.Move `json:"bot_move"`
}

type DeadStonesResponse struct {
	DeadStones []string `json:"dead_stones"`
}

type AnalysisHandler struct {
	cfg          bootstrap.Config
	log          *zap.SugaredLogger
	analysisGRPC analysisProto.AnalysisServiceClient
}

func NewAnalysisHandler(cfg bootstrap.Config, log *zap.SugaredLogger, client analysisProto.AnalysisServiceClient) *AnalysisHandler {
	return &AnalysisHandler{
		cfg:          cfg,
		log:          log,
		analysisGRPC: client,
	}
}

// HandleGenerateMove отдаёт ход бота для присланной позиции.
func (k *AnalysisHandler) HandleGenerateMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(k.log, w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var pos game.PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&pos); err != nil {
		writeJSONError(k.log, w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	ctx := r.Context()

	botMove, err := analysisUC.GenMove(ctx, pos, k.analysisGRPC)
	if err != nil {
		k.log.Errorf("failed to generate bot move: %v", err)
		writeJSONError(k.log, w, http.StatusInternalServerError, "Failed to generate bot move")
		return
	}

	writeJSON(k.log, w, http.StatusOK, BotMoveResponse{BotMove: botMove})
}

// HandleSuggestDeadStones отдаёт подсказку движка о мёртвых камнях.
func (k *AnalysisHandler) HandleSuggestDeadStones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(k.log, w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var pos game.PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&pos); err != nil {
		writeJSONError(k.log, w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	ctx := r.Context()

	dead, err := analysisUC.SuggestDeadStones(ctx, pos, k.analysisGRPC)
	if err != nil {
		k.log.Errorf("failed to suggest dead stones: %v", err)
		writeJSONError(k.log, w, http.StatusInternalServerError, "Failed to suggest dead stones")
		return
	}

	writeJSON(k.log, w, http.StatusOK, DeadStonesResponse{DeadStones: dead})
}

func writeJSON(log *zap.SugaredLogger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("writeJSON encode error: %v", err)
	}
}

func writeJSONError(log *zap.SugaredLogger, w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
	log.Debugf("writeJSONError: %s", msg)
}
