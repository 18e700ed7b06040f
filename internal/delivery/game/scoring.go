package game

import (
	"net/http"

	"goban/internal/domain/game"
	"goban/internal/httpresponse"
	gameuc "goban/internal/usecase/game"
	"goban/internal/utils"
)

// ScoringRequest — команды этапа подсчёта. Coordinates заполняется
// только для переключения мёртвой группы.
type ScoringRequest struct {
	GameKey     string `json:"game_key"`
	Coordinates string `json:"coordinates,omitempty"`
}

func (g *GameHandler) scoringSession(w http.ResponseWriter, r *http.Request, req *ScoringRequest) *gameuc.Session {
	userID := g.authHandler.GetUserID(w, r)
	if userID == "" {
		return nil
	}

	if err := utils.DecodeJSONRequest(r, req); err != nil {
		g.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return nil
	}

	s, err := g.gameUC.Session(r.Context(), req.GameKey)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusNotFound, "игра не найдена")
		return nil
	}

	if _, err := gameuc.UserColorInGame(s.Game, userID); err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusForbidden, "пользователь не в игре")
		return nil
	}
	return s
}

// HandleEnterScoring переводит партию в режим подсчёта.
func (g *GameHandler) HandleEnterScoring(w http.ResponseWriter, r *http.Request) {
	var req ScoringRequest
	s := g.scoringSession(w, r, &req)
	if s == nil {
		return
	}

	if err := s.EnterScoring(); err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.Score()
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	g.broadcastScore(s, res)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, res)
}

// HandleToggleDead переключает мёртвую группу и возвращает новый расклад.
func (g *GameHandler) HandleToggleDead(w http.ResponseWriter, r *http.Request) {
	var req ScoringRequest
	s := g.scoringSession(w, r, &req)
	if s == nil {
		return
	}

	res, err := s.ToggleDead(req.Coordinates)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	g.broadcastScore(s, res)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, res)
}

// HandleScore отдаёт текущий расклад подсчёта без завершения партии.
func (g *GameHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoringRequest
	s := g.scoringSession(w, r, &req)
	if s == nil {
		return
	}

	res, err := s.Score()
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, res)
}

// HandleFinalize завершает партию подсчитанным результатом.
func (g *GameHandler) HandleFinalize(w http.ResponseWriter, r *http.Request) {
	var req ScoringRequest
	s := g.scoringSession(w, r, &req)
	if s == nil {
		return
	}

	res, err := s.Finalize(g.log)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusConflict, err.Error())
		return
	}

	if err := g.gameUC.PersistGame(r.Context(), s); err != nil {
		g.log.Errorw("не удалось сохранить завершённую партию",
			"game", s.Game.GameKeyPublic, "error", err)
	}

	g.broadcastScore(s, res)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, res)
}

func (g *GameHandler) broadcastScore(s *gameuc.Session, res interface{}) {
	s.Lock()
	defer s.Unlock()
	resp := game.GameStateResponse{
		Status: s.Game.Status,
		Score:  res,
	}
	if s.Game.PlayerBlackWS != nil {
		s.Game.PlayerBlackWS.WriteJSON(resp)
	}
	if s.Game.PlayerWhiteWS != nil {
		s.Game.PlayerWhiteWS.WriteJSON(resp)
	}
}
