package game

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"goban/internal/adapters"
	"goban/internal/bootstrap"
	"goban/internal/delivery/auth"
	"goban/internal/domain/game"
	"goban/internal/httpresponse"
	repo "goban/internal/repository"
	gameuc "goban/internal/usecase/game"
	"goban/internal/utils"
)

type GameHandler struct {
	cfg         bootstrap.Config
	log         *zap.SugaredLogger
	gameUC      *gameuc.GameUseCase
	authHandler *auth.AuthHandler
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, redisAdapter *adapters.AdapterRedis, authHandler *auth.AuthHandler) *GameHandler {
	return &GameHandler{
		cfg:         cfg,
		log:         log,
		gameUC:      gameuc.NewGameUseCase(repo.NewGameRepository(cfg, log, redisAdapter.GetClient(), mongoAdapter.Database), log),
		authHandler: authHandler,
	}
}

func (g *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		g.log.Error("Only POST method is allowed")
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	userID := g.authHandler.EnsureSession(w, r)
	if userID == "" {
		return
	}

	var createRequest game.CreateGameRequest
	if err := utils.DecodeJSONRequest(r, &createRequest); err != nil {
		g.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	ctx := r.Context()

	alreadyIsInGame, err := g.gameUC.HasUserActiveGamesByUserId(ctx, userID)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "ошибка при создании игры: "+err.Error())
		return
	}
	if alreadyIsInGame {
		g.log.Error("пользователь уже состоит в игре!")
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "ошибка при создании игры: уже состоит в игре")
		return
	}

	gameKeyPublic, gameKeySecret, err := g.gameUC.CreateGame(ctx, createRequest, userID)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := game.GameCreateResponse{
		PublicKey: gameKeyPublic,
		SecretKey: gameKeySecret,
	}

	g.log.Info("New Game Created with key: " + gameKeyPublic)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (g *GameHandler) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		g.log.Error("Only POST method is allowed")
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	userID := g.authHandler.EnsureSession(w, r)
	if userID == "" {
		return
	}

	var joinRequest game.GameJoinRequest
	if err := utils.DecodeJSONRequest(r, &joinRequest); err != nil {
		g.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	joinRequest.UserID = userID

	if joinRequest.GameKey == "" {
		g.log.Error("неверный json: пустой game_key")
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "Invalid JSON: empty game_key")
		return
	}

	ctx := r.Context()

	alreadyIsInGame, err := g.gameUC.HasUserActiveGamesByUserId(ctx, joinRequest.UserID)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "ошибка при добавлении в игру: "+err.Error())
		return
	}
	if alreadyIsInGame {
		g.log.Error("пользователь уже состоит в игре!")
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "ошибка при добавлении в игру: уже состоит в игре")
		return
	}

	play, err := g.gameUC.GetGameBySecretKey(ctx, joinRequest.GameKey)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusNotFound, "игра не найдена")
		return
	}

	updatedGame, err := g.gameUC.JoinGame(ctx, play, joinRequest.UserID)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	g.log.Infof("Пользователь %s добавлен к игре %s", userID, updatedGame.GameKeyPublic)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, updatedGame)
}

// HandleGameInfo отдаёт партию по публичному ключу: состояние, ходы, SGF.
func (g *GameHandler) HandleGameInfo(w http.ResponseWriter, r *http.Request) {
	publicKey := r.URL.Query().Get("game_id")
	if publicKey == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "отсутствует параметр game_id")
		return
	}

	play, err := g.gameUC.GetGameByPublicKey(r.Context(), publicKey)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusNotFound, "игра не найдена")
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, play)
}

// HandleActiveGames отдаёт список идущих партий.
func (g *GameHandler) HandleActiveGames(w http.ResponseWriter, r *http.Request) {
	games, err := g.gameUC.ActiveGames(r.Context())
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError, "не удалось получить список партий")
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, games)
}

// HandleMove исполняет команду игрока через REST: камень, пас, сдачу
// или откат.
func (g *GameHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	userID := g.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req game.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	ctx := r.Context()

	s, err := g.gameUC.Session(ctx, req.GameKey)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusNotFound, "игра не найдена")
		return
	}

	color, err := gameuc.UserColorInGame(s.Game, userID)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusForbidden, "пользователь не в игре")
		return
	}
	req.Color = color

	resp, err := g.gameUC.ApplyMove(ctx, req.GameKey, req)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	g.notifyOpponent(s, color, resp)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

// HandleGamePlay держит вебсокет игрока: каждая прочитанная команда
// применяется к партии, результат уходит обоим сторонам.
func (g *GameHandler) HandleGamePlay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gameKey := r.URL.Query().Get("game_key")
	playerID := g.authHandler.GetUserID(w, r)

	if gameKey == "" || playerID == "" {
		g.log.Error("отсутствуют поля gameKey или playerID")
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "отсутствуют поля gameKey или playerID")
		return
	}

	s, err := g.gameUC.Session(ctx, gameKey)
	if err != nil {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, http.StatusNotFound, "игра не найдена")
		return
	}

	color, err := gameuc.UserColorInGame(s.Game, playerID)
	if err != nil {
		g.log.Error("пользователь не в игре: ", playerID)
		httpresponse.WriteResponseWithStatus(w, http.StatusForbidden, "пользователь не в игре!")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("upgrade error:", err)
		return
	}

	g.attachConn(s, color, conn)
	defer g.detachConn(s, color, conn)

	for {
		var req game.MoveRequest
		if err = conn.ReadJSON(&req); err != nil {
			g.log.Error("read error:", err)
			return
		}
		req.Color = color

		resp, err := g.gameUC.ApplyMove(ctx, gameKey, req)
		if err != nil {
			g.log.Error(err)
			conn.WriteJSON(map[string]string{"error": err.Error()})
			continue
		}

		conn.WriteJSON(resp)
		g.notifyOpponent(s, color, resp)
	}
}

func (g *GameHandler) attachConn(s *gameuc.Session, color string, conn *websocket.Conn) {
	s.Lock()
	defer s.Unlock()
	ws := &s.Game.PlayerBlackWS
	if color == "white" {
		ws = &s.Game.PlayerWhiteWS
	}
	if *ws != nil {
		(*ws).WriteMessage(websocket.TextMessage, []byte("Вы были отключены, новое соединение создано."))
		(*ws).Close()
	}
	*ws = conn
}

func (g *GameHandler) detachConn(s *gameuc.Session, color string, conn *websocket.Conn) {
	conn.Close()
	s.Lock()
	defer s.Unlock()
	ws := &s.Game.PlayerBlackWS
	if color == "white" {
		ws = &s.Game.PlayerWhiteWS
	}
	if *ws == conn {
		*ws = nil
	}
}

func (g *GameHandler) notifyOpponent(s *gameuc.Session, color string, resp game.GameStateResponse) {
	s.Lock()
	defer s.Unlock()
	ws := s.Game.PlayerWhiteWS
	if color == "white" {
		ws = s.Game.PlayerBlackWS
	}
	if ws == nil {
		return
	}
	if err := ws.WriteJSON(resp); err != nil {
		g.log.Error("Write to opponent error:", err)
		ws.Close()
		if color == "white" {
			s.Game.PlayerBlackWS = nil
		} else {
			s.Game.PlayerWhiteWS = nil
		}
	}
}
