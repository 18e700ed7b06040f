package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"goban/internal/domain/board"
	"goban/internal/domain/game"
	sgf "goban/internal/domain/sgf"
	"goban/internal/errors"
	repo "goban/internal/repository"
	"goban/internal/statuses"
)

type GameStore interface {
	GenerateGameKeys(ctx context.Context) (gameKeySecret string, gameKeyPublic string)
	PutGameToMongoDatabase(ctx context.Context, gameData *game.Game) error
	UpdateGameState(ctx context.Context, gameData *game.Game) error
	AddPlayer(ctx context.Context, userId string, gameKey string) (game.Game, error)
	GetGameByGameKey(ctx context.Context, gameKey string) (game.Game, error)
	GetGameByPublicKey(ctx context.Context, gameKeyPublic string) (game.Game, error)
	SaveSGFToRedis(ctx context.Context, key string, sgfText string) error
	LoadSGFFromRedis(ctx context.Context, key string) (string, error)
	SaveBoardSnapshot(ctx context.Context, key string, rec repo.BoardSnapshotRecord) error
	LoadBoardSnapshot(ctx context.Context, key string) (repo.BoardSnapshotRecord, error)
	GetAllActiveGames(ctx context.Context) ([]game.Game, error)
	HasUserActiveGameByUserId(ctx context.Context, userID string) (bool, error)
}

type GameUseCase struct {
	store    GameStore
	sessions *SessionRegistry
	log      *zap.SugaredLogger
}

func NewGameUseCase(store GameStore, log *zap.SugaredLogger) *GameUseCase {
	return &GameUseCase{
		store:    store,
		sessions: NewSessionRegistry(),
		log:      log,
	}
}

func (g *GameUseCase) CreateGame(ctx context.Context, newGameRequest game.CreateGameRequest, creatorID string) (gameKeyPublic string, gameKeySecret string, err error) {
	gameKeySecret, gameKeyPublic = g.store.GenerateGameKeys(ctx)

	newGame := &game.Game{
		BoardSize:     newGameRequest.BoardSize,
		Komi:          newGameRequest.Komi,
		Handicap:      newGameRequest.Handicap,
		GameKeySecret: gameKeySecret,
		GameKeyPublic: gameKeyPublic,
		Status:        statuses.StatusWaitOpponent,
		CreatedAt:     time.Now(),
	}

	if !board.SizeSupported(newGameRequest.BoardSize) {
		return "", "", fmt.Errorf("%w: board size %d", errors.ErrInvalidSize, newGameRequest.BoardSize)
	}

	if newGameRequest.IsCreatorBlack {
		newGame.PlayerBlack = creatorID
	} else {
		newGame.PlayerWhite = creatorID
	}

	if err := g.store.PutGameToMongoDatabase(ctx, newGame); err != nil {
		return "", "", errors.ErrCreateGameFailed
	}
	return gameKeyPublic, gameKeySecret, nil
}

// JoinGame добавляет второго игрока; как только оба на месте, партия
// стартует и регистрируется живая сессия.
func (g *GameUseCase) JoinGame(ctx context.Context, play game.Game, userID string) (game.Game, error) {
	updatedGame, err := g.store.AddPlayer(ctx, userID, play.GameKeySecret)
	if err != nil {
		return game.Game{}, errors.ErrJoinGameFailed
	}

	if updatedGame.PlayerBlack != "" && updatedGame.PlayerWhite != "" {
		if err := updatedGame.Start(); err != nil {
			return game.Game{}, err
		}
		s, err := g.sessions.Attach(&updatedGame)
		if err != nil {
			return game.Game{}, err
		}
		// С момента Attach партия доступна другим горутинам.
		s.Lock()
		err = g.store.UpdateGameState(ctx, s.Game)
		if err == nil {
			_, err = g.refreshSgf(ctx, s)
		}
		started := *s.Game
		s.Unlock()
		if err != nil {
			return game.Game{}, err
		}
		return started, nil
	}

	minSGF := g.PrepareSgfFile(updatedGame)
	sgfString := SerializeSGF(&minSGF)
	if err := g.store.SaveSGFToRedis(ctx, updatedGame.GameKeySecret, sgfString); err != nil {
		return game.Game{}, err
	}

	return updatedGame, nil
}

// Session возвращает живую сессию партии, поднимая её из базы при
// необходимости.
func (g *GameUseCase) Session(ctx context.Context, gameKey string) (*Session, error) {
	if s, ok := g.sessions.Get(gameKey); ok {
		return s, nil
	}
	play, err := g.store.GetGameByGameKey(ctx, gameKey)
	if err != nil {
		return nil, errors.ErrGameNotFound
	}
	return g.sessions.Attach(&play)
}

// ApplyMove исполняет команду игрока: ход, пас, сдача или откат.
// После каждой команды документ партии и SGF-запись обновляются.
func (g *GameUseCase) ApplyMove(ctx context.Context, gameKey string, req game.MoveRequest) (game.GameStateResponse, error) {
	s, err := g.Session(ctx, gameKey)
	if err != nil {
		return game.GameStateResponse{}, err
	}

	var move game.Move
	switch {
	case req.Resign:
		move, err = s.Resign(req.Color)
	case req.Pass:
		move, err = s.Pass(req.Color)
	case req.Undo:
		move, err = s.Undo()
	default:
		move, err = s.PlayStone(req.Color, req.Coordinates, false)
	}
	if err != nil {
		return game.GameStateResponse{}, err
	}

	// Чтение истории и слепка доски идёт под тем же замком, что и команды:
	// петли обоих игроков зовут ApplyMove из своих горутин.
	s.Lock()
	sgfString, sgfErr := g.refreshSgf(ctx, s)
	if sgfErr != nil {
		g.log.Errorw("не удалось обновить SGF", "game", gameKey, "error", sgfErr)
	}
	if err := g.persistSession(ctx, s); err != nil {
		g.log.Errorw("не удалось сохранить партию", "game", gameKey, "error", err)
	}
	status := s.Game.Status
	s.Unlock()

	return game.GameStateResponse{
		Move:   move,
		SGF:    sgfString,
		Status: status,
	}, nil
}

// PersistGame сохраняет текущее состояние сессии.
func (g *GameUseCase) PersistGame(ctx context.Context, s *Session) error {
	s.Lock()
	defer s.Unlock()
	return g.persistSession(ctx, s)
}

// persistSession сохраняет документ партии и кеширует слепок доски.
// Вызывающий держит замок сессии.
func (g *GameUseCase) persistSession(ctx context.Context, s *Session) error {
	if err := g.store.UpdateGameState(ctx, s.Game); err != nil {
		return err
	}
	if s.Game.Board == nil {
		return nil
	}
	snap := s.Game.Board.Snapshot()
	states := make([]uint8, len(snap.States))
	for i, st := range snap.States {
		states[i] = uint8(st)
	}
	return g.store.SaveBoardSnapshot(ctx, s.Game.GameKeySecret, repo.BoardSnapshotRecord{
		Generation: snap.Generation,
		Size:       snap.Size,
		States:     states,
	})
}

// refreshSgf пересобирает SGF-строку партии из её цепочки ходов.
// Вызывающий держит замок сессии.
func (g *GameUseCase) refreshSgf(ctx context.Context, s *Session) (string, error) {
	minSGF := g.PrepareSgfFile(*s.Game)
	AddMovesToSgf(minSGF.Root, s.Game.Moves, s.Game.BoardSize)
	sgfString := SerializeSGF(&minSGF)
	if err := g.store.SaveSGFToRedis(ctx, s.Game.GameKeySecret, sgfString); err != nil {
		return sgfString, err
	}
	return sgfString, nil
}

// GetGameByPublicKey — наблюдательский взгляд на партию: документ, SGF и
// слепок занятости доски, без секретного ключа.
func (g *GameUseCase) GetGameByPublicKey(ctx context.Context, gameKeyPublic string) (game.Game, error) {
	play, err := g.store.GetGameByPublicKey(ctx, gameKeyPublic)
	if err != nil {
		return game.Game{}, errors.ErrGameNotFound
	}

	if play.GameKeySecret == "" {
		return game.Game{}, errors.ErrGameNotFound
	}

	sgfStringOfGame, err := g.GetSgfStringByGameKey(ctx, play.GameKeySecret)
	if err == nil {
		play.Sgf = sgfStringOfGame
	}

	if rec, err := g.store.LoadBoardSnapshot(ctx, play.GameKeySecret); err == nil {
		states := make([]int, len(rec.States))
		for i, st := range rec.States {
			states[i] = int(st)
		}
		play.BoardStates = states
	}

	play.GameKeySecret = ""
	return play, nil
}

// ActiveGames возвращает идущие партии для списка наблюдателя. Секретные
// ключи в список не попадают.
func (g *GameUseCase) ActiveGames(ctx context.Context) ([]game.Game, error) {
	games, err := g.store.GetAllActiveGames(ctx)
	if err != nil {
		return nil, err
	}
	for i := range games {
		games[i].GameKeySecret = ""
	}
	return games, nil
}

func (g *GameUseCase) GetGameBySecretKey(ctx context.Context, gameUniqueKey string) (game.Game, error) {
	gameFromDb, err := g.store.GetGameByGameKey(ctx, gameUniqueKey)
	if err != nil || gameFromDb.GameKeySecret == "" {
		return game.Game{}, errors.ErrGameNotFound
	}

	return gameFromDb, nil
}

func (g *GameUseCase) PrepareSgfFile(gameData game.Game) sgf.SGF {
	minSGF := sgf.SGF{
		Root: &sgf.GameTree{
			Nodes: []sgf.Node{
				{
					Properties: map[string][]string{
						"FF": {"4"},
						"GM": {"1"},
						"SZ": {strconv.Itoa(gameData.BoardSize)},
						"PB": {gameData.PlayerBlack},
						"PW": {gameData.PlayerWhite},
						"DT": {gameData.CreatedAt.Format("2006-01-02")},
						"RE": {gameData.Result},
						"KM": {strconv.FormatFloat(gameData.Komi, 'f', 1, 64)},
						"RU": {"Chinese"},
					},
				},
			},
		},
	}
	if len(gameData.Handicap) > 0 {
		ab := make([]string, 0, len(gameData.Handicap))
		for _, c := range gameData.Handicap {
			if s, err := SgfCoord(c, gameData.BoardSize); err == nil {
				ab = append(ab, s)
			}
		}
		minSGF.Root.Nodes[0].Properties["HA"] = []string{strconv.Itoa(len(gameData.Handicap))}
		minSGF.Root.Nodes[0].Properties["AB"] = ab
	}
	return minSGF
}

// AddMovesToSgf дописывает цепочку ходов в дерево. Пас кодируется пустыми
// координатами, сдача в SGF-запись не попадает.
func AddMovesToSgf(tree *sgf.GameTree, moves []game.Move, size int) {
	for _, move := range moves {
		if move.Resign {
			continue
		}
		key := "B"
		if move.Color == board.White.String() {
			key = "W"
		}
		coord := ""
		if move.IsBoardMove() {
			c, err := SgfCoord(move.Coordinates, size)
			if err != nil {
				continue
			}
			coord = c
		}
		tree.AppendNode(sgf.Node{
			Properties: map[string][]string{
				key: {coord},
			},
		})
	}
}

// SgfCoord переводит координату вида "D4" в SGF-пару букв: колонки слева
// направо и строки сверху вниз, обе от 'a'.
func SgfCoord(coordinates string, size int) (string, error) {
	v, err := board.ParseVertex(coordinates, size)
	if err != nil {
		return "", err
	}
	col := byte('a' + v.Col)
	row := byte('a' + (size - 1 - v.Row))
	return string([]byte{col, row}), nil
}

func (g *GameUseCase) GetSgfStringByGameKey(ctx context.Context, key string) (string, error) {
	return g.store.LoadSGFFromRedis(ctx, key)
}

func SerializeSGF(s *sgf.SGF) string {
	var builder strings.Builder
	builder.WriteString("(")
	serializeGameTree(&builder, s.Root)
	builder.WriteString(")")
	return builder.String()
}

func serializeGameTree(builder *strings.Builder, tree *sgf.GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")

		// фиксированный порядок свойств SGF
		orderedKeys := []string{"FF", "GM", "SZ", "PB", "PW", "DT", "RE", "KM", "RU", "HA", "AB", "C", "B", "W"}
		used := make(map[string]bool)
		for _, key := range orderedKeys {
			if values, ok := node.Properties[key]; ok {
				used[key] = true
				writeProperty(builder, key, values)
			}
		}

		for key, values := range node.Properties {
			if !used[key] {
				writeProperty(builder, key, values)
			}
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}

// writeProperty пишет идентификатор один раз, затем все значения в скобках:
// многозначное свойство вида AB[aa][bb], а не AB[aa]AB[bb].
func writeProperty(builder *strings.Builder, key string, values []string) {
	builder.WriteString(key)
	for _, v := range values {
		builder.WriteString("[" + v + "]")
	}
}

func (g *GameUseCase) IsUserInGameByGameId(ctx context.Context, userID string, gameKey string) bool {
	play, err := g.store.GetGameByGameKey(ctx, gameKey)
	if err != nil {
		return false
	}
	return play.PlayerWhite == userID || play.PlayerBlack == userID
}

func (g *GameUseCase) HasUserActiveGamesByUserId(ctx context.Context, userID string) (bool, error) {
	isAlreadyInGame, err := g.store.HasUserActiveGameByUserId(ctx, userID)
	if err != nil {
		return true, err
	}
	return isAlreadyInGame, nil
}

// UserColorInGame определяет, каким цветом userID играет в партии.
func UserColorInGame(play *game.Game, userID string) (string, error) {
	switch userID {
	case "":
		return "", errors.ErrInvalidOperation
	case play.PlayerBlack:
		return board.Black.String(), nil
	case play.PlayerWhite:
		return board.White.String(), nil
	}
	return "", fmt.Errorf("%w: user %s is not a player", errors.ErrInvalidOperation, userID)
}
