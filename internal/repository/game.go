package repo

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/game"
	"goban/internal/statuses"
)

type GameRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
	mongo *mongo.Database
}

func NewGameRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client, mongo *mongo.Database) *GameRepository {
	return &GameRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
		mongo: mongo,
	}
}

// GenerateGameKeys выдаёт пару ключей: секретный для игроков и короткий
// публичный для зрителей.
func (g *GameRepository) GenerateGameKeys(ctx context.Context) (gameKeySecret string, gameKeyPublic string) {
	gameKeySecret = uuid.New().String()
	for {
		gameKeyPublic = generateHash(gameKeySecret)

		if g.CheckPublicKeyIsUniq(ctx, gameKeyPublic) {
			return gameKeySecret, gameKeyPublic
		}
		gameKeySecret = uuid.New().String()
	}
}

func generateHash(s string) string {
	h := md5.New()
	h.Write([]byte(s))
	hashBytes := h.Sum(nil)
	number := binary.BigEndian.Uint32(hashBytes[:4])
	code := number % 100000
	return fmt.Sprintf("%05d", code)
}

func (g *GameRepository) CheckPublicKeyIsUniq(ctx context.Context, gameKeyPublic string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	collection := g.mongo.Collection("games")
	filter := bson.M{
		"game_key_public": gameKeyPublic,
	}
	err := collection.FindOne(ctx, filter).Err()
	return errors.Is(err, mongo.ErrNoDocuments)
}

func (g *GameRepository) PutGameToMongoDatabase(ctx context.Context, gameData *game.Game) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := g.mongo.Collection("games")

	_, err := collection.InsertOne(ctx, gameData)
	if err != nil {
		g.log.Errorf("failed to insert game to database: %v", err)
		return err
	}

	g.log.Infof("game inserted successfully with key: %s", gameData.GameKeySecret)
	return nil
}

// UpdateGameState переписывает изменяемую часть партии: цепочку ходов,
// статус и итог. Вызывается после каждой команды игрока.
func (g *GameRepository) UpdateGameState(ctx context.Context, gameData *game.Game) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := g.mongo.Collection("games")

	filter := bson.M{"game_key": gameData.GameKeySecret}
	update := bson.M{
		"$set": bson.M{
			"moves":       gameData.Moves,
			"status":      gameData.Status,
			"end_reason":  gameData.EndReason,
			"who_is_next": gameData.WhoIsNext,
			"result":      gameData.Result,
			"started_at":  gameData.StartedAt,
			"ended_at":    gameData.EndedAt,
		},
	}

	res, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		g.log.Errorf("failed to update game %s: %v", gameData.GameKeyPublic, err)
		return err
	}
	if res.MatchedCount == 0 {
		g.log.Errorf("игра с ключом %s не найдена", gameData.GameKeyPublic)
		return mongo.ErrNoDocuments
	}
	return nil
}

func (g *GameRepository) AddPlayer(ctx context.Context, userId string, gameKey string) (game.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := g.mongo.Collection("games")

	filter := bson.M{"game_key": gameKey}

	userColor := g.CalculateUserColor(ctx, gameKey, userId)

	var update bson.M
	switch userColor {
	case "white":
		update = bson.M{"$set": bson.M{"player_white": userId}}
	case "black":
		update = bson.M{"$set": bson.M{"player_black": userId}}
	default:
		return game.Game{}, fmt.Errorf("не удалось определить цвет для %s", userId)
	}

	res, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		g.log.Errorf("failed to update game to database: %v", err)
		return game.Game{}, err
	}

	if res.MatchedCount == 0 {
		g.log.Infof("игра с ключом %s не найдена", gameKey)
		return game.Game{}, mongo.ErrNoDocuments
	}

	var updatedGame game.Game
	err = collection.FindOne(ctx, filter).Decode(&updatedGame)
	if err != nil {
		g.log.Errorf("ошибка при получении обновлённой игры: %v", err)
		return game.Game{}, err
	}

	g.log.Infof("Пользователь %s (%s) добавлен к игре %s", userId, userColor, gameKey)

	return updatedGame, nil
}

func (g *GameRepository) GetGameByPublicKey(ctx context.Context, gameKeyPublic string) (game.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	collection := g.mongo.Collection("games")
	filter := bson.M{
		"$and": []bson.M{
			{
				"game_key_public": gameKeyPublic,
			},
			{
				"status": bson.M{
					"$ne": statuses.StatusCompleted,
				},
			},
		},
	}

	foundGame := game.Game{}

	err := collection.FindOne(ctx, filter).Decode(&foundGame)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			g.log.Error(err)
		}
		return foundGame, err
	}

	return foundGame, nil
}

func (g *GameRepository) CalculateUserColor(ctx context.Context, gameKey string, userID string) string {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := g.mongo.Collection("games")

	filter := bson.M{"game_key": gameKey}

	var result game.Game
	err := collection.FindOne(ctx, filter).Decode(&result)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			g.log.Errorf("игра с ключом %s не найдена", gameKey)
		}
		return ""
	}

	if result.PlayerBlack == userID || (result.PlayerBlack == "" && result.PlayerWhite != "") {
		return "black"
	}
	if result.PlayerWhite == userID || result.PlayerWhite == "" {
		return "white"
	}
	return "black"
}

func (g *GameRepository) GetGameByGameKey(ctx context.Context, gameKey string) (game.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := g.mongo.Collection("games")

	filter := bson.M{"game_key": gameKey}

	var result game.Game
	err := collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			g.log.Errorf("игра с ключом %s не найдена", gameKey)
		}
		return result, err
	}

	return result, nil
}

func (g *GameRepository) SaveSGFToRedis(ctx context.Context, key string, sgfText string) error {
	return g.redis.Set(ctx, "sgf:"+key, sgfText, 0).Err()
}

func (g *GameRepository) LoadSGFFromRedis(ctx context.Context, key string) (string, error) {
	return g.redis.Get(ctx, "sgf:"+key).Result()
}

// BoardSnapshotRecord — кешированный слепок доски с номером поколения.
// Слепок со старым поколением считается протухшим.
type BoardSnapshotRecord struct {
	Generation uint64  `json:"generation"`
	Size       int     `json:"size"`
	States     []uint8 `json:"states"`
}

func (g *GameRepository) SaveBoardSnapshot(ctx context.Context, key string, rec BoardSnapshotRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return g.redis.Set(ctx, "board:"+key, raw, 24*time.Hour).Err()
}

func (g *GameRepository) LoadBoardSnapshot(ctx context.Context, key string) (BoardSnapshotRecord, error) {
	var rec BoardSnapshotRecord
	raw, err := g.redis.Get(ctx, "board:"+key).Bytes()
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func (g *GameRepository) GetAllActiveGames(ctx context.Context) ([]game.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	collection := g.mongo.Collection("games")
	filter := bson.M{
		"status": statuses.StatusActive,
	}
	var result []game.Game
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		g.log.Error(err)
		return result, err
	}

	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var play game.Game
		err = cursor.Decode(&play)
		if err != nil {
			g.log.Error(err)
			return result, err
		}
		result = append(result, play)
	}

	return result, nil
}

func (g *GameRepository) HasUserActiveGameByUserId(ctx context.Context, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	collection := g.mongo.Collection("games")
	filter := bson.M{
		"$and": []bson.M{
			{
				"$or": []bson.M{
					{"player_black": userID},
					{"player_white": userID},
				},
			},
			{
				"status": bson.M{
					"$ne": statuses.StatusCompleted,
				},
			},
		},
	}
	err := collection.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	} else if err != nil {
		g.log.Error(err)
		return false, err
	}

	return true, nil
}
