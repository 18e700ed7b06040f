package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"goban/internal/adapters"
	"goban/internal/bootstrap"
	analysisDelivery "goban/internal/delivery/analysis"
	authDelivery "goban/internal/delivery/auth"
	gameDelivery "goban/internal/delivery/game"
	ownMiddleware "goban/internal/middleware"
	analysisProto "goban/microservices/proto"
)

type mainDeliveryHandler struct {
	auth     *authDelivery.AuthHandler
	analysis *analysisDelivery.AnalysisHandler
	game     *gameDelivery.GameHandler
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, *cfg)
	defer databaseAdapters.mongoAdapter.Close(ctx)
	defer databaseAdapters.redisAdapter.Close(ctx)

	analysisAddr := cfg.AnalysisIp + ":" + cfg.AnalysisPort
	grpcAnalysis, err := grpc.NewClient(analysisAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Failed to dial grpc", zap.Error(err))
	}
	defer grpcAnalysis.Close()

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(*cfg, logger, grpcAnalysis, databaseAdapters)
	handlers.Router(r, cfg.IsLocalCors)

	port := ":" + cfg.ServerPort
	if cfg.ServerPort == "" {
		port = ":8080"
	}
	logger.Infof("Server is running on port %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)

	r.Get("/hello", h.auth.Hello)
	r.Delete("/logout", h.auth.Logout)

	r.Post("/newGame", h.game.HandleNewGame)
	r.Post("/joinGame", h.game.HandleJoinGame)
	r.Get("/gameInfo", h.game.HandleGameInfo)
	r.Get("/activeGames", h.game.HandleActiveGames)
	r.Post("/move", h.game.HandleMove)
	r.Get("/play", h.game.HandleGamePlay)

	r.Post("/scoring/start", h.game.HandleEnterScoring)
	r.Post("/scoring/toggleDead", h.game.HandleToggleDead)
	r.Post("/scoring/state", h.game.HandleScore)
	r.Post("/scoring/finalize", h.game.HandleFinalize)

	r.Post("/autoBotGenerateMove", h.analysis.HandleGenerateMove)
	r.Post("/suggestDeadStones", h.analysis.HandleSuggestDeadStones)
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg bootstrap.Config) *dataBaseAdapters {
	mongoAdapter := adapters.NewAdapterMongo(&cfg, log)
	if err := mongoAdapter.Init(ctx); err != nil {
		log.Fatal("Не удалось инициализировать MongoDB", zap.Error(err))
	}

	redisAdapter := adapters.NewAdapterRedis(&cfg, log)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatal("Не удалось инициализировать Redis", zap.Error(err))
	}

	log.Info("Адаптеры баз данных инициализированы")
	return &dataBaseAdapters{
		redisAdapter: redisAdapter,
		mongoAdapter: mongoAdapter,
	}
}

func initializeDeliveryHandlers(
	cfg bootstrap.Config,
	log *zap.SugaredLogger,
	grpcAnalysis *grpc.ClientConn,
	databaseAdapters *dataBaseAdapters,
) *mainDeliveryHandler {
	analysisClient := analysisProto.NewAnalysisServiceClient(grpcAnalysis)
	analysisDeliveryHandler := analysisDelivery.NewAnalysisHandler(cfg, log, analysisClient)

	authDeliveryHandler := authDelivery.NewAuthHandler(databaseAdapters.redisAdapter, log)
	gameDeliveryHandler := gameDelivery.NewGameHandler(cfg, log, databaseAdapters.mongoAdapter, databaseAdapters.redisAdapter, authDeliveryHandler)

	return &mainDeliveryHandler{
		auth:     authDeliveryHandler,
		analysis: analysisDeliveryHandler,
		game:     gameDeliveryHandler,
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
	time.Sleep(1 * time.Second) // дать время закрыть соединения
}
