package main

import (
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"goban/internal/bootstrap"
	analysis "goban/microservices/proto"
	"goban/microservices/repository"
	"goban/microservices/usecase"
)

func main() {
	logger := NewLogger()
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	port := cfg.AnalysisPort
	if port == "" {
		port = "8082"
	}

	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Fatal("cant listen port", zap.Error(err))
	}

	engine, err := repository.NewEngineRepository(cfg, logger)
	if err != nil {
		logger.Fatal("не удалось запустить GTP-движок", zap.Error(err))
	}
	defer engine.Close()

	server := grpc.NewServer()
	analysis.RegisterAnalysisServiceServer(server, usecase.NewAnalysisUseCase(engine))
	fmt.Println("starting analysis server at :" + port)
	server.Serve(lis)
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return logger.Sugar()
}
