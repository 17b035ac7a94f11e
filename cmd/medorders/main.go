package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/merolaashraf15-source/MED/internal/app/config"
	server "github.com/merolaashraf15-source/MED/internal/app/controller/http/server"
	"github.com/merolaashraf15-source/MED/internal/app/logger"
	"github.com/merolaashraf15-source/MED/internal/app/metrics"
	storage "github.com/merolaashraf15-source/MED/internal/app/storage/api"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}

	orderStorage, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}

	serverMetrics := metrics.NewServerMetrics(prometheus.DefaultRegisterer)

	httpServer := server.New(config, orderStorage, serverMetrics)
	httpServer.StartHTTPServer()
}
