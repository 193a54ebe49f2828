package main

import (
	"backend/config"
	"backend/logger"
	"backend/routes"
	"backend/utils"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	config.LoadEnv()
	config.InitDB()
	utils.InitMailer()

	r := routes.SetupRouter()
	addr := ":" + config.Port()
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
