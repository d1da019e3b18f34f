package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/project/lending/config"
	"github.com/project/lending/internal/app"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("can not read config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can not create logger: %v", err)
	}

	defer func() {
		_ = logger.Sync()
	}()

	app.Run(logger, cfg)
}
