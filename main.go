package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/mauriciortega07/backend-proyecto-biomedica/auth"
	"github.com/mauriciortega07/backend-proyecto-biomedica/config"
	"github.com/mauriciortega07/backend-proyecto-biomedica/controllers"
	"github.com/mauriciortega07/backend-proyecto-biomedica/db"
	"github.com/mauriciortega07/backend-proyecto-biomedica/router"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	gdb, err := db.Connect(cfg)
	if err != nil {
		sugar.Fatalf("connect db failed: %v", err)
	}

	api := controllers.NewAPI(gdb, sugar, auth.SchemeFor(cfg.AuthScheme))
	r := router.Setup(api, cfg, logger)

	sugar.Infof("Servidor corriendo en 0.0.0.0:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		sugar.Fatal(err)
	}
}
