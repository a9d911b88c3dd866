package main

import (
	"os"

	"github.com/DRSN-tech/online-sales/internal/app"
	config "github.com/DRSN-tech/online-sales/internal/cfg"
	"github.com/DRSN-tech/online-sales/pkg/logger"
)

// main запускает client-service.
//
//	@title			Clients Service
//	@version		1.0.0
//	@description	Регистрация и поиск клиентов интернет-магазина
//	@BasePath		/
func main() {
	bootLog := logger.NewSlogLogger()

	cfg, err := config.Load(bootLog, app.ClientService)
	if err != nil {
		bootLog.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})

	application, err := app.NewApp(cfg, log, cfg.App.Name)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
