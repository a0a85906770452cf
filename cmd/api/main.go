package main

import (
	"context"
	"flag"
	"log"

	"juggler/internal/app"
	"juggler/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yml", "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("конфиг не прочитан (%v), работаем со значениями по умолчанию", err)
		cfg = config.Default()
	}

	ctx := context.Background()

	a := app.New(cfg)
	if err := a.Init(ctx); err != nil {
		log.Fatalf("инициализация приложения: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("остановка с ошибкой: %v", err)
	}
}
