package main

import (
	"context"
	"log"
	_ "treasury-simulator/docs"
	"treasury-simulator/internal/app"
)

// @title           Treasury Movement Simulator API
// @version         1.0
// @description     Переводы между счетами казначейства в KES, USD и NGN с конвертацией по статическим курсам

// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	app, err := app.NewApp()
	if err != nil {
		log.Fatalf("Ошибка создания приложения: %v", err)
	}

	if err := app.BuildJournalLayer(context.Background()); err != nil {
		app.Close()
		log.Fatalf("Ошибка подключения журнала: %v", err)
	}
	app.BuildTreasuryLayer()

	if err := app.Run(); err != nil {
		log.Fatalf("Ошибка при работе приложения: %v", err)
	}
}
