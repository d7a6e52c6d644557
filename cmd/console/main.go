package main

import (
	"bufio"
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	"treasury-simulator/internal/config"
	"treasury-simulator/internal/console"
	"treasury-simulator/internal/service"
	"treasury-simulator/pkg/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Ошибка инициализации конфига: %v", err)
	}

	lvl, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("Ошибка открытия файла логов: %v", err)
	}
	defer logFile.Close()

	// stdout занят таблицами, логи пишутся только в файл
	lg := slog.New(logger.NewLevelBasedMuxHandler(io.Discard, logFile, lvl))

	svc := service.NewTreasuryService(
		service.DefaultAccounts(),
		service.DefaultRates(),
		service.TreasuryConfig{
			NoticeTTL:              cfg.Notice.TTL,
			Workers:                cfg.Events.Workers,
			QueueSize:              cfg.Events.QueueSize,
			LargeTransferThreshold: cfg.Events.LargeTransferThreshold,
		},
		service.TreasuryDeps{},
		lg,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console.NewUI(svc, bufio.NewReader(os.Stdin), os.Stdout).Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		lg.Error("ошибка при остановке treasury service", slog.String("error", err.Error()))
	}
}
