package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"treasury-simulator/internal/api/handlers"
	"treasury-simulator/internal/api/middlew"
	"treasury-simulator/internal/config"
	"treasury-simulator/internal/db"
	"treasury-simulator/internal/kafka"
	"treasury-simulator/internal/server"
	"treasury-simulator/internal/service"
	"treasury-simulator/internal/storage/postgres"
	"treasury-simulator/pkg/logger"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	log             *slog.Logger
	server          *server.Server
	pool            *pgxpool.Pool
	logFile         *os.File
	cfg             *config.Config
	treasuryService *service.TreasuryService
	journalRepo     postgres.JournalRepository
	txManager       service.TxManager
	kafkaProducer   kafka.Producer
}

func NewApp() (*App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации конфига: %w", err)
	}

	loggerWithFile, err := logger.NewLoggerWithFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	log := loggerWithFile.Logger
	log.Info("конфигурация загружена",
		slog.String("port", cfg.HTTPPort),
		slog.Bool("journal", cfg.Journal.Enabled),
		slog.Bool("kafka", cfg.Kafka.Enabled))

	var kafkaProducer kafka.Producer
	if cfg.Kafka.Enabled {
		log.Info("инициализация kafka producer", slog.Any("brokers", cfg.Kafka.Brokers))
		kafkaProducer, err = kafka.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			return nil, fmt.Errorf("ошибка инициализации kafka: %w", err)
		}
	} else {
		log.Info("kafka отключен в конфигурации")
		kafkaProducer = kafka.NewNoOpProducer(log)
	}

	srv := server.NewServer(cfg.HTTPPort)
	srv.Router.Use(middleware.RequestID)
	srv.Router.Use(middlew.WithLogger(log))
	srv.Router.Use(middleware.RealIP)
	srv.Router.Use(middlew.AccessLog)
	srv.Router.Use(middleware.Recoverer)
	srv.RegisterSwagger()
	log.Info("сервер инициализирован", slog.String("port", cfg.HTTPPort))

	return &App{
		log:           log,
		server:        srv,
		logFile:       loggerWithFile.LogFile,
		cfg:           cfg,
		kafkaProducer: kafkaProducer,
	}, nil
}

// BuildJournalLayer подключает postgres-журнал, если он включен в конфиге
func (a *App) BuildJournalLayer(ctx context.Context) error {
	if !a.cfg.Journal.Enabled {
		a.log.Info("журнал отключен в конфигурации")
		return nil
	}

	a.log.Info("выполнение миграций базы данных")
	if err := db.RunMigrations(a.cfg.Journal.DB.MigrationURL(), "migrations"); err != nil {
		return fmt.Errorf("ошибка выполнения миграций: %w", err)
	}
	a.log.Info("миграции успешно применены")

	pool, err := db.NewPool(ctx, a.cfg.Journal.DB.DSN(), db.DefaultJournalPoolConfig(a.cfg.Events.Workers), a.log)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}

	a.pool = pool
	a.journalRepo = postgres.NewJournalRepository(pool)
	a.txManager = service.NewPgxTxManager(pool)

	a.log.Info("слой 'journal' собран")
	return nil
}

func (a *App) BuildTreasuryLayer() {
	a.treasuryService = service.NewTreasuryService(
		service.DefaultAccounts(),
		service.DefaultRates(),
		service.TreasuryConfig{
			NoticeTTL:              a.cfg.Notice.TTL,
			Workers:                a.cfg.Events.Workers,
			QueueSize:              a.cfg.Events.QueueSize,
			LargeTransferThreshold: a.cfg.Events.LargeTransferThreshold,
		},
		service.TreasuryDeps{
			JournalRepo:   a.journalRepo,
			TxManager:     a.txManager,
			KafkaProducer: a.kafkaProducer,
		},
		a.log,
	)

	handlers.RegisterRoutes(a.server.Router, a.treasuryService, a.journalRepo != nil)

	a.log.Info("слой 'treasury' собран и маршруты зарегистрированы")
}

func (a *App) Run() error {
	a.log.Info("сервер запускается")

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска сервера: %w", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case runErr = <-serverErr:
	case sig := <-shutdownChan:
		a.log.Info("получен сигнал завершения", slog.String("signal", sig.String()))
	}

	a.Close()
	return runErr
}

// Close останавливает все компоненты в обратном порядке
func (a *App) Close() {
	a.log.Info("приложение останавливается")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("ошибка при остановке http сервера", slog.String("error", err.Error()))
	}

	if a.treasuryService != nil {
		if err := a.treasuryService.Shutdown(ctx); err != nil {
			a.log.Error("ошибка при остановке treasury service", slog.String("error", err.Error()))
		}
	}

	if a.kafkaProducer != nil {
		if err := a.kafkaProducer.Close(); err != nil {
			a.log.Error("ошибка при закрытии kafka producer", slog.String("error", err.Error()))
		}
	}

	if a.pool != nil {
		a.log.Info("закрытие соединения с базой данных")
		a.pool.Close()
	}

	a.log.Info("приложение остановлено")
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "ошибка при закрытии файла логов: %v\n", err)
		}
	}
}
