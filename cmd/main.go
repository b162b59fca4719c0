package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkCapacityHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/check_capacity"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/get_available_slots"
	getDisabledDatesHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/get_disabled_dates"
	getVenueScheduleHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/get_venue_schedule"
	healthHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/health"
	"github.com/m04kA/SMC-TableAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-TableAvailability/internal/availability"
	"github.com/m04kA/SMC-TableAvailability/internal/config"
	reservationRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/schedule"
	seatingRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/seating"
	"github.com/m04kA/SMC-TableAvailability/internal/service/snapshot"
	checkCapacityUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/check_capacity"
	getAvailableSlotsUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_available_slots"
	getDisabledDatesUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_disabled_dates"
	getVenueScheduleUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_venue_schedule"
	"github.com/m04kA/SMC-TableAvailability/migrations"
	"github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
	"github.com/m04kA/SMC-TableAvailability/pkg/metrics"
	"github.com/m04kA/SMC-TableAvailability/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TableAvailability...")
	log.Info("Configuration loaded from %s", configPath)

	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		log.Fatal("Invalid availability settings: %v", err)
	}
	log.Info("Availability: window %s-%s, granularity %d min, horizon %d days, timezone %s",
		engineOpts.ReferenceStart, engineOpts.ReferenceEnd, engineOpts.GranularityMinutes,
		engineOpts.HorizonDays, engineOpts.Location)

	// Инициализируем метрики (если включены). nil коллектор метрики не пишет.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Проверяем соединение
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.ApplyMigrations {
		if err := migrations.Up(startupCtx, db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Оборачиваем БД: с метриками собираем статистику пула и время запросов
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	seatingRepository := seatingRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	loader := snapshot.NewLoader(scheduleRepository, seatingRepository, reservationRepository, log)
	engine := availability.NewEngine(engineOpts)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		loader,
		engine,
		metricsCollector,
		time.Duration(cfg.Server.FetchTimeout)*time.Second,
		log,
	)

	getDisabledDatesUseCase := getDisabledDatesUC.NewUseCase(
		loader,
		engine,
		metricsCollector,
		log,
	)

	getVenueScheduleUseCase := getVenueScheduleUC.NewUseCase(loader, engine, log)

	checkCapacityUseCase := checkCapacityUC.NewUseCase(
		loader,
		engine,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDisabledDates := getDisabledDatesHandler.NewHandler(getDisabledDatesUseCase, log)
	getVenueSchedule := getVenueScheduleHandler.NewHandler(getVenueScheduleUseCase, log)
	checkCapacity := checkCapacityHandler.NewHandler(checkCapacityUseCase, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Слоты на дату
	api.HandleFunc("/venues/{venueId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недоступные даты в горизонте бронирования (для календаря)
	api.HandleFunc("/venues/{venueId}/disabled-dates", getDisabledDates.Handle).Methods(http.MethodGet)

	// Расписание заведения: правила, неделя, ближайшие закрытия
	api.HandleFunc("/venues/{venueId}/schedule", getVenueSchedule.Handle).Methods(http.MethodGet)

	// Проверка вместимости перед записью бронирования
	api.HandleFunc("/venues/{venueId}/availability/check", checkCapacity.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
