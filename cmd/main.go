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
	"github.com/redis/go-redis/v9"

	cancelReservationHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/cancel_reservation"
	confirmVerificationHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/confirm_verification"
	createReservationHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/get_availability"
	getReservationHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/get_reservation"
	getStoreReservationsHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/get_store_reservations"
	getStoreScheduleHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/get_store_schedule"
	getUserReservationsHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/get_user_reservations"
	requestVerificationHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/request_verification"
	updateReservationStatusHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/update_reservation_status"
	updateStoreScheduleHandler "github.com/LoLe05/jarimae-sub001/internal/api/handlers/update_store_schedule"
	"github.com/LoLe05/jarimae-sub001/internal/api/middleware"
	"github.com/LoLe05/jarimae-sub001/internal/config"
	verificationCache "github.com/LoLe05/jarimae-sub001/internal/infra/cache/verification"
	reservationRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/reservation"
	storeRepo "github.com/LoLe05/jarimae-sub001/internal/infra/storage/store"
	notificationClient "github.com/LoLe05/jarimae-sub001/internal/integrations/notification"
	reservationsService "github.com/LoLe05/jarimae-sub001/internal/service/reservations"
	storesService "github.com/LoLe05/jarimae-sub001/internal/service/stores"
	verificationService "github.com/LoLe05/jarimae-sub001/internal/service/verification"
	createReservationUC "github.com/LoLe05/jarimae-sub001/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/LoLe05/jarimae-sub001/internal/usecase/get_availability"
	"github.com/LoLe05/jarimae-sub001/pkg/dbmetrics"
	"github.com/LoLe05/jarimae-sub001/pkg/logger"
	"github.com/LoLe05/jarimae-sub001/pkg/metrics"
	"github.com/LoLe05/jarimae-sub001/pkg/simpletxmanager"
	"github.com/LoLe05/jarimae-sub001/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting Jarimae reservation service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (хранилище кодов подтверждения)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционного клиента уведомлений
	notifier := notificationClient.NewClient(
		cfg.Notifications.URL,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		log,
	)
	log.Info("Notification client initialized (url=%s, timeout=%ds)",
		cfg.Notifications.URL, cfg.Notifications.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		storeRepository       *storeRepo.Repository
	)

	// Общий интерфейс обоих менеджеров транзакций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		storeRepository = storeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		storeRepository = storeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		storeRepository,
		log,
	)
	storesSvc := storesService.NewService(
		storeRepository,
		txMgr,
		log,
	)

	codeStore := verificationCache.NewStore(rdb)
	verificationSvc := verificationService.NewService(
		codeStore,
		verificationService.Config{
			CodeTTL:        time.Duration(cfg.Verification.CodeTTLSeconds) * time.Second,
			IssuePerMinute: cfg.Verification.IssuePerMinute,
			IssueBurst:     cfg.Verification.IssueBurst,
		},
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		storeRepository,
		reservationRepository,
		txMgr,
		notifier,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		storeRepository,
		reservationRepository,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getStoreReservations := getStoreReservationsHandler.NewHandler(reservationsSvc, log)
	getStoreSchedule := getStoreScheduleHandler.NewHandler(storesSvc, log)
	updateStoreSchedule := updateStoreScheduleHandler.NewHandler(storesSvc, log)
	requestVerification := requestVerificationHandler.NewHandler(verificationSvc, log)
	confirmVerification := confirmVerificationHandler.NewHandler(verificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчёт доступности слотов на дату
	api.HandleFunc("/stores/{storeId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Недельное расписание и настройки броней заведения
	api.HandleFunc("/stores/{storeId}/schedule",
		getStoreSchedule.Handle).Methods(http.MethodGet)

	// Выдача и проверка кодов подтверждения телефона
	api.HandleFunc("/auth/verification-codes",
		requestVerification.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/verification-codes/confirm",
		confirmVerification.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Обновление статуса брони (для владельцев заведений)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// История броней пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Управление заведением (для владельцев) ---
	// Список броней заведения
	protected.HandleFunc("/stores/{storeId}/reservations", getStoreReservations.Handle).Methods(http.MethodGet)

	// Обновление расписания и настроек броней
	protected.HandleFunc("/stores/{storeId}/schedule", updateStoreSchedule.Handle).Methods(http.MethodPut)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
