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

	cancelAppointmentHandler "github.com/bethsalao/BS-BookingService/internal/api/handlers/cancel_appointment"
	clearAppointmentsHandler "github.com/bethsalao/BS-BookingService/internal/api/handlers/clear_appointments"
	createAppointmentHandler "github.com/bethsalao/BS-BookingService/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/bethsalao/BS-BookingService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/bethsalao/BS-BookingService/internal/api/handlers/delete_service"
	exportAppointmentsHandler "github.com/bethsalao/BS-BookingService/internal/api/handlers/export_appointments"
	getAppointmentsHandler "github.com/bethsalao/BS-BookingService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/bethsalao/BS-BookingService/internal/api/handlers/get_available_slots"
	getServicesHandler "github.com/bethsalao/BS-BookingService/internal/api/handlers/get_services"
	"github.com/bethsalao/BS-BookingService/internal/api/middleware"
	"github.com/bethsalao/BS-BookingService/internal/config"
	"github.com/bethsalao/BS-BookingService/internal/domain"
	"github.com/bethsalao/BS-BookingService/internal/infra/cache/servicecache"
	appointmentRepo "github.com/bethsalao/BS-BookingService/internal/infra/storage/appointment"
	serviceRepo "github.com/bethsalao/BS-BookingService/internal/infra/storage/service"
	brevoClient "github.com/bethsalao/BS-BookingService/internal/integrations/brevo"
	appointmentsService "github.com/bethsalao/BS-BookingService/internal/service/appointments"
	servicesService "github.com/bethsalao/BS-BookingService/internal/service/services"
	createAppointmentUC "github.com/bethsalao/BS-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/bethsalao/BS-BookingService/internal/usecase/get_available_slots"
	"github.com/bethsalao/BS-BookingService/pkg/dbmetrics"
	"github.com/bethsalao/BS-BookingService/pkg/logger"
	"github.com/bethsalao/BS-BookingService/pkg/metrics"
	"github.com/bethsalao/BS-BookingService/pkg/simpletxmanager"
	"github.com/bethsalao/BS-BookingService/pkg/txmanager"
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

	log.Info("Starting BS-BookingService...")
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

	// Подключаемся к Redis (кеш каталога услуг). При выключенном Redis
	// кеш прозрачно ходит напрямую в репозиторий.
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unreachable, catalog cache degrades to direct reads: %v", err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
		defer rdb.Close()
	}

	// Инициализируем клиент транзакционной почты. При выключенных
	// уведомлениях ключ не передается и клиент отвечает ErrNotConfigured.
	brevoAPIKey := cfg.Notifications.APIKey
	if !cfg.Notifications.Enabled {
		brevoAPIKey = ""
	}
	notifier := brevoClient.NewClient(
		cfg.Notifications.BrevoURL,
		brevoAPIKey,
		cfg.Notifications.SenderName,
		cfg.Notifications.SenderEmail,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		log,
	)
	if cfg.Notifications.Enabled {
		log.Info("Email notifications enabled (sender=%s)", cfg.Notifications.SenderEmail)
	} else {
		log.Info("Email notifications disabled")
	}

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		apptRepository *appointmentRepo.Repository
		svcRepository  *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		apptRepository = appointmentRepo.NewRepository(wrappedDB)
		svcRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		apptRepository = appointmentRepo.NewRepository(db)
		svcRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Кеш каталога поверх репозитория услуг
	catalogCache := servicecache.New(rdb, svcRepository, time.Duration(cfg.Redis.TTL)*time.Second, log)

	// График работы салона
	workingHours := domain.WorkingHours{
		Start: cfg.Schedule.WorkStartHour,
		End:   cfg.Schedule.WorkEndHour,
	}

	// Инициализируем сервисы
	apptSvc := appointmentsService.NewService(
		apptRepository,
		catalogCache,
		log,
	)
	svcSvc := servicesService.NewService(
		svcRepository,
		catalogCache,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		apptRepository,
		catalogCache,
		notifier,
		txMgr,
		workingHours,
		cfg.Schedule.ClosedDays,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		apptRepository,
		catalogCache,
		workingHours,
		cfg.Schedule.ClosedDays,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(apptSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(apptSvc, log)
	clearAppointments := clearAppointmentsHandler.NewHandler(apptSvc, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(apptSvc, log)
	getServices := getServicesHandler.NewHandler(svcSvc, log)
	createService := createServiceHandler.NewHandler(svcSvc, log)
	deleteService := deleteServiceHandler.NewHandler(svcSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Доступные слоты для записи
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи клиентом
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.AdminToken))

	// --- Журнал записей ---
	// Список записей с фильтрацией
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// Выгрузка журнала в CSV
	protected.HandleFunc("/appointments/export", exportAppointments.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Полная очистка журнала
	protected.HandleFunc("/appointments", clearAppointments.Handle).Methods(http.MethodDelete)

	// --- Управление каталогом услуг ---
	// Создание услуги
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)

	// Удаление услуги
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

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
