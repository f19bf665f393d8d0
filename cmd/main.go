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

	cancelReservationHandler "github.com/rheareserve/booking-service/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/rheareserve/booking-service/internal/api/handlers/create_reservation"
	availabilityCalendarHandler "github.com/rheareserve/booking-service/internal/api/handlers/get_availability_calendar"
	businessReservationsHandler "github.com/rheareserve/booking-service/internal/api/handlers/get_business_reservations"
	clientReservationsHandler "github.com/rheareserve/booking-service/internal/api/handlers/get_client_reservations"
	dayBlocksHandler "github.com/rheareserve/booking-service/internal/api/handlers/get_day_blocks"
	generalAvailabilityHandler "github.com/rheareserve/booking-service/internal/api/handlers/get_general_availability"
	getReservationHandler "github.com/rheareserve/booking-service/internal/api/handlers/get_reservation"
	serviceStaffHandler "github.com/rheareserve/booking-service/internal/api/handlers/get_service_staff"
	staffAvailabilityHandler "github.com/rheareserve/booking-service/internal/api/handlers/get_staff_availability"
	updateStatusHandler "github.com/rheareserve/booking-service/internal/api/handlers/update_reservation_status"
	"github.com/rheareserve/booking-service/internal/api/middleware"
	"github.com/rheareserve/booking-service/internal/config"
	"github.com/rheareserve/booking-service/internal/infra/cache"
	clientRepo "github.com/rheareserve/booking-service/internal/infra/storage/client"
	reservationRepo "github.com/rheareserve/booking-service/internal/infra/storage/reservation"
	scheduleRepo "github.com/rheareserve/booking-service/internal/infra/storage/schedule"
	mailServiceClient "github.com/rheareserve/booking-service/internal/integrations/mailservice"
	reservationsService "github.com/rheareserve/booking-service/internal/service/reservations"
	staffService "github.com/rheareserve/booking-service/internal/service/staff"
	createReservationUC "github.com/rheareserve/booking-service/internal/usecase/create_reservation"
	availabilityCalendarUC "github.com/rheareserve/booking-service/internal/usecase/get_availability_calendar"
	dayBlocksUC "github.com/rheareserve/booking-service/internal/usecase/get_day_blocks"
	generalAvailabilityUC "github.com/rheareserve/booking-service/internal/usecase/get_general_availability"
	staffAvailabilityUC "github.com/rheareserve/booking-service/internal/usecase/get_staff_availability"
	"github.com/rheareserve/booking-service/pkg/dbmetrics"
	"github.com/rheareserve/booking-service/pkg/logger"
	"github.com/rheareserve/booking-service/pkg/metrics"
	"github.com/rheareserve/booking-service/pkg/simpletxmanager"
	"github.com/rheareserve/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
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

	// Инициализируем кеш календаря доступности
	var calendarCache availabilityCalendarUC.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedis(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisCache.Close()
		calendarCache = redisCache
		log.Info("Redis cache connected (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	} else {
		calendarCache = cache.NewNoop()
		log.Info("Redis disabled, availability calendar is computed on every request")
	}

	// Инициализируем клиент почтового сервиса
	var mailClient createReservationUC.MailClient
	if cfg.MailService.Enabled {
		mailClient = mailServiceClient.NewClient(
			cfg.MailService.URL,
			cfg.MailService.APIKey,
			cfg.MailService.FromEmail,
			time.Duration(cfg.MailService.Timeout)*time.Second,
			cfg.MailService.RateLimit,
			log,
		)
		log.Info("Mail service client initialized (url=%s, timeout=%ds, rate=%.1f/s)",
			cfg.MailService.URL, cfg.MailService.Timeout, cfg.MailService.RateLimit)
	} else {
		mailClient = mailServiceClient.NewNoop()
		log.Info("Mail service disabled, confirmation mails are skipped")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository    *scheduleRepo.Repository
		reservationRepository *reservationRepo.Repository
		clientRepository      *clientRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	staffSvc := staffService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	generalAvailabilityUseCase := generalAvailabilityUC.NewUseCase(
		scheduleRepository,
		reservationRepository,
		log,
	)
	staffAvailabilityUseCase := staffAvailabilityUC.NewUseCase(
		scheduleRepository,
		reservationRepository,
		log,
	)
	dayBlocksUseCase := dayBlocksUC.NewUseCase(
		scheduleRepository,
		reservationRepository,
		log,
	)
	availabilityCalendarUseCase := availabilityCalendarUC.NewUseCase(
		scheduleRepository,
		calendarCache,
		time.Duration(cfg.Redis.CalendarTTL)*time.Second,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		scheduleRepository,
		reservationRepository,
		clientRepository,
		mailClient,
		cfg.MailService.ReservationTemplateID,
		txMgr,
		log,
	)

	// Инициализируем handlers
	generalAvailability := generalAvailabilityHandler.NewHandler(generalAvailabilityUseCase, log)
	staffAvailability := staffAvailabilityHandler.NewHandler(staffAvailabilityUseCase, log)
	dayBlocks := dayBlocksHandler.NewHandler(dayBlocksUseCase, log)
	availabilityCalendar := availabilityCalendarHandler.NewHandler(availabilityCalendarUseCase, log)
	serviceStaff := serviceStaffHandler.NewHandler(staffSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(reservationsSvc, log)
	businessReservations := businessReservationsHandler.NewHandler(reservationsSvc, log)
	clientReservations := clientReservationsHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Общая доступность бизнеса на горизонте в 28 дней
	api.HandleFunc("/availability/general/{businessId}/{serviceId}",
		generalAvailability.Handle).Methods(http.MethodGet)

	// Доступность конкретного сотрудника
	api.HandleFunc("/availability/staff/{businessId}/{serviceId}/{staffId}",
		staffAvailability.Handle).Methods(http.MethodGet)

	// Свободные блоки на конкретную дату
	api.HandleFunc("/availability/blocks/{businessId}/{serviceId}/{date}",
		dayBlocks.Handle).Methods(http.MethodGet)

	// Календарь доступности (дневные флаги)
	api.HandleFunc("/availability/calendar/{businessId}",
		availabilityCalendar.Handle).Methods(http.MethodGet)

	// Сотрудники, оказывающие услугу
	api.HandleFunc("/businesses/{businessId}/services/{serviceId}/staff",
		serviceStaff.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Client-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Резервации ---
	// Создание резервации
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение резервации по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена резервации
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История резерваций клиента
	protected.HandleFunc("/clients/{clientId}/reservations", clientReservations.Handle).Methods(http.MethodGet)

	// --- Панель бизнеса ---
	// Список резерваций бизнеса
	protected.HandleFunc("/businesses/{businessId}/reservations", businessReservations.Handle).Methods(http.MethodGet)

	// Смена статуса резервации
	protected.HandleFunc("/reservations/{reservationId}/status", updateStatus.Handle).Methods(http.MethodPatch)

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
