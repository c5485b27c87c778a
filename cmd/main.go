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

	cancelBookingHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/check_availability"
	createBookingHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/create_booking"
	createSalonHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/create_salon"
	getAvailableSlotsHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/get_booking"
	getSalonHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/get_salon"
	getSalonBookingsHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/get_salon_bookings"
	getUserBookingsHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/get_user_bookings"
	listOwnerSalonsHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/list_owner_salons"
	listSalonsHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/list_salons"
	updateBookingStatusHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/update_booking_status"
	updateSalonHandler "github.com/avelanse/salon-booking-service/internal/api/handlers/update_salon"
	"github.com/avelanse/salon-booking-service/internal/api/middleware"
	"github.com/avelanse/salon-booking-service/internal/config"
	bookingRepo "github.com/avelanse/salon-booking-service/internal/infra/storage/booking"
	salonRepo "github.com/avelanse/salon-booking-service/internal/infra/storage/salon"
	bookingsService "github.com/avelanse/salon-booking-service/internal/service/bookings"
	salonsService "github.com/avelanse/salon-booking-service/internal/service/salons"
	checkAvailabilityUC "github.com/avelanse/salon-booking-service/internal/usecase/check_availability"
	createBookingUC "github.com/avelanse/salon-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avelanse/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/avelanse/salon-booking-service/pkg/dbmetrics"
	"github.com/avelanse/salon-booking-service/pkg/logger"
	"github.com/avelanse/salon-booking-service/pkg/metrics"
	"github.com/avelanse/salon-booking-service/pkg/simpletxmanager"
	"github.com/avelanse/salon-booking-service/pkg/txmanager"
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

	log.Info("Starting salon-booking-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		salonRepository   *salonRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		salonRepository = salonRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		salonRepository = salonRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		salonRepository,
		log,
	)
	salonSvc := salonsService.NewService(
		salonRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		salonRepository,
		txMgr,
		&createBookingUC.RealTimeProvider{},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		salonRepository,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		salonRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)
	createSalon := createSalonHandler.NewHandler(salonSvc, log)
	updateSalon := updateSalonHandler.NewHandler(salonSvc, log)
	getSalon := getSalonHandler.NewHandler(salonSvc, log)
	listSalons := listSalonsHandler.NewHandler(salonSvc, log)
	listOwnerSalons := listOwnerSalonsHandler.NewHandler(salonSvc, log)

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

	// Список активных салонов
	api.HandleFunc("/salons", listSalons.Handle).Methods(http.MethodGet)

	// Карточка салона
	api.HandleFunc("/salons/{salonId}", getSalon.Handle).Methods(http.MethodGet)

	// Доступные слоты салона на дату
	api.HandleFunc("/salons/{salonId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Ориентировочная проверка вместимости конкретного слота
	api.HandleFunc("/salons/{salonId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования (владелец салона)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования (клиент или владелец салона)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для владельцев) ---
	// Создание салона
	protected.HandleFunc("/salons", createSalon.Handle).Methods(http.MethodPost)

	// Обновление салона
	protected.HandleFunc("/salons/{salonId}", updateSalon.Handle).Methods(http.MethodPut)

	// Список бронирований салона
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)

	// Салоны владельца (включая неактивные)
	protected.HandleFunc("/users/{userId}/salons", listOwnerSalons.Handle).Methods(http.MethodGet)

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
