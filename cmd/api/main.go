package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/frontandrew/rental/internal/delivery/http"
	"github.com/frontandrew/rental/internal/pkg/config"
	"github.com/frontandrew/rental/internal/pkg/database"
	"github.com/frontandrew/rental/internal/pkg/jwt"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/repository/postgres"
	"github.com/frontandrew/rental/internal/usecase/auth"
	"github.com/frontandrew/rental/internal/usecase/base"
	"github.com/frontandrew/rental/internal/usecase/car"
	"github.com/frontandrew/rental/internal/usecase/client"
	"github.com/frontandrew/rental/internal/usecase/mechanic"
	"github.com/frontandrew/rental/internal/usecase/order"
	"github.com/frontandrew/rental/internal/usecase/repair"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting RENTAL API server", map[string]interface{}{
		"version": "1.0.0",
	})

	// =========================================================================
	// Подключение к PostgreSQL
	// =========================================================================

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer database.Close(db)

	log.Info("Connected to PostgreSQL", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	// =========================================================================
	// Создание repositories
	// =========================================================================

	agentRepo := postgres.NewAgentRepository(db)
	baseRepo := postgres.NewBaseRepository(db)
	carRepo := postgres.NewCarRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	mechanicRepo := postgres.NewMechanicRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	archivedOrderRepo := postgres.NewArchivedOrderRepository(db)
	repairRepo := postgres.NewRepairRepository(db)

	log.Info("Repositories initialized")

	// =========================================================================
	// Создание JWT token service
	// =========================================================================

	tokenService := jwt.NewTokenService(cfg.JWT.SecretKey)

	log.Info("JWT token service initialized")

	// =========================================================================
	// Создание use case services
	// =========================================================================

	authService := auth.NewService(agentRepo, baseRepo, tokenService, log)
	baseService := base.NewService(baseRepo, log)
	carService := car.NewService(carRepo, baseRepo, log)
	clientService := client.NewService(clientRepo, log)
	mechanicService := mechanic.NewService(mechanicRepo, baseRepo, log)
	orderService := order.NewService(orderRepo, archivedOrderRepo, clientRepo, carRepo, log)
	repairService := repair.NewService(repairRepo, mechanicRepo, carRepo, log)

	log.Info("Use case services initialized")

	// =========================================================================
	// Создание HTTP handlers
	// =========================================================================

	authHandler := deliveryHTTP.NewAuthHandler(authService, log)
	agentHandler := deliveryHTTP.NewAgentHandler(authService, log)
	orderHandler := deliveryHTTP.NewOrderHandler(orderService, log)
	archivedOrderHandler := deliveryHTTP.NewArchivedOrderHandler(orderService, log)
	baseHandler := deliveryHTTP.NewBaseHandler(baseService, log)
	carHandler := deliveryHTTP.NewCarHandler(carService, log)
	clientHandler := deliveryHTTP.NewClientHandler(clientService, log)
	mechanicHandler := deliveryHTTP.NewMechanicHandler(mechanicService, log)
	repairHandler := deliveryHTTP.NewRepairHandler(repairService, log)

	log.Info("HTTP handlers initialized")

	// =========================================================================
	// Создание и настройка HTTP router
	// =========================================================================

	router := deliveryHTTP.NewRouter(
		authHandler,
		agentHandler,
		orderHandler,
		archivedOrderHandler,
		baseHandler,
		carHandler,
		clientHandler,
		mechanicHandler,
		repairHandler,
		tokenService,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Запуск сервера в goroutine
	// =========================================================================

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	// Канал для получения сигналов операционной системы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Блокируемся до получения сигнала или ошибки сервера
	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		// Даем серверу 30 секунд на graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			// Принудительное закрытие
			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
