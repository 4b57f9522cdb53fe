package http

import (
	"net/http"

	"github.com/frontandrew/rental/internal/delivery/http/middleware"
	"github.com/frontandrew/rental/internal/pkg/config"
	"github.com/frontandrew/rental/internal/pkg/jwt"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	authHandler          *AuthHandler
	agentHandler         *AgentHandler
	orderHandler         *OrderHandler
	archivedOrderHandler *ArchivedOrderHandler
	baseHandler          *BaseHandler
	carHandler           *CarHandler
	clientHandler        *ClientHandler
	mechanicHandler      *MechanicHandler
	repairHandler        *RepairHandler
	tokenService         *jwt.TokenService
	config               *config.Config
	logger               logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	authHandler *AuthHandler,
	agentHandler *AgentHandler,
	orderHandler *OrderHandler,
	archivedOrderHandler *ArchivedOrderHandler,
	baseHandler *BaseHandler,
	carHandler *CarHandler,
	clientHandler *ClientHandler,
	mechanicHandler *MechanicHandler,
	repairHandler *RepairHandler,
	tokenService *jwt.TokenService,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		authHandler:          authHandler,
		agentHandler:         agentHandler,
		orderHandler:         orderHandler,
		archivedOrderHandler: archivedOrderHandler,
		baseHandler:          baseHandler,
		carHandler:           carHandler,
		clientHandler:        clientHandler,
		mechanicHandler:      mechanicHandler,
		repairHandler:        repairHandler,
		tokenService:         tokenService,
		config:               config,
		logger:               logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check endpoint (публичный)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes (без аутентификации)
		r.Post("/auth", rt.authHandler.Login)

		// Protected routes (требуют токен)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(rt.tokenService))

			// Agent endpoints: регистрация доступна только администраторам
			r.Route("/agents", func(r chi.Router) {
				r.Get("/", rt.agentHandler.List)
				r.Get("/{id}", rt.agentHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminMiddleware())
					r.Post("/", rt.agentHandler.Register)
				})
			})

			// Order endpoints: удаление уводит заказ в архив
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", rt.orderHandler.List)
				r.Get("/{id}", rt.orderHandler.GetByID)
				r.Post("/", rt.orderHandler.Create)
				r.Put("/{id}", rt.orderHandler.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminMiddleware())
					r.Delete("/{id}", rt.orderHandler.Delete)
				})
			})

			// Archived order endpoints (только чтение, только администраторы)
			r.Route("/archived_orders", func(r chi.Router) {
				r.Use(middleware.AdminMiddleware())
				r.Get("/", rt.archivedOrderHandler.List)
				r.Get("/{id}", rt.archivedOrderHandler.GetByID)
			})

			// Base endpoints
			r.Route("/base", func(r chi.Router) {
				r.Get("/", rt.baseHandler.List)
				r.Get("/{id}", rt.baseHandler.GetByID)
				r.Post("/", rt.baseHandler.Create)
				r.Put("/{id}", rt.baseHandler.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminMiddleware())
					r.Delete("/{id}", rt.baseHandler.Delete)
				})
			})

			// Car endpoints
			r.Route("/cars", func(r chi.Router) {
				r.Get("/", rt.carHandler.List)
				r.Get("/{id}", rt.carHandler.GetByID)
				r.Post("/", rt.carHandler.Create)
				r.Put("/{id}", rt.carHandler.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminMiddleware())
					r.Delete("/{id}", rt.carHandler.Delete)
				})
			})

			// Client endpoints
			r.Route("/clients", func(r chi.Router) {
				r.Get("/", rt.clientHandler.List)
				r.Get("/{id}", rt.clientHandler.GetByID)
				r.Post("/", rt.clientHandler.Create)
				r.Put("/{id}", rt.clientHandler.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminMiddleware())
					r.Delete("/{id}", rt.clientHandler.Delete)
				})
			})

			// Mechanic endpoints
			r.Route("/mechanics", func(r chi.Router) {
				r.Get("/", rt.mechanicHandler.List)
				r.Get("/{id}", rt.mechanicHandler.GetByID)
				r.Post("/", rt.mechanicHandler.Create)
				r.Put("/{id}", rt.mechanicHandler.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminMiddleware())
					r.Delete("/{id}", rt.mechanicHandler.Delete)
				})
			})

			// Repair endpoints
			r.Route("/repairs", func(r chi.Router) {
				r.Get("/", rt.repairHandler.List)
				r.Get("/{id}", rt.repairHandler.GetByID)
				r.Post("/", rt.repairHandler.Create)
				r.Put("/{id}", rt.repairHandler.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminMiddleware())
					r.Delete("/{id}", rt.repairHandler.Delete)
				})
			})
		})
	})

	return r
}
