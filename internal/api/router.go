package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/SanjayFlutterTrainer/post-server/internal/api/handlers"
	"github.com/SanjayFlutterTrainer/post-server/internal/auth"
	"github.com/SanjayFlutterTrainer/post-server/internal/services"
	"github.com/SanjayFlutterTrainer/post-server/internal/websocket"
)

// RouterDeps bundles everything the route table needs.
type RouterDeps struct {
	Tokens        *auth.Manager
	Hub           *websocket.Hub
	Users         services.UserServiceProvider
	Tasks         services.TaskServiceProvider
	Posts         services.PostServiceProvider
	Products      services.ProductServiceProvider
	Cart          services.CartServiceProvider
	Feedback      services.FeedbackServiceProvider
	Events        services.EventServiceProvider
	AllowedOrigin string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	allowedOrigin := deps.AllowedOrigin
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(deps.Users, deps.Tokens)
	taskHandler := handlers.NewTaskHandler(deps.Tasks)
	postHandler := handlers.NewPostHandler(deps.Posts)
	productHandler := handlers.NewProductHandler(deps.Products)
	cartHandler := handlers.NewCartHandler(deps.Cart)
	feedbackHandler := handlers.NewFeedbackHandler(deps.Feedback)
	eventHandler := handlers.NewEventHandler(deps.Events)
	wsHandler := handlers.NewWebSocketHandler(deps.Hub)

	// Public routes
	r.Post("/register", userHandler.Register)
	r.Post("/login", userHandler.Login)
	r.Post("/feedback", feedbackHandler.Create)
	r.Get("/products", productHandler.GetAll)
	r.Get("/public-products", productHandler.GetAll)
	// Deliberately unauthenticated mutation routes, preserved from the
	// original e-commerce surface.
	r.Put("/update-stock/{id}", productHandler.UpdateStock)
	r.Delete("/delete-product/{id}", productHandler.Delete)

	// Activity feed websocket
	r.Get("/ws", wsHandler.Serve)

	// Token-gated routes
	r.Group(func(r chi.Router) {
		r.Use(deps.Tokens.Middleware())

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.Create)
			r.Get("/", taskHandler.GetAll)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", postHandler.Create)
			r.Get("/", postHandler.GetAll)
			r.Put("/{id}", postHandler.Update)
			r.Delete("/{id}", postHandler.Delete)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Post("/", cartHandler.AddItem)
			r.Get("/", cartHandler.GetAll)
			r.Put("/{id}", cartHandler.UpdateQuantity)
			r.Delete("/{id}", cartHandler.Delete)
		})

		r.Get("/me", userHandler.GetMe)
		r.Post("/products", productHandler.Create)
		r.Get("/events", eventHandler.GetRecent)
	})

	return r
}
