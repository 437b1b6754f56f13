package main

import (
	"fmt"
	"log"
	"net/http"

	"concert-ticketing-platform/internal/config"
	"concert-ticketing-platform/internal/database"
	"concert-ticketing-platform/internal/handlers"
	"concert-ticketing-platform/internal/middleware"
	"concert-ticketing-platform/internal/queue"
	"concert-ticketing-platform/internal/repositories"
	"concert-ticketing-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Catalog cache; the service degrades to direct reads when the client
	// is nil or Redis is unreachable
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Order event publisher, optional
	var publisher services.OrderEventPublisher
	if cfg.Queue.URL != "" {
		amqpPublisher, err := queue.NewPublisher(cfg.Queue.URL)
		if err != nil {
			log.Printf("Warning: failed to connect to message queue: %v", err)
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
			log.Println("Message queue connection established successfully")
		}
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	venueRepo := repositories.NewVenueRepository(db.DB)
	concertRepo := repositories.NewConcertRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	catalogService := services.NewCatalogService(concertRepo, redisClient, cfg.Redis.CacheTTL)
	cartService := services.NewCartService(cartRepo, concertRepo)
	paymentService := services.NewMockPaymentService(cfg.Payment.ProcessingDelay)
	checkoutService := services.NewCheckoutService(
		cartRepo, orderRepo, concertRepo, paymentService, publisher, catalogService, cfg.Checkout)
	orderService := services.NewOrderService(orderRepo, ticketRepo)

	// Initialize middleware and handlers
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore, userRepo)
	authHandler := handlers.NewAuthHandler(authService, sessionMiddleware)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(venueRepo, concertRepo, catalogService)

	// Initialize router
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(sessionMiddleware.LoadUser)

	// Public catalog routes
	r.Get("/api/concerts", catalogHandler.ListConcerts)
	r.Get("/api/concerts/{id}", catalogHandler.GetConcert)
	r.Get("/api/genres", catalogHandler.ListGenres)

	// Authentication routes
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)
	r.Get("/api/auth/me", authHandler.Me)

	// Cart and checkout routes
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(sessionMiddleware.RequireAuth)
		r.Get("/", cartHandler.GetCart)
		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{id}", cartHandler.UpdateItem)
		r.Delete("/items/{id}", cartHandler.RemoveItem)
	})

	r.Route("/api/checkout", func(r chi.Router) {
		r.Use(sessionMiddleware.RequireAuth)
		r.Post("/", cartHandler.Checkout)
	})

	// Order history and tickets
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(sessionMiddleware.RequireAuth)
		r.Get("/", orderHandler.ListOrders)
		r.Get("/{id}", orderHandler.GetOrder)
		r.Get("/{id}/confirmation", orderHandler.GetConfirmation)
	})

	r.Route("/api/tickets", func(r chi.Router) {
		r.Use(sessionMiddleware.RequireAuth)
		r.Get("/", orderHandler.ListTickets)
		r.Get("/{id}", orderHandler.GetTicket)
	})

	// Admin routes
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(sessionMiddleware.RequireAuth)
		r.Use(sessionMiddleware.RequireAdmin)

		r.Get("/venues", adminHandler.ListVenues)
		r.Post("/venues", adminHandler.CreateVenue)
		r.Get("/venues/{id}", adminHandler.GetVenue)
		r.Put("/venues/{id}", adminHandler.UpdateVenue)
		r.Delete("/venues/{id}", adminHandler.DeactivateVenue)

		r.Get("/concerts", adminHandler.ListConcerts)
		r.Post("/concerts", adminHandler.CreateConcert)
		r.Put("/concerts/{id}", adminHandler.UpdateConcert)
		r.Delete("/concerts/{id}", adminHandler.DeactivateConcert)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"concert-ticketing-platform"}`))
	})

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s (Environment: %s)", serverAddr, cfg.Server.Env)
	log.Fatal(http.ListenAndServe(serverAddr, r))
}
