package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joykbiswas/cupcake-backend/internal/auth"
	"github.com/joykbiswas/cupcake-backend/internal/cache"
	"github.com/joykbiswas/cupcake-backend/internal/config"
	h "github.com/joykbiswas/cupcake-backend/internal/http"
	"github.com/joykbiswas/cupcake-backend/internal/identity"
	"github.com/joykbiswas/cupcake-backend/internal/metrics"
	"github.com/joykbiswas/cupcake-backend/internal/payments"
	"github.com/joykbiswas/cupcake-backend/internal/repository"
	"github.com/joykbiswas/cupcake-backend/internal/service"
)

func main() {
	cfg := config.Load()

	// Set up MongoDB connection; the database handle is shared by every
	// request for the life of the process.
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB database %s", cfg.MongoDBName)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	cakeRepo := repository.NewMongoCakeRepository(mongoDB)
	userRepo := repository.NewMongoUserRepository(mongoDB)
	cartRepo := repository.NewMongoCartRepository(mongoDB)
	paymentRepo := repository.NewMongoPaymentRepository(mongoDB)

	catalogCache := cache.NewRedisCache(redisClient)
	catalog := service.NewCatalogService(cakeRepo, catalogCache)
	users := service.NewUserService(userRepo, identity.AllowAll{})
	processor := payments.NewStripeProcessor(cfg.StripeSecretKey)
	payment := service.NewPaymentService(paymentRepo, cartRepo, processor)

	authManager := auth.NewManager(cfg.TokenSecret)
	serverMetrics := metrics.NewServerMetrics("api")

	server := h.NewServer(
		h.NewTokenHandler(authManager),
		h.NewCakeHandler(catalog, cfg.RequestTimeout),
		h.NewUserHandler(users, cfg.RequestTimeout),
		h.NewCartHandler(cartRepo, cfg.RequestTimeout),
		h.NewPaymentHandler(payment, cfg.RequestTimeout),
		h.NewStatsHandler(users, catalog, paymentRepo, cfg.RequestTimeout),
		authManager,
		serverMetrics,
		cfg.AllowedOrigins,
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      server.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Cake making management server running on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}

	log.Println("server exited")
}
