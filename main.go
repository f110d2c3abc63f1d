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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"gigboard/internal/artists"
	"gigboard/internal/artists/artist_api"
	artistdb "gigboard/internal/artists/db"
	"gigboard/internal/config"
	"gigboard/internal/kafka"
	"gigboard/internal/listings"
	"gigboard/internal/listings/listing_api"
	"gigboard/internal/logger"
	"gigboard/internal/shows"
	showdb "gigboard/internal/shows/db"
	"gigboard/internal/shows/show_api"
	"gigboard/internal/venues"
	venuedb "gigboard/internal/venues/db"
	"gigboard/internal/venues/venue_api"
)

func connectDatabase(cfg config.DatabaseConfig, log *logger.Logger) *bun.DB {
	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.DSN)
		if err != nil {
			log.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)

	log.Info("DATABASE", "PostgreSQL connection successful")
	return bun.NewDB(sqldb, pgdialect.New())
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting gigboard directory service")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()

	bunDB := connectDatabase(cfg.Database, log)
	defer bunDB.Close()

	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics)
		defer producer.Close()
		log.Info("KAFKA", fmt.Sprintf("Kafka producer initialized for brokers %v", cfg.Kafka.Brokers))

		requiredTopics := []string{
			cfg.Kafka.Topics.VenueEvents,
			cfg.Kafka.Topics.ArtistEvents,
			cfg.Kafka.Topics.ShowEvents,
		}
		if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, requiredTopics); err != nil {
			log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
		} else {
			log.Info("KAFKA", "Required topics ensured successfully")
		}
	} else {
		log.Info("KAFKA", "Event publishing disabled")
	}

	venueStore := &venuedb.DB{Bun: bunDB}
	artistStore := &artistdb.DB{Bun: bunDB}
	showStore := &showdb.DB{Bun: bunDB}

	var venueEvents venues.EventPublisher
	var artistEvents artists.EventPublisher
	var showEvents shows.EventPublisher
	if producer != nil {
		venueEvents = producer
		artistEvents = producer
		showEvents = producer
	}

	venueService := venues.NewService(venueStore, showStore, artistStore, venueEvents)
	artistService := artists.NewService(artistStore, showStore, venueStore, artistEvents)
	showService := shows.NewService(showStore, venueStore, artistStore, showEvents)
	listingService := listings.NewService(venueStore, artistStore, showStore)

	venueHandler := venue_api.NewHandler(venueService, log)
	artistHandler := artist_api.NewHandler(artistService, log)
	showHandler := show_api.NewHandler(showService, log)
	listingHandler := listing_api.NewHandler(listingService, log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/home", listingHandler.Home)

		r.Route("/venues", func(r chi.Router) {
			r.Get("/", listingHandler.ListVenues)
			r.Get("/search", listingHandler.SearchVenues)
			r.Post("/", venueHandler.CreateVenue)
			r.Get("/{venueID}", venueHandler.GetVenue)
			r.Put("/{venueID}", venueHandler.UpdateVenue)
			r.Delete("/{venueID}", venueHandler.DeleteVenue)
		})
		log.Info("ROUTER", "Venue routes registered under /api/venues")

		r.Route("/artists", func(r chi.Router) {
			r.Get("/", listingHandler.ListArtists)
			r.Get("/search", listingHandler.SearchArtists)
			r.Post("/", artistHandler.CreateArtist)
			r.Get("/{artistID}", artistHandler.GetArtist)
			r.Put("/{artistID}", artistHandler.UpdateArtist)
			r.Delete("/{artistID}", artistHandler.DeleteArtist)
		})
		log.Info("ROUTER", "Artist routes registered under /api/artists")

		r.Route("/shows", func(r chi.Router) {
			r.Get("/", showHandler.ListShows)
			r.Post("/", showHandler.CreateShow)
		})
		log.Info("ROUTER", "Show routes registered under /api/shows")
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Gigboard service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	}

	log.Info("APP", "Service stopped")
}
