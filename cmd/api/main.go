package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sitegen-backend/cmd"
	"sitegen-backend/internal/api"
	"sitegen-backend/internal/database"
	"sitegen-backend/internal/llm"
	"sitegen-backend/web"
)

type APIConfig struct {
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sqlite://site_generator.db"`
	GroqAPIKey  string `env:"GROQ_API_KEY"`
	LLMBaseURL  string `env:"LLM_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	LLMModel    string `env:"LLM_MODEL" envDefault:"moonshotai/kimi-k2-instruct"`
	APIPort     string `env:"API_PORT" envDefault:"8000"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`
}

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// A missing API key must not take the whole API down: sessions and
	// versions stay readable, only /generate answers with a fixed 500.
	var generator llm.Generator
	var titler *llm.Titler
	gen, err := llm.NewOpenAIGenerator(cfg.GroqAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
	if err != nil {
		log.Printf("Error initializing LLM client: %v", err)
	} else {
		generator = gen
		if titler, err = llm.NewTitler(cfg.GroqAPIKey, cfg.LLMBaseURL, cfg.LLMModel); err != nil {
			log.Printf("Error initializing title client: %v", err)
		}
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.Debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(api.SessionMiddleware)

	r.Get("/", web.IndexHandler())

	siteService := api.NewSiteService(db, generator, titler)
	siteService.AddRoutes(r)

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	// Goroutine for graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
	}

	log.Println("Server stopped.")
}
