package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlecomte/urbanstyle/internal/infra/database"
	"github.com/mlecomte/urbanstyle/internal/infra/http/handlers"
	"github.com/mlecomte/urbanstyle/internal/infra/http/middleware"
	"github.com/mlecomte/urbanstyle/internal/infra/mail"
	"github.com/mlecomte/urbanstyle/internal/infra/probe"
	"github.com/mlecomte/urbanstyle/internal/infra/queue"
	"github.com/mlecomte/urbanstyle/internal/usecase"
)

func main() {
	godotenv.Load()

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI est requis")
	}

	// 1. Stores
	// Conexão recusada não é fatal: o conteúdo degrada para o arquivo local.
	var mongoDB *database.MongoDB
	var primary usecase.ContentStore
	if db, err := database.NewMongoDB(mongoURI, envOr("MONGODB_DATABASE", "urbanstyle")); err != nil {
		log.Printf("⚠️ MongoDB indisponible au démarrage: %v", err)
	} else {
		mongoDB = db
		defer mongoDB.Close()
		primary = database.NewContentMongoStore(mongoDB)
	}

	fileStore := database.NewContentFileStore(envOr("CONTENT_FILE", "data/content.json"))
	contentStore := database.NewFallbackContentStore(primary, fileStore)
	prospectStore := database.NewProspectFileStore(envOr("PROSPECTS_FILE", "data/prospects.json"))
	campaignStore := database.NewCampaignFileStore(envOr("CAMPAIGNS_FILE", "data/campaigns.json"))

	// 2. Services
	contentService := usecase.NewContentService(contentStore)
	enricher := usecase.NewEnricher(prospectStore, probe.NewHTTPProber(0))

	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)
	campaignService := usecase.NewCampaignService(campaignStore, prospectStore, mailSender)

	// 3. Fila (opcional): com RabbitMQ, o enriquecimento roda num worker.
	var rabbitMQ *queue.RabbitMQ
	var producer usecase.EnrichmentProducer
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rmq, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("❌ RabbitMQ: %v", err)
		}
		rabbitMQ = rmq
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Ch)
		worker := queue.NewWorker(rabbitMQ.Ch, enricher)
		go worker.Start(queue.QueueName)
	}

	// 4. Handlers
	sessionMaxAge, _ := strconv.Atoi(os.Getenv("SESSION_MAX_AGE"))
	authHandler := handlers.NewAuthHandler(
		os.Getenv("ADMIN_PASSWORD"),
		os.Getenv("ADMIN_PASSWORD_HASH"),
		sessionMaxAge,
		os.Getenv("COOKIE_SECURE") == "true",
	)
	contentHandler := handlers.NewContentHandler(contentService, contentStore)
	productHandler := handlers.NewProductHandler(contentService)
	prospectHandler := handlers.NewProspectHandler(prospectStore)
	enrichHandler := handlers.NewEnrichHandler(enricher, producer)
	campaignHandler := handlers.NewCampaignHandler(campaignService)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(mongoDB, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(mongoDB, nil)
	}

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	// Vitrine publique
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/auth/login", authHandler.HandleLogin)
	r.Post("/auth/logout", authHandler.HandleLogout)
	r.Get("/content", contentHandler.HandleGet)
	r.Get("/content/products", productHandler.HandleList)

	// Back-office / dashboard
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Put("/content", contentHandler.HandleUpdate)
		r.Patch("/content", contentHandler.HandlePatch)
		r.Post("/content/init", contentHandler.HandleInit)

		r.Post("/content/products", productHandler.HandleCreate)
		r.Put("/content/products/{id}", productHandler.HandleUpdate)
		r.Delete("/content/products/{id}", productHandler.HandleDelete)

		r.Get("/prospects", prospectHandler.HandleList)
		r.Post("/prospects", prospectHandler.HandleCreate)
		r.Post("/prospects/import", prospectHandler.HandleImport)
		r.Get("/prospects/{id}", prospectHandler.HandleGet)
		r.Patch("/prospects/{id}", prospectHandler.HandleUpdate)
		r.Delete("/prospects/{id}", prospectHandler.HandleDelete)

		r.Get("/stats", prospectHandler.HandleStats)
		r.Post("/enrich", enrichHandler.HandleTrigger)

		r.Get("/campaigns", campaignHandler.HandleList)
		r.Post("/campaigns", campaignHandler.HandleCreate)
		r.Post("/campaigns/{id}/send", campaignHandler.HandleSend)
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Serveur UrbanStyle sur le port %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
