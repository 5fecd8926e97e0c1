package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/brandleads/internal/config"
	"github.com/xavierca1/brandleads/internal/infra/auth"
	"github.com/xavierca1/brandleads/internal/infra/database"
	"github.com/xavierca1/brandleads/internal/infra/http/handlers"
	"github.com/xavierca1/brandleads/internal/infra/http/middleware"
	"github.com/xavierca1/brandleads/internal/infra/mail"
	"github.com/xavierca1/brandleads/internal/infra/queue"
	"github.com/xavierca1/brandleads/internal/usecase"
)

func main() {
	cfg := config.Load()

	store, err := database.NewStore(cfg.Data.Dir)
	if err != nil {
		log.Fatal(err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQP.User, cfg.AMQP.Password, cfg.AMQP.Host, cfg.AMQP.Port)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(store)
	planRepo := database.NewPlanRepository(store)
	notificationRepo := database.NewNotificationRepository(store)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From,
	)
	hasher := auth.NewBcryptHasher()
	verifier := auth.NewAdminVerifier(cfg.Admin.User, cfg.Admin.PasswordHash, cfg.Admin.Password)

	// 3. Worker (drains the mail outbox queue into SMTP)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, producer, cfg.Mail.OperatorInbox)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, notificationRepo)
	recordPaymentUC := usecase.NewRecordPaymentUseCase(leadRepo)
	issueCredentialsUC := usecase.NewIssueCredentialsUseCase(leadRepo, hasher, producer)
	clientLoginUC := usecase.NewClientLoginUseCase(leadRepo, hasher)
	descriptionUC := usecase.NewDescriptionUpdateUseCase(leadRepo, notificationRepo, producer, cfg.Mail.OperatorInbox)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateLeadUC, leadRepo)
	paymentHandler := handlers.NewPaymentHandler(recordPaymentUC)
	credentialHandler := handlers.NewCredentialHandler(issueCredentialsUC, clientLoginUC)
	descriptionHandler := handlers.NewDescriptionHandler(descriptionUC)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	planHandler := handlers.NewPlanHandler(planRepo)
	healthHandler := handlers.NewHealthHandler(cfg.Data.Dir, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Public surface: the marketing-site form and the client portal
		r.Post("/lead", leadHandler.Create)
		r.Post("/lead/{id}/description-request", descriptionHandler.Request)
		r.Post("/client/login", credentialHandler.ClientLogin)
		r.Get("/plans", planHandler.List)
		r.Get("/plans/{id}", planHandler.Get)

		// Admin surface
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.BasicAuth(verifier))

			r.Get("/leads", leadHandler.List)
			r.Get("/leads/{id}", leadHandler.Get)
			r.Put("/leads/{id}", leadHandler.Update)
			r.Delete("/leads/{id}", leadHandler.Delete)
			r.Put("/leads/{id}/remark", leadHandler.SetRemark)
			r.Put("/leads/{id}/payment", paymentHandler.Record)
			r.Put("/leads/{id}/total-amount", paymentHandler.SetTotal)
			r.Post("/leads/{id}/credentials", credentialHandler.Issue)
			r.Put("/leads/{id}/description-request/{requestId}", descriptionHandler.Resolve)

			r.Get("/notifications", notificationHandler.List)
			r.Put("/notifications/read-all", notificationHandler.MarkAllRead)
			r.Put("/notifications/{id}/read", notificationHandler.MarkRead)
			r.Delete("/notifications/{id}", notificationHandler.Delete)

			r.Post("/plans", planHandler.Create)
			r.Put("/plans/{id}", planHandler.Update)
			r.Delete("/plans/{id}", planHandler.Delete)
		})
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("🔥 BrandLeads server running on %s", addr)
	http.ListenAndServe(addr, r)
}
