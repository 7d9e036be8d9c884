package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/elfem/simulador-tributario/internal/infra/http/handlers"
	"github.com/elfem/simulador-tributario/internal/infra/http/middleware"
	"github.com/elfem/simulador-tributario/internal/infra/mail"
	"github.com/elfem/simulador-tributario/internal/infra/queue"
	"github.com/elfem/simulador-tributario/internal/infra/storage"
	"github.com/elfem/simulador-tributario/internal/usecase"
)

func main() {
	godotenv.Load()

	port := getEnv("PORT", "5000")
	debug := strings.EqualFold(os.Getenv("DEBUG"), "true")
	dataFile := getEnv("DATA_FILE", "dados_controle.csv")
	staticDir := getEnv("STATIC_DIR", "static")
	adminUser := getEnv("ADMIN_USER", "Elfem/154")
	adminPass := getEnv("ADMIN_PASS", "5567E")

	// 1. Store (o arquivo CSV é o banco de dados inteiro)
	store := storage.NewCSVLeadStore(dataFile)

	// 2. Fila + notificação por email (opcionais: sem RABBITMQ_URL o
	// fluxo de simulação segue idêntico, só sem eventos)
	var producer queue.ProducerInterface
	var rabbitMQ *queue.RabbitMQ

	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		var err error
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("❌ RabbitMQ configurado mas indisponível: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		if mailSender := mailSenderFromEnv(); mailSender != nil {
			worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
			go worker.Start(queue.QueueName)
		} else {
			log.Println("⚠️ Fila ativa sem SMTP configurado; eventos ficam na fila")
		}
	}

	// 3. UseCases
	simularUC := usecase.NewSimularImpostosUseCase(store, producer)

	// 4. Handlers
	simulacaoHandler := handlers.NewSimulacaoHandler(simularUC)
	adminHandler := handlers.NewAdminHandler(store, adminUser, adminPass)
	spaHandler := handlers.NewSPAHandler(staticDir)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(dataFile, rabbitConn, mailSenderFromEnv() != nil)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if debug {
		r.Use(chimiddleware.Logger)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/calcular", simulacaoHandler.Handle)
	r.Post("/admin/login", adminHandler.HandleLogin)
	r.Get("/admin/dados", adminHandler.HandleDados)
	r.Get("/admin/estatisticas", adminHandler.HandleEstatisticas)
	r.Post("/admin/marcar_contato", adminHandler.HandleMarcarContato)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Tudo que sobrar é o frontend (SPA com fallback pro index.html)
	r.NotFound(spaHandler.Handle)

	log.Printf("🔥 Simulador tributário rodando na porta :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func mailSenderFromEnv() *mail.EmailSender {
	host := os.Getenv("MAIL_HOST")
	to := os.Getenv("MAIL_TO")
	if host == "" || to == "" {
		return nil
	}

	smtpPort, err := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	return mail.NewEmailSender(host, smtpPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), to)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
