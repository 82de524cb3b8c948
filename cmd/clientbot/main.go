package main

import (
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"

	"github.com/botstelegram2025/vendasdigitais/internal/bot"
	"github.com/botstelegram2025/vendasdigitais/internal/config"
	"github.com/botstelegram2025/vendasdigitais/internal/db"
	"github.com/botstelegram2025/vendasdigitais/internal/dialog"
	"github.com/botstelegram2025/vendasdigitais/internal/health"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading .env: %v", err)
	}

	database, err := db.New(cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer database.Close()

	err = db.RunMigrations(database.Conn, "db_scripts/init.sql")
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Error creating telegram bot: %v", err)
	}

	clientsRepo := db.NewClientRepository(database.Conn)

	catalog := dialog.NewCatalog(dialog.DefaultCatalogConfig())
	store := dialog.NewStore()
	engine := dialog.NewEngine(store, catalog, clientsRepo)

	go func() {
		log.Printf("Health endpoint listening on %s", cfg.HTTPAddr)
		if err := http.ListenAndServe(cfg.HTTPAddr, health.NewRouter(database.Conn)); err != nil {
			log.Printf("Health endpoint stopped: %v", err)
		}
	}()

	botService := bot.New(botAPI, engine, clientsRepo, cfg.AdminChatID)

	log.Printf("Bot started as @%s", botAPI.Self.UserName)

	botService.Start()
}
