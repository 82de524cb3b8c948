package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken    string
	AdminChatID int64
	DBUser      string
	DBPassword  string
	DBName      string
	DBHost      string
	DBPort      string
	HTTPAddr    string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Printf("config.Load: no .env file found - using env variables")
	}

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		HTTPAddr:   os.Getenv("HTTP_ADDR"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("config.Load: BOT_TOKEN is required")
	}

	rawAdmin := os.Getenv("ADMIN_CHAT_ID")
	if rawAdmin == "" {
		return nil, fmt.Errorf("config.Load: ADMIN_CHAT_ID is required")
	}

	cfg.AdminChatID, err = strconv.ParseInt(rawAdmin, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("config.Load: ADMIN_CHAT_ID must be a chat id: %w", err)
	}

	if cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("config.Load: DB_USER, DB_PASSWORD, DB_NAME are required")
	}

	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}

	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8081"
	}

	return cfg, nil
}
