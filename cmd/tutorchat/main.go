package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	tutorchat "github.com/ongiao-ai/tutorchat"
	"github.com/ongiao-ai/tutorchat/models/gemini"
	"github.com/ongiao-ai/tutorchat/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	config := tutorchat.NewConfig().
		WithModelName(os.Getenv("GEMINI_MODEL"))
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		config.WithAddr(addr)
	}

	model, err := gemini.New(context.Background(), apiKey, config.ModelName, config.SystemInstruction)
	if err != nil {
		log.Fatalf("Failed to create Gemini model: %v", err)
	}

	srv := server.New(config, model)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
