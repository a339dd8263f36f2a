package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/rafael/betterlife-api/internal/config"
	"github.com/rafael/betterlife-api/internal/database"
	"github.com/rafael/betterlife-api/internal/routes"
	"github.com/rafael/betterlife-api/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := services.InitPush(cfg.FCMServiceAccount); err != nil {
		log.Printf("Failed to initialize push notifications: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "Better Life API",
	})

	routes.Setup(app)

	log.Printf("Server listening on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
