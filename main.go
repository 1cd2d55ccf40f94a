package main

import (
	"log"

	"PortfolioAPI/config/database"
	"PortfolioAPI/config/environment"
	"PortfolioAPI/middleware"
	"PortfolioAPI/routes"
	"PortfolioAPI/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment values")
	}

	cfg, err := environment.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("MongoDB connected")

	images, err := services.NewCloudinaryService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURI},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Config: cfg,
		Users:  services.NewUserService(db),
		Images: images,
		Mail:   services.NewSMTPMailer(cfg),
		Tokens: services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresDays),
	})

	log.Println("Server running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
