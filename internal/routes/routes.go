package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tejavira2023/fitverse/internal/config"
	"github.com/tejavira2023/fitverse/internal/handlers"
	"github.com/tejavira2023/fitverse/internal/middleware"
	"github.com/tejavira2023/fitverse/internal/repository"
	"github.com/tejavira2023/fitverse/internal/services"
	assistantws "github.com/tejavira2023/fitverse/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	userProfileRepo := repository.NewUserProfileRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	assistantMessageRepo := repository.NewAssistantMessageRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)

	authHandler := handlers.NewAuthHandler(db, userRepo, userProfileRepo, cfg.JWTSecret)
	profileService := services.NewProfileService(userProfileRepo)
	onboardingHandler := handlers.NewOnboardingHandler(profileService)
	profileHandler := handlers.NewProfileHandler(profileService)
	progressionService := services.NewProgressionService(db, progressRepo, userProfileRepo)
	fitnessHandler := handlers.NewFitnessHandler(progressionService)
	rewardsService := services.NewRewardsService(userProfileRepo)
	rewardsHandler := handlers.NewRewardsHandler(rewardsService)
	assistantHub := assistantws.NewHub()
	go assistantHub.Run()
	assistantService := services.NewAssistantService(assistantMessageRepo, userProfileRepo, cfg.AssistantDelay)
	assistantHandler := handlers.NewAssistantHandler(assistantService, assistantHub, cfg.JWTSecret)
	consultationService := services.NewConsultationService(db, consultationRepo)
	recommendationService := services.NewRecommendationService()
	consultationHandler := handlers.NewConsultationHandler(consultationService, recommendationService, userProfileRepo)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	users := authProtected.Group("/users")
	users.Post("/onboarding", onboardingHandler.AccountSetup)
	users.Get("/profile", profileHandler.GetProfile)
	users.Put("/profile", profileHandler.UpdateProfile)

	fitness := authProtected.Group("/fitness")
	fitness.Get("/categories", fitnessHandler.ListCategories)
	fitness.Get("/categories/:id", fitnessHandler.GetCategory)
	fitness.Get("/progress", fitnessHandler.GetProgress)
	fitness.Post("/progress/complete", fitnessHandler.CompleteLevel)

	rewards := authProtected.Group("/rewards")
	rewards.Get("", rewardsHandler.GetSummary)
	rewards.Post("/coins", rewardsHandler.AdjustCoins)

	assistant := authProtected.Group("/assistant")
	assistant.Post("/messages", assistantHandler.SendMessage)
	assistant.Get("/messages", assistantHandler.GetHistory)
	assistant.Delete("/messages", assistantHandler.ClearHistory)

	consultants := authProtected.Group("/consultants")
	consultants.Get("", consultationHandler.ListConsultants)
	consultants.Get("/recommended", consultationHandler.RecommendedConsultants)
	consultants.Get("/:id", consultationHandler.GetConsultant)

	consultations := authProtected.Group("/consultations")
	consultations.Post("/book", consultationHandler.Book)
	consultations.Get("", consultationHandler.List)
	consultations.Post("/:id/cancel", consultationHandler.Cancel)

	api.Use("/v1/assistant/ws", assistantHandler.WebSocketAuth)
	api.Get("/v1/assistant/ws", websocket.New(assistantHandler.HandleWebSocket))
}
