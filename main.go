package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/config"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/db"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/handler"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	adRepo := repository.NewAdRepository(database)
	dealerRepo := repository.NewDealerRepository(database)
	carRequestRepo := repository.NewCarRequestRepository(database)
	userRepo := repository.NewUserRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	financeRepo := repository.NewFinanceRepository(database)
	socialMediaRepo := repository.NewSocialMediaRepository(database)
	supportTicketRepo := repository.NewSupportTicketRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)
	settingRepo := repository.NewSettingRepository(database)
	activityRepo := repository.NewActivityRepository(database)
	dashboardRepo := repository.NewDashboardRepository(database)
	adminRepo := repository.NewAdminRepository(database)

	financeSvc := service.NewFinanceService(financeRepo, settingRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo)

	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	handlers := []interface {
		RegisterRoutes(rg *gin.RouterGroup)
	}{
		handler.NewAdHandler(adRepo),
		handler.NewDealerHandler(dealerRepo),
		handler.NewCarRequestHandler(carRequestRepo),
		handler.NewUserHandler(userRepo),
		handler.NewPaymentHandler(paymentRepo),
		handler.NewFinanceHandler(financeRepo, financeSvc),
		handler.NewSocialMediaHandler(socialMediaRepo),
		handler.NewSupportTicketHandler(supportTicketRepo),
		handler.NewNotificationHandler(notificationRepo),
		handler.NewSettingHandler(settingRepo),
		handler.NewDashboardHandler(dashboardRepo, activityRepo, dashboardSvc),
		handler.NewAuthHandler(adminRepo, []byte(cfg.JWTSecret), cfg.TokenTTL),
	}
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}

	log.Printf("Admin service running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
