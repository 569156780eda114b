package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mentorhub/internal/config"
	"mentorhub/internal/database"
	"mentorhub/internal/middleware"
	"mentorhub/internal/modules/achievement"
	"mentorhub/internal/modules/auth"
	"mentorhub/internal/modules/availability"
	"mentorhub/internal/modules/booking"
	"mentorhub/internal/modules/chat"
	"mentorhub/internal/modules/mentor"
	"mentorhub/internal/modules/notification"
	"mentorhub/internal/modules/review"
	"mentorhub/internal/modules/session"
	"mentorhub/internal/modules/video"
	"mentorhub/internal/pkg/email"
	jwtsvc "mentorhub/internal/pkg/jwt"
	"mentorhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	mentorRepo := repository.NewMentorRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	chatRepo := repository.NewChatRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	issuer, err := video.NewIssuer(cfg.VideoAppID, cfg.VideoCertificate)
	if err != nil {
		log.Fatal(err)
	}

	mailer := email.New(cfg.SMTP)
	if !cfg.SMTP.Enabled() {
		log.Println("SMTP is not configured, booking emails will be skipped")
	}

	hub := chat.NewHub()
	defer hub.Close()

	notificationService := notification.NewService(notificationRepo)
	achievementService := achievement.NewService(achievementRepo, sessionRepo)

	authService := auth.NewService(userRepo, mentorRepo, j)
	mentorService := mentor.NewService(mentorRepo)
	availabilityService := availability.NewService(availabilityRepo, mentorRepo)
	bookingService := booking.NewService(
		availabilityRepo,
		bookingRepo,
		mentorRepo,
		issuer,
		mailer,
		notificationService,
		achievementService,
	)
	sessionService := session.NewService(sessionRepo, notificationService, achievementService)
	reviewService := review.NewService(reviewRepo, sessionRepo, mentorRepo, notificationService, achievementService)
	chatService := chat.NewService(chatRepo, userRepo, mentorRepo, hub, notificationService)

	authHandler := auth.NewHandler(authService)
	mentorHandler := mentor.NewHandler(mentorService)
	availabilityHandler := availability.NewHandler(availabilityService)
	bookingHandler := booking.NewHandler(bookingService)
	sessionHandler := session.NewHandler(sessionService)
	videoHandler := video.NewHandler(issuer)
	reviewHandler := review.NewHandler(reviewService)
	achievementHandler := achievement.NewHandler(achievementService)
	notificationHandler := notification.NewHandler(notificationService)
	chatHandler := chat.NewHandler(chatService)
	wsHandler := chat.NewWSHandler(hub, j)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		mentorHandler.RegisterPublicRoutes(v1)
		availabilityHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			mentorHandler.RegisterProtectedRoutes(protected)
			availabilityHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			sessionHandler.RegisterRoutes(protected)
			videoHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			achievementHandler.RegisterProtectedRoutes(protected)
			notificationHandler.RegisterProtectedRoutes(protected)
			chatHandler.RegisterProtectedRoutes(protected)
		}
	}

	wsHandler.RegisterRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
