package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"focustrack/internal/access"
	"focustrack/internal/config"
	"focustrack/internal/database"
	"focustrack/internal/handler"
	"focustrack/internal/mail"
	"focustrack/internal/middleware"
	"focustrack/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to access DB connection: %w", err)
	}
	if err := database.Migrate(sqlDB); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Schema migrations applied")

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	userGoalRepo := repository.NewUserGoalRepository(db)
	goalStepRepo := repository.NewGoalStepRepository(db)
	contactRepo := repository.NewContactRepository(db)
	shareRepo := repository.NewShareRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)

	// Access-control engine: every permission decision goes through it
	engine := access.NewEngine(userGoalRepo, shareRepo, goalStepRepo, contactRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo)
	authHandler := handler.NewAuthHandler(userRepo, resetRepo, mail.LogMailer{})
	contactHandler := handler.NewContactHandler(contactRepo, userRepo)
	goalHandler := handler.NewGoalHandler(goalRepo, goalStepRepo, engine)
	shareHandler := handler.NewShareHandler(goalRepo, userRepo, shareRepo, engine)
	commentHandler := handler.NewCommentHandler(goalRepo, commentRepo, engine)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.POST("/forgot-password", authHandler.ForgotPassword)
	r.POST("/reset-password", authHandler.ResetPassword)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		authorized.GET("/users", userHandler.Search)
		authorized.GET("/users/:id", userHandler.GetByID)
		authorized.PATCH("/users/me", userHandler.UpdateMe)
		authorized.DELETE("/users/me", userHandler.DeleteMe)
		authorized.GET("/users/:id/shared-goals", shareHandler.GetSharedByOwner)

		// Contact routes
		authorized.POST("/contacts/invite", contactHandler.Invite)
		authorized.POST("/contacts/respond", contactHandler.Respond)
		authorized.GET("/contacts", contactHandler.List)
		authorized.GET("/contacts/sent", contactHandler.ListSent)
		authorized.GET("/contacts/received", contactHandler.ListReceived)
		authorized.DELETE("/contacts/:user_id", contactHandler.Remove)

		// Goal routes
		authorized.POST("/goals", goalHandler.Create)
		authorized.GET("/goals", goalHandler.GetAll)
		authorized.GET("/goals/:id", goalHandler.GetByID)
		authorized.PATCH("/goals/:id", goalHandler.Update)
		authorized.PATCH("/goals/:id/status", goalHandler.UpdateStatus)
		authorized.DELETE("/goals/:id", goalHandler.Delete)

		// Step routes
		authorized.POST("/goals/:id/steps", goalHandler.AddStep)
		authorized.GET("/goals/:id/steps", goalHandler.GetSteps)
		authorized.DELETE("/steps/:id", goalHandler.DeleteStep)

		// Goal sharing routes
		authorized.POST("/goals/:id/share", shareHandler.Share)
		authorized.DELETE("/goals/:id/share/:user_id", shareHandler.Unshare)
		authorized.GET("/goals/:id/share", shareHandler.GetGoalShares)
		authorized.GET("/shared-goals", shareHandler.GetSharedGoals)

		// Comment routes
		authorized.POST("/goals/:id/comments", commentHandler.Create)
		authorized.GET("/goals/:id/comments", commentHandler.List)
		authorized.PATCH("/comments/:id", commentHandler.Update)
		authorized.DELETE("/comments/:id", commentHandler.Delete)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
