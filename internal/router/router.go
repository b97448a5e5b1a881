package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"app-submission-api/internal/client"
	"app-submission-api/internal/handler"
	"app-submission-api/internal/lock"
	"app-submission-api/internal/metrics"
	"app-submission-api/internal/middleware"
	"app-submission-api/internal/repository"
	"app-submission-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	S3Client       client.S3ClientInterface
	AIClient       client.AIClientInterface
	Locker         lock.Locker
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "app-submission-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "app-submission-api"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "app-submission-api"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "app-submission-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "app-submission-api"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	checklistRepo := repository.NewChecklistRepository(cfg.DB)
	rejectionRepo := repository.NewRejectionRepository(cfg.DB)
	conversationRepo := repository.NewConversationRepository(cfg.DB)

	// Initialize services
	taskService := service.NewTaskService(taskRepo, projectRepo, cfg.Locker, cfg.Metrics, cfg.Logger)
	checklistService := service.NewChecklistService(checklistRepo, projectRepo, cfg.S3Client, cfg.Locker, cfg.Metrics, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, taskService, checklistService, cfg.Metrics, cfg.Logger)
	rejectionService := service.NewRejectionService(rejectionRepo, projectRepo, cfg.AIClient, cfg.Logger)
	aiService := service.NewAIService(cfg.AIClient, conversationRepo, cfg.Logger)

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectService, taskService, checklistService)
	taskHandler := handler.NewTaskHandler(taskService)
	checklistHandler := handler.NewChecklistHandler(checklistService)
	rejectionHandler := handler.NewRejectionHandler(rejectionService)
	aiHandler := handler.NewAIHandler(aiService)
	phaseHandler := handler.NewPhaseHandler()

	// API routes group
	api := r.Group(cfg.BasePath)
	if cfg.JWTSecret != "" {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}

	// Project routes
	projects := api.Group("/projects")
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.GetProjects)
		projects.GET("/:projectId", projectHandler.GetProject)
		projects.PUT("/:projectId", projectHandler.UpdateProject)
		projects.PATCH("/:projectId/schedule", projectHandler.UpdateSchedule)
		projects.DELETE("/:projectId", projectHandler.DeleteProject)
		projects.POST("/:projectId/generate-default-tasks", projectHandler.GenerateDefaultTasks)
		projects.POST("/:projectId/generate-default-checklist", projectHandler.GenerateDefaultChecklist)
		projects.GET("/:projectId/tasks", taskHandler.GetTasksGrouped)
	}

	// Task routes
	tasks := api.Group("/tasks")
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.GetTasks)
		tasks.PUT("/:taskId", taskHandler.UpdateTask)
		tasks.DELETE("/:taskId", taskHandler.DeleteTask)
		tasks.PATCH("/:taskId/complete", taskHandler.SetTaskCompletion)
		tasks.PATCH("/:taskId/memo", taskHandler.SetTaskMemo)
	}

	// Checklist routes
	checklist := api.Group("/checklist")
	{
		checklist.POST("", checklistHandler.CreateItem)
		checklist.GET("", checklistHandler.GetItems)
		checklist.PUT("/:itemId", checklistHandler.UpdateItem)
		checklist.DELETE("/:itemId", checklistHandler.DeleteItem)
		checklist.POST("/:itemId/upload", checklistHandler.UploadFile)
		checklist.DELETE("/:itemId/files/:fileName", checklistHandler.DeleteFile)
	}

	// Rejection routes
	rejections := api.Group("/rejections")
	{
		rejections.POST("", rejectionHandler.CreateRejection)
		rejections.GET("", rejectionHandler.GetRejections)
		rejections.PUT("/:rejectionId", rejectionHandler.UpdateRejection)
	}

	// AI routes
	ai := api.Group("/ai")
	{
		ai.POST("/chat", aiHandler.Chat)
		ai.POST("/analyze-rejection", aiHandler.AnalyzeRejection)
	}

	// Phase catalog
	api.GET("/phases", phaseHandler.GetPhases)

	return r
}
