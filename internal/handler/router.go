package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tasktrack/backend/internal/logging"
	"github.com/tasktrack/backend/internal/service"
)

type RouterConfig struct {
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig, log zerolog.Logger, authSvc *service.AuthService, taskSvc *service.TaskService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.RequestLogger(log))
	router.Use(CORSMiddleware(cfg.AllowedOrigins, false))

	router.GET("/", Root)
	router.GET("/ping", Ping)
	router.GET("/openapi.json", OpenAPIDoc)

	authHandler := NewAuthHandler(authSvc)
	taskHandler := NewTaskHandler(taskSvc)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("")
	protected.Use(AuthMiddleware(authSvc))
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", authHandler.Me)
	protected.POST("/tasks", taskHandler.CreateTask)
	protected.GET("/tasks", taskHandler.ListTasks)
	protected.GET("/tasks/:id", taskHandler.GetTask)
	protected.PUT("/tasks/:id", taskHandler.UpdateTask)

	return router
}
