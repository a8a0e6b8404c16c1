package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasktrack/backend/internal/model"
)

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{
		Status:  "ok",
		Message: "task tracking API is running",
	})
}
