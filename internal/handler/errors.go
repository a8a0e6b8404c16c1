package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tasktrack/backend/internal/auth"
	"github.com/tasktrack/backend/internal/logging"
	"github.com/tasktrack/backend/internal/service"
)

func writeAuthError(c *gin.Context, err error) {
	log := zerolog.Ctx(c.Request.Context())

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	case errors.Is(err, auth.ErrBadSignature):
		// token was not signed by this process
		log.Warn().
			Str("request_id", logging.RequestID(c)).
			Str("client_ip", c.ClientIP()).
			Err(err).
			Msg("rejected token with invalid signature")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case errors.Is(err, auth.ErrExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
	case errors.Is(err, auth.ErrRevoked):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, auth.ErrDuplicateUser):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, auth.ErrNoActiveToken):
		c.JSON(http.StatusForbidden, gin.H{"error": "no active session"})
	default:
		log.Error().Err(err).Msg("auth request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}

func writeTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("task request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
