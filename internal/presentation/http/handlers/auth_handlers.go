package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// AuthHandlers contains the authentication HTTP handlers.
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
}

// NewAuthHandlers creates auth handlers with injected dependencies.
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
	}
}

// PostLogin handles POST /api/v1/auth/login - editor authentication.
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	var loginReq struct {
		AuthorID string `json:"authorId" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, err := h.authService.Login(loginReq.AuthorID, loginReq.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
