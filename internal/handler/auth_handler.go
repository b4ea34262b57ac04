package handler

import (
	"errors"
	"net/http"

	"content_manager/internal/middleware"
	"content_manager/internal/model"
	"content_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	msgSomethingWrong = "Something went Wrong!"
	msgCouldNotVerify = "Could not verify"
	loginRealm        = `Basic realm="Login required!"`
)

// AuthHandler handles user and session requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Error listing users")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgSomethingWrong})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Debug("Invalid signup payload")
		c.JSON(http.StatusBadRequest, gin.H{"message": msgSomethingWrong})
		return
	}

	if _, err := h.service.Signup(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgSomethingWrong})
			return
		}
		logrus.WithError(err).Error("Error during signup")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgSomethingWrong})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "New user created!"})
}

// Login reads HTTP basic credentials and answers with a fresh token.
// Every failure produces the same 401 response.
func (h *AuthHandler) Login(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok || email == "" || password == "" {
		h.couldNotVerify(c)
		return
	}

	token, err := h.service.Login(c.Request.Context(), email, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			logrus.WithError(err).Error("Error during login")
		}
		h.couldNotVerify(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) couldNotVerify(c *gin.Context) {
	c.Header("WWW-Authenticate", loginRealm)
	c.String(http.StatusUnauthorized, msgCouldNotVerify)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is invalid!"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), user); err != nil {
		logrus.WithError(err).Error("Error during logout")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgSomethingWrong})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User logout successfully"})
}

// RegisterAuthRoutes registers user and session routes
func (h *AuthHandler) RegisterAuthRoutes(r gin.IRouter, sessionMW gin.HandlerFunc) {
	r.GET("/users", h.ListUsers)
	r.POST("/signup", h.Signup)
	r.GET("/login", h.Login)
	r.GET("/logout", sessionMW, h.Logout)
}
