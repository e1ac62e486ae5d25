package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/session"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

type AuthHandler struct {
	authenticate *usecase.AuthenticateUser
	register     *usecase.RegisterUser
	auth         usecase.AuthService
}

func NewAuthHandler(authenticate *usecase.AuthenticateUser, register *usecase.RegisterUser, auth usecase.AuthService) *AuthHandler {
	return &AuthHandler{authenticate: authenticate, register: register, auth: auth}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	out, err := h.authenticate.Execute(ctx, usecase.AuthenticateUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// an unknown email reads the same as a wrong password
		if errors.Is(err, domain.ErrUserNotFound) {
			err = domain.ErrInvalidCredentials
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": out.Token,
		"user":  toUserResp(out.User),
	})
}

type registerReq struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.register.Execute(ctx, usecase.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResp(user))
}

// Me resolves the caller from their bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	token := session.Token(c.Request.Context())
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	user, err := h.auth.Identify(ctx, token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResp(user))
}
