package controllers

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"strings"
	"studio/src/config"
	"studio/src/types"
	"studio/src/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("Invalid email or password")

// AuthLogin checks the posted credential against the configured admin
// account and returns a signed admin token.
func AuthLogin(ctx *gin.Context, cfg config.App) (token *string, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	admin := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if subtle.ConstantTimeCompare([]byte(email), []byte(admin)) != 1 {
		return nil, http.StatusUnauthorized, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(body.Password)); err != nil {
		return nil, http.StatusUnauthorized, ErrInvalidCredentials
	}
	signed, err := utils.GenerateJWT([]byte(cfg.JWTSecret), admin, types.ROLE_ADMIN, cfg.JWTExpiry())
	if err != nil {
		log.Printf("Error generating JWT token: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return &signed, http.StatusOK, nil
}
