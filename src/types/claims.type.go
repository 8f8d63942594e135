package types

import "github.com/golang-jwt/jwt/v5"

const ROLE_ADMIN = "admin"

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
