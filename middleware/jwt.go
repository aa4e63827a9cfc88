package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"tcb/apperrors"
	"tcb/config"
)

// GenerateJWT issues a token carrying the user's id. In production the token
// comes from the upstream identity provider; this is used by tooling and
// tests.
func GenerateJWT(userID, name, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware extracts the caller's identity from the Authorization header
// and stores the userId claim in the request context. It does not decide
// roles; that is the admin gate's job.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Missing or invalid Authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return apperrors.NewUnauthorized("Invalid Authorization header format")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return apperrors.NewUnauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return apperrors.NewUnauthorized("Invalid token payload")
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return apperrors.NewUnauthorized("Invalid token payload")
	}

	c.Locals("userId", userID)
	return c.Next()
}
