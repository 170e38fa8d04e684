// Package security provides JWT token utilities for editor authentication.
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// AuthorFromClaims extracts the author id from JWT claims.
func AuthorFromClaims(claims jwt.MapClaims) string {
	if authorID, ok := claims["authorId"].(string); ok {
		return authorID
	}
	return ""
}

// GenerateEditorToken creates a JWT token granting editor access for an author.
func GenerateEditorToken(authorID, jwtSecret string, lifetime time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"authorId": authorID,
		"role":     "editor",
		"iat":      time.Now().UTC().Unix(),
		"exp":      time.Now().UTC().Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	result, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", err
	}

	return result, nil
}
