package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"stride/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

// issueSessionToken signs a token carrying only the issuance timestamp.
// Sessions have no expiry: possession of a validly signed token is the sole
// validity condition, until logout clears the cookie.
func (handler *Handler) issueSessionToken(now time.Time) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.Itoa(models.SingletonUserID),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

// validateSessionToken recomputes and checks the token signature. The HMAC
// verifier compares signatures in constant time after a length check.
func (handler *Handler) validateSessionToken(rawToken string) bool {
	trimmed := strings.TrimSpace(rawToken)
	if trimmed == "" {
		return false
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(trimmed, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	return err == nil && token.Valid
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx) error {
	token, err := handler.issueSessionToken(handler.now())
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	})
	return nil
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
