package api

import (
	"errors"
	"time"

	"stride/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	loginAttemptsLimit  = 10
	loginAttemptsWindow = 15 * time.Minute
)

func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	setupRequired, err := handler.authService.RequiresInitialSetup()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read setup status")
	}
	return c.JSON(fiber.Map{"setup_required": setupRequired})
}

// Setup stores the single account credential on first run and signs the
// caller in. With an account already present it always rejects.
func (handler *Handler) Setup(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.authService.SetPassword(credentials.Password); err != nil {
		if errors.Is(err, services.ErrAccountExists) {
			return apiError(c, fiber.StatusConflict, "account already exists")
		}
		if errors.Is(err, services.ErrPasswordTooShort) {
			return apiError(c, fiber.StatusBadRequest, "password too short")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to store password")
	}

	if err := handler.setSessionCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, "/dashboard")
}

// Login checks the password and issues a session cookie. Failures are
// throttled per client and reported without saying what part failed.
func (handler *Handler) Login(c *fiber.Ctx) error {
	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	matched, err := handler.authService.VerifyPassword(credentials.Password)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to verify password")
	}
	if !matched {
		handler.loginLimiter.recordFailure(limiterKey, now)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	handler.loginLimiter.reset(limiterKey)
	if err := handler.setSessionCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, "/dashboard")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return redirectOrJSON(c, "/auth/login")
}
