package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/earlbread/multi-user-blog/internal/auth"
	"github.com/earlbread/multi-user-blog/internal/models"
	"github.com/earlbread/multi-user-blog/internal/repository"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "currentUser"

// Session resolves the current user from the signed session cookie once per
// request and exposes it via CurrentUser. An absent, malformed, or tampered
// cookie simply means no user; the request always proceeds.
func Session(signer *auth.Signer, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value, ok := signer.Verify(c.Cookies(auth.SessionCookie))
		if !ok {
			return c.Next()
		}

		id, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return c.Next()
		}

		user, err := users.GetByID(c.Context(), uint(id))
		if err != nil {
			// A storage failure here must not take the page down; the
			// request continues anonymously.
			Logger.Error("session user lookup failed",
				slog.Uint64("user_id", id),
				slog.String("error", err.Error()))
			return c.Next()
		}
		if user != nil {
			c.Locals(currentUserKey, user)
		}

		return c.Next()
	}
}

// CurrentUser returns the user resolved by the Session middleware, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

// StartSession sets the signed session cookie for the given user.
func StartSession(c *fiber.Ctx, signer *auth.Signer, user *models.User) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    signer.Sign(strconv.FormatUint(uint64(user.ID), 10)),
		Path:     "/",
		HTTPOnly: true,
	})
}

// EndSession overwrites the session cookie with an expired empty value.
func EndSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Unix(0, 0),
	})
}
