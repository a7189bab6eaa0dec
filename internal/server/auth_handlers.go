package server

import (
	"errors"

	"github.com/earlbread/multi-user-blog/internal/auth"
	"github.com/earlbread/multi-user-blog/internal/middleware"
	"github.com/earlbread/multi-user-blog/internal/models"
	"github.com/earlbread/multi-user-blog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SignupForm handles GET /blog/signup.
func (s *Server) SignupForm(c *fiber.Ctx) error {
	return s.render(c, "signup", fiber.Map{
		"Username": "",
		"Email":    "",
	})
}

// Signup handles POST /blog/signup. On any validation failure the form is
// re-rendered with field-specific errors; entered username and email are
// preserved, passwords never are.
func (s *Server) Signup(c *fiber.Ctx) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	verify := c.FormValue("verify")

	data := fiber.Map{
		"Username": username,
		"Email":    email,
	}
	hasError := false

	if err := validation.ValidateUsername(username); err != nil {
		hasError = true
		data["ErrorUsername"] = err.Error()
	} else {
		existing, err := s.userRepo.GetByUsername(c.Context(), username)
		if err != nil {
			return s.renderServerError(c, err)
		}
		if existing != nil {
			hasError = true
			data["ErrorUsername"] = "That username already exists."
		}
	}

	if err := validation.ValidateEmail(email); err != nil {
		hasError = true
		data["ErrorEmail"] = err.Error()
	}

	if err := validation.ValidatePassword(password); err != nil {
		hasError = true
		data["ErrorPassword"] = err.Error()
	} else if password != verify {
		hasError = true
		data["ErrorVerify"] = "Your password didn't match."
	}

	if hasError {
		return s.render(c, "signup", data)
	}

	hash, err := auth.HashPassword(username, password)
	if err != nil {
		return s.renderServerError(c, err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		// The unique index closes the gap between the pre-check above and
		// the insert; a losing concurrent signup lands here.
		if errors.Is(err, models.ErrUsernameTaken) {
			data["ErrorUsername"] = "That username already exists."
			return s.render(c, "signup", data)
		}
		return s.renderServerError(c, err)
	}

	middleware.StartSession(c, s.signer, user)
	return c.Redirect("/blog")
}

// LoginForm handles GET /blog/login.
func (s *Server) LoginForm(c *fiber.Ctx) error {
	return s.render(c, "login", nil)
}

// Login handles POST /blog/login. Failure renders a generic message without
// distinguishing an unknown username from a wrong password.
func (s *Server) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := s.userRepo.Authenticate(c.Context(), username, password)
	if err != nil {
		return s.renderServerError(c, err)
	}
	if user == nil {
		return s.render(c, "login", fiber.Map{
			"Error": "Invalid username or password",
		})
	}

	middleware.StartSession(c, s.signer, user)
	return c.Redirect("/blog")
}

// Logout handles GET /blog/logout.
func (s *Server) Logout(c *fiber.Ctx) error {
	middleware.EndSession(c)
	return c.Redirect("/blog")
}
