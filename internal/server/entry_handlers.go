package server

import (
	"strconv"

	"github.com/earlbread/multi-user-blog/internal/cache"
	"github.com/earlbread/multi-user-blog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListEntries handles GET /blog, rendering all entries most recent first.
// The listing is served cache-aside from Redis when available.
func (s *Server) ListEntries(c *fiber.Ctx) error {
	var entries []*models.Entry
	err := cache.CacheAside(c.Context(), entriesCacheKey, &entries, entriesCacheTTL, func() error {
		var fetchErr error
		entries, fetchErr = s.entryRepo.ListRecent(c.Context())
		return fetchErr
	})
	if err != nil {
		return s.renderServerError(c, err)
	}

	return s.render(c, "main", fiber.Map{
		"Entries": entries,
	})
}

// ShowEntry handles GET /blog/:id. A missing entry redirects to the listing
// page rather than rendering a 404.
func (s *Server) ShowEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/blog")
	}

	entry, err := s.entryRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		return s.renderServerError(c, err)
	}
	if entry == nil {
		return c.Redirect("/blog")
	}

	return s.render(c, "main", fiber.Map{
		"Entries": []*models.Entry{entry},
	})
}

// NewPostForm handles GET /blog/newpost.
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	return s.render(c, "newpost", fiber.Map{
		"Subject": "",
		"Content": "",
	})
}

// CreateEntry handles POST /blog/newpost. Both subject and content are
// required; a failed submission re-renders the form with the entered values.
func (s *Server) CreateEntry(c *fiber.Ctx) error {
	subject := c.FormValue("subject")
	content := c.FormValue("content")

	if subject == "" || content == "" {
		return s.render(c, "newpost", fiber.Map{
			"Subject": subject,
			"Content": content,
			"Error":   "subject and content are needed",
		})
	}

	entry := &models.Entry{
		Subject: subject,
		Content: content,
	}
	if err := s.entryRepo.Create(c.Context(), entry); err != nil {
		return s.renderServerError(c, err)
	}

	// A fresh entry must show up on the next listing immediately.
	cache.Invalidate(c.Context(), entriesCacheKey)

	return c.Redirect("/blog/" + strconv.FormatUint(uint64(entry.ID), 10))
}

// About handles GET /blog/about.
func (s *Server) About(c *fiber.Ctx) error {
	return s.render(c, "about", nil)
}
