// Public content handlers.  Every list endpoint falls back to hard-coded
// default content while its collection is still empty, so a fresh
// deployment renders a complete site.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/content"
	"github.com/trinesolutions/website-backend/internal/repository"
)

// PublicHandler aggregates the repositories behind the unauthenticated
// read surface.
type PublicHandler struct {
	Services     *repository.ServiceRepo
	CaseStudies  *repository.CaseStudyRepo
	Blog         *repository.BlogRepo
	Team         *repository.TeamRepo
	Testimonials *repository.TestimonialRepo
	Partners     *repository.PartnerRepo
	Jobs         *repository.JobRepo
}

// GetServices returns all service offerings.
func (h *PublicHandler) GetServices(c echo.Context) error {
	items, err := h.Services.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if len(items) == 0 {
		return c.JSON(http.StatusOK, content.DefaultServices())
	}
	return c.JSON(http.StatusOK, items)
}

// GetCaseStudies returns all case studies.
func (h *PublicHandler) GetCaseStudies(c echo.Context) error {
	items, err := h.CaseStudies.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if len(items) == 0 {
		return c.JSON(http.StatusOK, content.DefaultCaseStudies())
	}
	return c.JSON(http.StatusOK, items)
}

// GetBlogPosts returns all blog posts, newest first.
func (h *PublicHandler) GetBlogPosts(c echo.Context) error {
	items, err := h.Blog.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if len(items) == 0 {
		return c.JSON(http.StatusOK, content.DefaultBlogPosts())
	}
	return c.JSON(http.StatusOK, items)
}

// GetBlogPost resolves one post by slug (falling back to id).  Default
// posts are searched too so detail pages work before any real content
// exists.
func (h *PublicHandler) GetBlogPost(c echo.Context) error {
	key := c.Param("slug")
	post, err := h.Blog.GetBySlugOrID(c.Request().Context(), key)
	if err == nil {
		return c.JSON(http.StatusOK, post)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	for _, p := range content.DefaultBlogPosts() {
		if p.Slug == key || p.ID == key {
			return c.JSON(http.StatusOK, p)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
}

// GetTeam returns all team member bios.
func (h *PublicHandler) GetTeam(c echo.Context) error {
	items, err := h.Team.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if len(items) == 0 {
		return c.JSON(http.StatusOK, content.DefaultTeam())
	}
	return c.JSON(http.StatusOK, items)
}

// GetTestimonials returns all client testimonials.
func (h *PublicHandler) GetTestimonials(c echo.Context) error {
	items, err := h.Testimonials.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if len(items) == 0 {
		return c.JSON(http.StatusOK, content.DefaultTestimonials())
	}
	return c.JSON(http.StatusOK, items)
}

// GetPartners returns active partners only; no default content here, an
// empty list renders fine.
func (h *PublicHandler) GetPartners(c echo.Context) error {
	items, err := h.Partners.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetJobs returns active career listings.
func (h *PublicHandler) GetJobs(c echo.Context) error {
	items, err := h.Jobs.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}
