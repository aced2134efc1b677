// Admin CRUD handlers for the site content collections.  All routes here
// sit behind the admin gate; handlers assume an authenticated, active
// admin and never re-check.
package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/model"
	"github.com/trinesolutions/website-backend/internal/repository"
)

// AdminContentHandler bundles the content repositories for the CRUD
// surface.
type AdminContentHandler struct {
	Services     *repository.ServiceRepo
	CaseStudies  *repository.CaseStudyRepo
	Blog         *repository.BlogRepo
	Team         *repository.TeamRepo
	Testimonials *repository.TestimonialRepo
	Partners     *repository.PartnerRepo
}

// crudErr maps repository sentinels onto HTTP responses.
func crudErr(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a post title into a URL-safe slug.
func slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// ----- services -----

func (h *AdminContentHandler) CreateService(c echo.Context) error {
	var s model.Service
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(s.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	s.ID = uuid.NewString()
	if err := h.Services.Insert(c.Request().Context(), &s); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *AdminContentHandler) UpdateService(c echo.Context) error {
	var s model.Service
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	s.ID = c.Param("id")
	if err := h.Services.Update(c.Request().Context(), &s); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *AdminContentHandler) DeleteService(c echo.Context) error {
	if err := h.Services.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return crudErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- case studies -----

func (h *AdminContentHandler) CreateCaseStudy(c echo.Context) error {
	var cs model.CaseStudy
	if err := c.Bind(&cs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(cs.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	cs.ID = uuid.NewString()
	if err := h.CaseStudies.Insert(c.Request().Context(), &cs); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusCreated, cs)
}

func (h *AdminContentHandler) UpdateCaseStudy(c echo.Context) error {
	var cs model.CaseStudy
	if err := c.Bind(&cs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cs.ID = c.Param("id")
	if err := h.CaseStudies.Update(c.Request().Context(), &cs); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, cs)
}

func (h *AdminContentHandler) DeleteCaseStudy(c echo.Context) error {
	if err := h.CaseStudies.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return crudErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- blog posts -----

func (h *AdminContentHandler) CreateBlogPost(c echo.Context) error {
	var p model.BlogPost
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(p.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	p.ID = uuid.NewString()
	if p.Slug == "" {
		p.Slug = slugify(p.Title)
	}
	if err := h.Blog.Insert(c.Request().Context(), &p); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminContentHandler) UpdateBlogPost(c echo.Context) error {
	var p model.BlogPost
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p.ID = c.Param("id")
	if p.Slug == "" {
		p.Slug = slugify(p.Title)
	}
	if err := h.Blog.Update(c.Request().Context(), &p); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminContentHandler) DeleteBlogPost(c echo.Context) error {
	if err := h.Blog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return crudErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- team members -----

func (h *AdminContentHandler) CreateTeamMember(c echo.Context) error {
	var m model.TeamMember
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(m.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	m.ID = uuid.NewString()
	if err := h.Team.Insert(c.Request().Context(), &m); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *AdminContentHandler) UpdateTeamMember(c echo.Context) error {
	var m model.TeamMember
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	m.ID = c.Param("id")
	if err := h.Team.Update(c.Request().Context(), &m); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *AdminContentHandler) DeleteTeamMember(c echo.Context) error {
	if err := h.Team.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return crudErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- testimonials -----

func (h *AdminContentHandler) CreateTestimonial(c echo.Context) error {
	var t model.Testimonial
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Content) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and content are required"})
	}
	if t.Rating < 1 || t.Rating > 5 {
		t.Rating = 5
	}
	t.ID = uuid.NewString()
	if err := h.Testimonials.Insert(c.Request().Context(), &t); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *AdminContentHandler) UpdateTestimonial(c echo.Context) error {
	var t model.Testimonial
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	t.ID = c.Param("id")
	if t.Rating < 1 || t.Rating > 5 {
		t.Rating = 5
	}
	if err := h.Testimonials.Update(c.Request().Context(), &t); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *AdminContentHandler) DeleteTestimonial(c echo.Context) error {
	if err := h.Testimonials.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return crudErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- partners -----

// ListPartners includes inactive entries, unlike the public list.
func (h *AdminContentHandler) ListPartners(c echo.Context) error {
	items, err := h.Partners.List(c.Request().Context(), false)
	if err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminContentHandler) CreatePartner(c echo.Context) error {
	var p model.Partner
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(p.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	p.ID = uuid.NewString()
	if err := h.Partners.Insert(c.Request().Context(), &p); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminContentHandler) UpdatePartner(c echo.Context) error {
	var p model.Partner
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p.ID = c.Param("id")
	if err := h.Partners.Update(c.Request().Context(), &p); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminContentHandler) DeletePartner(c echo.Context) error {
	if err := h.Partners.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return crudErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
