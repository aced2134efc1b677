package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/repository"
)

// AdminDashboardHandler aggregates per-collection counts for the admin
// landing page.
type AdminDashboardHandler struct {
	Services     *repository.ServiceRepo
	CaseStudies  *repository.CaseStudyRepo
	Blog         *repository.BlogRepo
	Team         *repository.TeamRepo
	Testimonials *repository.TestimonialRepo
	Partners     *repository.PartnerRepo
	Jobs         *repository.JobRepo
	Applications *repository.ApplicationRepo
	Contacts     *repository.ContactRepo
	Subscribers  *repository.SubscriberRepo
}

// Stats handles GET /api/admin/dashboard/stats.
func (h *AdminDashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	counts := map[string]func(context.Context) (int64, error){
		"services":         h.Services.Count,
		"case_studies":     h.CaseStudies.Count,
		"blog_posts":       h.Blog.Count,
		"team_members":     h.Team.Count,
		"testimonials":     h.Testimonials.Count,
		"partners":         h.Partners.Count,
		"jobs":             h.Jobs.Count,
		"job_applications": h.Applications.Count,
		"contacts":         h.Contacts.Count,
		"subscribers":      h.Subscribers.Count,
	}

	out := echo.Map{}
	for name, count := range counts {
		n, err := count(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		out[name] = n
	}
	return c.JSON(http.StatusOK, out)
}
