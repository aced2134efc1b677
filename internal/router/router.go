// Package router wires HTTP routes to their handlers.  All routes live
// under the /api prefix the frontend expects; admin-only routes sit behind
// the admin gate.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/trinesolutions/website-backend/internal/handler"
	"github.com/trinesolutions/website-backend/internal/middleware"
)

// AdminHandlers groups everything mounted behind the admin gate.
type AdminHandlers struct {
	Auth      *handler.AuthHandler
	Content   *handler.AdminContentHandler
	Jobs      *handler.AdminJobsHandler
	Inbox     *handler.AdminInboxHandler
	Dashboard *handler.AdminDashboardHandler
	Upload    *handler.AdminUploadHandler
}

// RegisterCORS applies the cross-origin policy for the public frontend.
func RegisterCORS(e *echo.Echo, origins []string) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
}

// RegisterPublic mounts the unauthenticated read and intake surface.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, in *handler.IntakeHandler) {
	api := e.Group("/api")
	api.GET("/", handler.Root)
	api.GET("/healthz", handler.Health)

	api.GET("/services", p.GetServices)
	api.GET("/case-studies", p.GetCaseStudies)
	api.GET("/blog", p.GetBlogPosts)
	api.GET("/blog/:slug", p.GetBlogPost)
	api.GET("/team", p.GetTeam)
	api.GET("/testimonials", p.GetTestimonials)
	api.GET("/partners", p.GetPartners)
	api.GET("/jobs", p.GetJobs)

	api.POST("/contact", in.CreateContact)
	api.POST("/jobs/apply", in.Apply)
	api.POST("/newsletter/subscribe", in.Subscribe)
}

// RegisterAdmin mounts the auth endpoints and the gated admin surface.
// Register and login are deliberately outside the gate; everything else
// requires a resolved, active admin account.
func RegisterAdmin(e *echo.Echo, resolver middleware.SessionResolver, h AdminHandlers) {
	open := e.Group("/api/admin")
	open.POST("/register", h.Auth.Register)
	open.POST("/login", h.Auth.Login)

	admin := e.Group("/api/admin")
	admin.Use(middleware.AdminGate(resolver))

	admin.GET("/me", h.Auth.Me)
	admin.GET("/dashboard/stats", h.Dashboard.Stats)
	admin.POST("/upload-image", h.Upload.UploadImage)

	admin.POST("/services", h.Content.CreateService)
	admin.PUT("/services/:id", h.Content.UpdateService)
	admin.DELETE("/services/:id", h.Content.DeleteService)

	admin.POST("/case-studies", h.Content.CreateCaseStudy)
	admin.PUT("/case-studies/:id", h.Content.UpdateCaseStudy)
	admin.DELETE("/case-studies/:id", h.Content.DeleteCaseStudy)

	admin.POST("/blog", h.Content.CreateBlogPost)
	admin.PUT("/blog/:id", h.Content.UpdateBlogPost)
	admin.DELETE("/blog/:id", h.Content.DeleteBlogPost)

	admin.POST("/team", h.Content.CreateTeamMember)
	admin.PUT("/team/:id", h.Content.UpdateTeamMember)
	admin.DELETE("/team/:id", h.Content.DeleteTeamMember)

	admin.POST("/testimonials", h.Content.CreateTestimonial)
	admin.PUT("/testimonials/:id", h.Content.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", h.Content.DeleteTestimonial)

	admin.GET("/partners", h.Content.ListPartners)
	admin.POST("/partners", h.Content.CreatePartner)
	admin.PUT("/partners/:id", h.Content.UpdatePartner)
	admin.DELETE("/partners/:id", h.Content.DeletePartner)

	admin.GET("/jobs", h.Jobs.ListJobs)
	admin.POST("/jobs", h.Jobs.CreateJob)
	admin.PUT("/jobs/:id", h.Jobs.UpdateJob)
	admin.DELETE("/jobs/:id", h.Jobs.DeleteJob)

	admin.GET("/job-applications", h.Jobs.ListApplications)
	admin.PUT("/job-applications/:id/status", h.Jobs.UpdateApplicationStatus)

	admin.GET("/contacts", h.Inbox.ListContacts)
	admin.GET("/subscribers", h.Inbox.ListSubscribers)
	admin.DELETE("/subscribers/:id", h.Inbox.DeleteSubscriber)
}
