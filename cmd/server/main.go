package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/auth"
	"github.com/trinesolutions/website-backend/internal/config"
	"github.com/trinesolutions/website-backend/internal/database"
	"github.com/trinesolutions/website-backend/internal/handler"
	"github.com/trinesolutions/website-backend/internal/queue"
	"github.com/trinesolutions/website-backend/internal/repository"
	"github.com/trinesolutions/website-backend/internal/router"
	"github.com/trinesolutions/website-backend/internal/uploader"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("database: %v", err)
	}

	// Repositories
	admins := repository.NewAdminRepo(db)
	services := repository.NewServiceRepo(db)
	caseStudies := repository.NewCaseStudyRepo(db)
	blog := repository.NewBlogRepo(db)
	team := repository.NewTeamRepo(db)
	testimonials := repository.NewTestimonialRepo(db)
	partners := repository.NewPartnerRepo(db)
	jobs := repository.NewJobRepo(db)
	applications := repository.NewApplicationRepo(db)
	contacts := repository.NewContactRepo(db)
	subscribers := repository.NewSubscriberRepo(db)

	// Auth core: explicit construction, no ambient globals.
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	resolver := auth.NewResolver(tokens, admins)

	// Bootstrap runs before the listener accepts traffic.  Failure is
	// reported but does not prevent startup, so operators can reach the
	// process to diagnose store connectivity.
	if err := auth.EnsureDefaultAdmin(context.Background(), admins, cfg.BcryptCost); err != nil {
		log.Printf("warning: %v", err)
	}

	// Intake notification feed (best effort, reconnects forever).
	go queue.StartIntakeConsumer()

	e := echo.New()
	e.HideBanner = true
	router.RegisterCORS(e, cfg.CORSOrigins)
	router.RegisterPublic(e,
		&handler.PublicHandler{
			Services:     services,
			CaseStudies:  caseStudies,
			Blog:         blog,
			Team:         team,
			Testimonials: testimonials,
			Partners:     partners,
			Jobs:         jobs,
		},
		&handler.IntakeHandler{
			Contacts:     contacts,
			Subscribers:  subscribers,
			Jobs:         jobs,
			Applications: applications,
		})
	router.RegisterAdmin(e, resolver, router.AdminHandlers{
		Auth:    handler.NewAuthHandler(admins, tokens, cfg.BcryptCost),
		Content: &handler.AdminContentHandler{
			Services:     services,
			CaseStudies:  caseStudies,
			Blog:         blog,
			Team:         team,
			Testimonials: testimonials,
			Partners:     partners,
		},
		Jobs:  &handler.AdminJobsHandler{Jobs: jobs, Applications: applications},
		Inbox: &handler.AdminInboxHandler{Contacts: contacts, Subscribers: subscribers},
		Dashboard: &handler.AdminDashboardHandler{
			Services:     services,
			CaseStudies:  caseStudies,
			Blog:         blog,
			Team:         team,
			Testimonials: testimonials,
			Partners:     partners,
			Jobs:         jobs,
			Applications: applications,
			Contacts:     contacts,
			Subscribers:  subscribers,
		},
		Upload: &handler.AdminUploadHandler{
			Uploader: uploader.NewCloudinary(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret),
		},
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
