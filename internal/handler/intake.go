// Intake handlers accept submissions from the public site: contact forms,
// job applications and newsletter signups.  Contact and application intake
// also publish an event to the message broker for the notification feed;
// publishing is best-effort and never blocks or fails the submission.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/model"
	"github.com/trinesolutions/website-backend/internal/queue"
	"github.com/trinesolutions/website-backend/internal/repository"
	intake_publisher "github.com/trinesolutions/website-backend/internal/service"
)

// IntakeHandler bundles the repositories behind the public write surface.
type IntakeHandler struct {
	Contacts     *repository.ContactRepo
	Subscribers  *repository.SubscriberRepo
	Jobs         *repository.JobRepo
	Applications *repository.ApplicationRepo
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// CreateContact handles POST /api/contact.
func (h *IntakeHandler) CreateContact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if strings.TrimSpace(req.Name) == "" || req.Email == "" || strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and message are required"})
	}

	msg := &model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Company:   strings.TrimSpace(req.Company),
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Contacts.Insert(ctx, msg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save message failed"})
	}

	go intake_publisher.PublishIntakeReceived(context.Background(), queue.IntakeEvent{
		Kind:       queue.IntakeKindContact,
		ID:         msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Company,
		ReceivedAt: msg.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, msg)
}

type applyReq struct {
	JobID       string `json:"job_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter"`
}

// Apply handles POST /api/jobs/apply.  The listing must exist and be
// active; the job title is denormalized onto the application so the inbox
// survives listing deletion.
func (h *IntakeHandler) Apply(c echo.Context) error {
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.JobID == "" || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "job_id, name and email are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	job, err := h.Jobs.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !job.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
	}

	app := &model.JobApplication{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		JobTitle:    job.Title,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		ResumeURL:   strings.TrimSpace(req.ResumeURL),
		CoverLetter: req.CoverLetter,
		Status:      model.ApplicationStatusNew,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.Applications.Insert(ctx, app); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save application failed"})
	}

	go intake_publisher.PublishIntakeReceived(context.Background(), queue.IntakeEvent{
		Kind:       queue.IntakeKindApplication,
		ID:         app.ID,
		Name:       app.Name,
		Email:      app.Email,
		Subject:    job.Title,
		ReceivedAt: app.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, app)
}

type subscribeReq struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter/subscribe.  Re-subscribing an
// existing address is treated as success, not an error.
func (h *IntakeHandler) Subscribe(c echo.Context) error {
	var req subscribeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email required"})
	}

	sub := &model.Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Subscribers.Insert(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusOK, echo.Map{"message": "already subscribed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "subscribe failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "subscribed"})
}
