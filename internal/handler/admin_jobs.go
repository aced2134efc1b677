package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/model"
	"github.com/trinesolutions/website-backend/internal/repository"
)

// AdminJobsHandler manages career listings and the application inbox.
type AdminJobsHandler struct {
	Jobs         *repository.JobRepo
	Applications *repository.ApplicationRepo
}

// ListJobs returns every listing, active or not.
func (h *AdminJobsHandler) ListJobs(c echo.Context) error {
	items, err := h.Jobs.List(c.Request().Context(), false)
	if err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminJobsHandler) CreateJob(c echo.Context) error {
	var j model.Job
	if err := c.Bind(&j); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(j.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	j.ID = uuid.NewString()
	j.CreatedAt = time.Now().UTC()
	if err := h.Jobs.Insert(c.Request().Context(), &j); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusCreated, j)
}

func (h *AdminJobsHandler) UpdateJob(c echo.Context) error {
	var j model.Job
	if err := c.Bind(&j); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	j.ID = c.Param("id")
	if err := h.Jobs.Update(c.Request().Context(), &j); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, j)
}

func (h *AdminJobsHandler) DeleteJob(c echo.Context) error {
	if err := h.Jobs.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return crudErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListApplications returns the full application inbox, newest first.
func (h *AdminJobsHandler) ListApplications(c echo.Context) error {
	items, err := h.Applications.List(c.Request().Context())
	if err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

type statusReq struct {
	Status string `json:"status"`
}

// UpdateApplicationStatus moves a candidate through the triage pipeline.
func (h *AdminJobsHandler) UpdateApplicationStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidApplicationStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	if err := h.Applications.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": c.Param("id"), "status": req.Status})
}
