package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/repository"
)

// AdminInboxHandler exposes the contact and subscriber inboxes.
type AdminInboxHandler struct {
	Contacts    *repository.ContactRepo
	Subscribers *repository.SubscriberRepo
}

// ListContacts returns all contact-form submissions, newest first.
func (h *AdminInboxHandler) ListContacts(c echo.Context) error {
	items, err := h.Contacts.List(c.Request().Context())
	if err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListSubscribers returns all newsletter signups.
func (h *AdminInboxHandler) ListSubscribers(c echo.Context) error {
	items, err := h.Subscribers.List(c.Request().Context())
	if err != nil {
		return crudErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteSubscriber removes a signup (unsubscribe on someone's behalf).
func (h *AdminInboxHandler) DeleteSubscriber(c echo.Context) error {
	if err := h.Subscribers.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return crudErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
