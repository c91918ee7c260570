package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tanish-jain-225/hotel-management-system/api/responses"
	"github.com/tanish-jain-225/hotel-management-system/api/validators"
	"github.com/tanish-jain-225/hotel-management-system/internal/menu"
	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
)

type MenuController struct {
	service menu.Service
	logg    *logger.Logger
}

func NewMenuController(service menu.Service, logg *logger.Logger) *MenuController {
	return &MenuController{service: service, logg: logg}
}

func (c *MenuController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.List(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, items)
}

func (c *MenuController) Create(w http.ResponseWriter, r *http.Request) {
	var input menu.CreateInput
	if err := validators.DecodeJSONBody(r, &input); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	item, err := c.service.Create(r.Context(), input)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccessStatus(w, http.StatusCreated, item)
}

func (c *MenuController) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if err := c.service.Delete(r.Context(), itemID); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, map[string]string{"deleted": itemID})
}
