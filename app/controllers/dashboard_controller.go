package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/response"
)

// DashboardController serves the owner's aggregated figures.
type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

func (c *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, err := c.service.Summary(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, summary)
}
