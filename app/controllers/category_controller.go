package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/bind"
	"github.com/shashiranjanraj/vyapari/pkg/response"
)

// CategoryController handles product category endpoints.
type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	categories, err := c.service.List(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, categories)
}

func (c *CategoryController) Store(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req categoryRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.service.Create(userID, req.Name)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, category)
}

func (c *CategoryController) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	categoryID, err := routeID(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	if err := c.service.Delete(userID, categoryID); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "Category deleted"})
}
