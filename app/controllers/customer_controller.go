package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/bind"
	"github.com/shashiranjanraj/vyapari/pkg/response"
)

// CustomerController handles customer endpoints.
type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

type customerRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"nullable,email"`
	Phone string `json:"phone" validate:"nullable,max=50"`
}

func (c *CustomerController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	customers, err := c.service.List(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, customers)
}

func (c *CustomerController) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	customerID, err := routeID(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	customer, err := c.service.Show(userID, customerID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, customer)
}

func (c *CustomerController) Store(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req customerRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	customer, err := c.service.Create(userID, req.Name, req.Email, req.Phone)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, customer)
}
