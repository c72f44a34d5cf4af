package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/bind"
	"github.com/shashiranjanraj/vyapari/pkg/response"
)

// ProductController handles the inventory endpoints.
type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

type productRequest struct {
	Name       string           `json:"product_name" validate:"required,max=255"`
	Price      *decimal.Decimal `json:"price" validate:"required,numeric,gte=0"`
	Stock      int              `json:"stock" validate:"nullable,integer,gte=0"`
	Image      string           `json:"image" validate:"nullable,max=512"`
	CategoryID *uint            `json:"category_id" validate:"nullable,integer"`
}

func (req productRequest) input() services.ProductInput {
	return services.ProductInput{
		Name:       req.Name,
		Price:      *req.Price,
		Stock:      req.Stock,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	}
}

func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	products, err := c.service.List(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req productRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Create(userID, req.input())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	productID, err := routeID(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	var req productRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Update(userID, productID, req.input())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	productID, err := routeID(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	if err := c.service.Delete(userID, productID); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "Product deleted"})
}
