package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/bind"
	"github.com/shashiranjanraj/vyapari/pkg/response"
	"github.com/shashiranjanraj/vyapari/pkg/validate"
)

// VoucherController handles the sales voucher endpoints.
type VoucherController struct {
	service *services.VoucherService
}

func NewVoucherController(service *services.VoucherService) *VoucherController {
	return &VoucherController{service: service}
}

type voucherItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type voucherRequest struct {
	VoucherNo   string               `json:"voucher_no" validate:"required,max=64"`
	CustomerID  uint                 `json:"customer_id" validate:"required"`
	Date        string               `json:"date" validate:"required,date"`
	ReceiveDate string               `json:"receive_date" validate:"nullable,date"`
	PaidAmount  *decimal.Decimal     `json:"paid_amount" validate:"nullable,numeric,gte=0"`
	Status      string               `json:"status" validate:"nullable,in=UNPAID,PARTIAL,PAID"`
	Total       *decimal.Decimal     `json:"total" validate:"nullable,numeric"`
	Items       []voucherItemRequest `json:"items" validate:"required"`
}

func (req voucherRequest) input() (services.VoucherInput, error) {
	date, err := validate.ParseDate(req.Date)
	if err != nil {
		return services.VoucherInput{}, err
	}

	in := services.VoucherInput{
		VoucherNo:  req.VoucherNo,
		CustomerID: req.CustomerID,
		Date:       date,
		Status:     req.Status,
		Total:      req.Total,
	}

	if req.ReceiveDate != "" {
		rd, err := validate.ParseDate(req.ReceiveDate)
		if err != nil {
			return services.VoucherInput{}, err
		}
		in.ReceiveDate = &rd
	}

	if req.PaidAmount != nil {
		in.PaidAmount = *req.PaidAmount
	} else {
		in.PaidAmount = decimal.Zero
	}

	for _, item := range req.Items {
		in.Items = append(in.Items, services.VoucherItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return in, nil
}

func (c *VoucherController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	vouchers, err := c.service.List(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, vouchers)
}

func (c *VoucherController) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	voucherID, err := routeID(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	voucher, err := c.service.Show(userID, voucherID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, voucher)
}

func (c *VoucherController) Store(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req voucherRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	in, err := req.input()
	if err != nil {
		response.ValidationError(w, map[string]string{"date": "The date is not a valid date."})
		return
	}

	voucher, err := c.service.Create(userID, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, voucher)
}
