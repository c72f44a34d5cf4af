package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/bind"
	"github.com/shashiranjanraj/vyapari/pkg/response"
)

// AuthController handles registration, login and password reset.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, user)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, user, err := c.service.Login(req.Email, req.Password)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

type resetPasswordRequest struct {
	Email                string `json:"password_reset_email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8,max=72,confirmed"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.ResetPassword(req.Email, req.Password); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "Password has been reset"})
}
