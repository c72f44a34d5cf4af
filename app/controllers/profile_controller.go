package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/bind"
	"github.com/shashiranjanraj/vyapari/pkg/response"
)

// ProfileController handles the authenticated user's own account.
type ProfileController struct {
	service *services.AuthService
}

func NewProfileController(service *services.AuthService) *ProfileController {
	return &ProfileController{service: service}
}

func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := c.service.Profile(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, user)
}

type changeNameRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

func (c *ProfileController) ChangeName(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req changeNameRequest
	if errs, err := bind.Form(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.ChangeName(userID, req.Name)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, user)
}

type changePasswordRequest struct {
	OldPassword          string `json:"old_password" validate:"required"`
	Password             string `json:"password" validate:"required,min=8,max=72,confirmed"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

func (c *ProfileController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req changePasswordRequest
	if errs, err := bind.Form(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.ChangePassword(userID, req.OldPassword, req.Password); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "Password changed"})
}

type changeImageRequest struct {
	Image string `json:"image" validate:"required,max=512"`
}

func (c *ProfileController) ChangeImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req changeImageRequest
	if errs, err := bind.Form(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.ChangeImage(userID, req.Image)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, user)
}
