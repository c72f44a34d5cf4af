// Package controllers holds the HTTP handlers. Each handler binds and
// validates the request, calls a service, and writes the JSON envelope.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/auth"
	"github.com/shashiranjanraj/vyapari/pkg/logger"
	"github.com/shashiranjanraj/vyapari/pkg/response"
)

// currentUser pulls the authenticated user's ID out of the request context.
// The auth middleware guarantees it on protected routes; a false here means
// the route was mounted without the middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return 0, false
	}
	return id, true
}

// routeID parses the {param} URL segment as an unsigned ID.
func routeID(r *http.Request, param string) (uint, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// fail translates a service error into the HTTP error taxonomy.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := services.AsValidation(err); ok {
		response.ValidationError(w, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrForbidden):
		response.Forbidden(w)
	case errors.Is(err, services.ErrConflict):
		response.Conflict(w, "Already exists")
	case errors.Is(err, services.ErrUnauthorized):
		response.Unauthorized(w)
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Something went wrong")
	}
}
