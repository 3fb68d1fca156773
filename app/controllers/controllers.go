// Package controllers maps HTTP requests onto the services layer.
//
// Controllers do transport work only: decode the body, pull path and query
// parameters, call the service, and translate the typed service errors into
// status codes. Domain rules live in app/services.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// pathID parses a numeric path parameter.
func pathID(r *http.Request, key string) (uint, bool) {
	raw := chi.URLParam(r, key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// badID writes the 400 for a non-numeric id segment.
func badID(w http.ResponseWriter, key string) {
	response.BadRequest(w, "Invalid "+key+" in path")
}

// fail translates a service error into a response. ValidationError and
// ConflictError map to 400, NotFoundError to 404; anything else is an
// unexpected store failure and maps to 500.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *services.ValidationError
		notFound   *services.NotFoundError
		conflict   *services.ConflictError
	)

	switch {
	case errors.As(err, &validation):
		response.BadRequest(w, validation.Message)
	case errors.As(err, &conflict):
		response.BadRequest(w, conflict.Message)
	case errors.As(err, &notFound):
		response.NotFound(w, notFound.Message)
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
