package main

import (
	"errors"
	"log"
	"net/http"
	"studio/src/types"

	"github.com/gin-gonic/gin"
)

// errorStatus maps a service error onto an HTTP status. Conflicts use
// conflictStatus since availability overlaps are reported as bad requests.
func errorStatus(err error, conflictStatus int) int {
	var validationErr *types.ValidationError
	var notFoundErr *types.NotFoundError
	var conflictErr *types.ConflictError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return conflictStatus
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes {"error": ...}. Internal failures are logged and
// replaced with fallback.
func abortWithError(ctx *gin.Context, err error, fallback string, conflictStatus int) {
	status := errorStatus(err, conflictStatus)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s: %s\n", fallback, err.Error())
		msg = fallback
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": msg})
}
