package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-dining/services"
	"github.com/yeremiapane/hotel-dining/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP codes.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondError(c, http.StatusBadRequest, validationErr.Message, err)
	case errors.As(err, &notFoundErr):
		utils.InfoLogger.Printf("%s %v not found", notFoundErr.Entity, notFoundErr.Key)
		utils.RespondError(c, http.StatusNotFound, notFoundErr.Error(), err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, "", err)
	}
}
