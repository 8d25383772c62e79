package httpapi

import (
	"errors"
	"net/http"

	"github.com/annapetrenko/mealkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

// writeError maps a domain error onto a status code and a {message} body.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidLoginPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect email or password"})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
	case errors.Is(err, common.ErrorForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": "already exists"})
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
