package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tradehub/internal/shared/errors"
)

// ParseIDParam reads a positive numeric id from the named path parameter.
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName+" ID is required", paramName)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid "+entityName+" ID", paramName)
	}
	return uint(id), nil
}
