package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/setracker/internal/shared/errors"
)

// ParseUintParam parses a positive numeric URL path parameter.
// entityName is used in error messages (e.g., "project", "technology").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName), raw)
	}

	return uint(id), nil
}

// ParseOptionalUintQuery parses an optional positive numeric query parameter.
func ParseOptionalUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid %s", key), raw)
	}

	v := uint(id)
	return &v, nil
}
