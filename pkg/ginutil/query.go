package ginutil

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt extracts an integer from query parameters with default value
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// QueryBool extracts a boolean flag from query parameters
func QueryBool(c *gin.Context, key string) bool {
	v := c.Query(key)
	return v == "true" || v == "1"
}

// ParamUint extracts an unsigned integer from path parameters
func ParamUint(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	v, err := strconv.ParseUint(valueStr, 10, 32)
	return uint(v), err
}
