package http

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/obras-portal/internal/service"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func floatQuery(c *gin.Context, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, invalid("invalid %s", key)
	}
	return value, nil
}

func requiredFloatQuery(c *gin.Context, key string) (float64, error) {
	if strings.TrimSpace(c.Query(key)) == "" {
		return 0, invalid("%s is required", key)
	}
	return floatQuery(c, key, 0)
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid("invalid %s", key)
	}
	return value, nil
}
