package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUserID normalizes the user_id the auth middleware put into the
// context. JWT map claims decode numbers as float64.
func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id missing from context")
	}

	var id uint
	switch n := v.(type) {
	case uint:
		id = n
	case int:
		id = uint(n)
	case int64:
		id = uint(n)
	case float64:
		id = uint(n)
	case string:
		if parsed, err := strconv.ParseUint(n, 10, 64); err == nil {
			id = uint(parsed)
		}
	}
	if id == 0 {
		return 0, errors.New("user_id invalid")
	}
	return id, nil
}
