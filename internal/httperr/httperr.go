package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// ======================================================
// Business → HTTP
// ======================================================

var businessStatus = map[string]int{
	"session_not_found": http.StatusNotFound,
	"invalid_date":      http.StatusBadRequest,
	"date_before_min":   http.StatusBadRequest,
	"invalid_slot":      http.StatusBadRequest,
}

var businessMessage = map[string]string{
	"session_not_found": "Session not found or expired.",
	"invalid_date":      "Invalid date, expected yyyy-mm-dd.",
	"date_before_min":   "Date must not be before today.",
	"invalid_slot":      "Time is not one of the available slots.",
}

// Status devolve o status HTTP de err; erros desconhecidos viram 500.
func Status(err error) (int, string, string) {
	code := CodeOf(err)
	if status, ok := businessStatus[code]; ok {
		return status, code, businessMessage[code]
	}
	return http.StatusInternalServerError, "internal_error", "Unexpected error."
}

func FromError(c *gin.Context, err error) {
	status, code, message := Status(err)
	Write(c, status, code, message)
}
