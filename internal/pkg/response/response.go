package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookable-dev/resource-booking-backend/internal/pkg/apperror"
)

// Envelope is the JSON wrapper every endpoint responds with.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// OK sends a 200 response with the given message and payload.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created sends a 201 response with the given message and payload.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Error sends a failure envelope. The status code is taken from the AppError
// if the error is one; anything else is treated as a 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, Envelope{Success: false, Message: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "internal server error"})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope{Success: false, Message: message})
}
