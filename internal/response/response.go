// Package response renders the uniform {message, body} envelope around
// every API response.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timetrackhq/timesheet-api/internal/apperrors"
)

// Envelope is the wire shape of every response. Message is a string for
// simple outcomes or an array of strings for validation failures.
type Envelope struct {
	Message interface{} `json:"message"`
	Body    interface{} `json:"body"`
}

// OK writes a 200 envelope.
func OK(c *gin.Context, message string, body interface{}) {
	success(c, http.StatusOK, message, body)
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, body interface{}) {
	success(c, http.StatusCreated, message, body)
}

func success(c *gin.Context, status int, message string, body interface{}) {
	if body == nil {
		body = gin.H{}
	}
	c.JSON(status, Envelope{Message: message, Body: body})
}

// Error renders err into the envelope with an empty body and the status
// matching its kind. Errors that are not AppErrors render as a generic 500;
// no internal detail leaks past the handler boundary.
func Error(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Internal()
	}

	var message interface{}
	if len(appErr.Messages) == 1 {
		message = appErr.Messages[0]
	} else {
		message = appErr.Messages
	}

	c.JSON(statusOf(appErr.Kind), Envelope{Message: message, Body: gin.H{}})
}

// AbortWithError renders err and aborts the gin handler chain. Used by
// middleware.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

func statusOf(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindAuthentication:
		return http.StatusUnauthorized
	case apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
