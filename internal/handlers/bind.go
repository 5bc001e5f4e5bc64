package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/timetrackhq/timesheet-api/internal/apperrors"
)

// bindJSON binds the request body and converts binding failures into a
// validation error listing the offending fields.
func bindJSON(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, len(verrs))
		for i, fe := range verrs {
			if fe.Tag() == "required" {
				messages[i] = fmt.Sprintf("%s is required", fe.Field())
			} else {
				messages[i] = fmt.Sprintf("%s is invalid", fe.Field())
			}
		}
		return apperrors.Validation(messages...)
	}

	return apperrors.Validation("invalid request body")
}

// parseDate parses a YYYY-MM-DD value, naming the field on failure.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, apperrors.Validation(field + " must be a valid date (YYYY-MM-DD)")
	}
	return t, nil
}

// parseOptionalDate parses a YYYY-MM-DD value when present.
func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseIDParam parses the :id path parameter.
func parseIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.Validation("id must be a positive integer")
	}
	return id, nil
}
