package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
)

func init() {
	// Report validation failures with JSON field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	}
}

// bindJSON decodes the request body into dst, rejecting unknown fields, and runs
// the binding validations.
func bindJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return apperrors.Validation("request body is required")
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return apperrors.Validation("request body must contain a single JSON object")
	}

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return apperrors.Validation("request body is required")
	case errors.As(err, &typeErr):
		return apperrors.Validation(fmt.Sprintf("%s has the wrong type", typeErr.Field))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.TrimPrefix(err.Error(), "json: unknown field ")
		return apperrors.Validation(fmt.Sprintf("unknown field %s", field))
	default:
		return apperrors.Wrap(apperrors.KindValidation, "invalid JSON body", err)
	}
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Wrap(apperrors.KindValidation, "invalid request", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.Validation(fe.Field() + " is required")
	case "email":
		return apperrors.Validation(fe.Field() + " is invalid")
	case "min":
		if fe.Kind() == reflect.String {
			return apperrors.Validation(fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
		}
		return apperrors.Validation(fmt.Sprintf("%s must have at least %s entries", fe.Field(), fe.Param()))
	default:
		return apperrors.Validation(fe.Field() + " is invalid")
	}
}

// recipeID parses a recipe id path parameter. Malformed ids name no recipe.
func recipeID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apperrors.NotFound("recipe not found")
	}
	return id, nil
}
