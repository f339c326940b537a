package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tahcohcat/puravida-web/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return models.Region(fl.Field().String()).Valid()
	})
	v.RegisterValidation("loctype", func(fl validator.FieldLevel) bool {
		return models.LocationType(fl.Field().String()).Valid()
	})
	return v
}

// requestError is a 400 with optional per-field details.
type requestError struct {
	Message string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *requestError) Error() string { return e.Message }

func decodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return &requestError{Message: "invalid request body", Details: map[string]string{"body": err.Error()}}
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *requestError {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return &requestError{Message: "validation failed", Details: details}
	}
	return &requestError{Message: "validation failed"}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "region":
		return "must be a known region"
	case "loctype":
		return "must be a known location type"
	}
	return "is invalid"
}
