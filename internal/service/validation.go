package service

import (
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tbcare/screening-api/internal/repository"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
)

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validatePayload converts validator failures into InvalidRequest naming the first offending field.
func validatePayload(validate *validator.Validate, payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return appErrors.Wrap(err, appErrors.KindInvalidRequest, fmt.Sprintf("missing %s", fieldErrs[0].Field()))
	}
	return appErrors.Wrap(err, appErrors.KindInvalidRequest, "invalid payload")
}

// classify maps repository failures onto the error taxonomy.
// A missing row on a path lookup is the caller's mistake, so it becomes InvalidRequest.
func classify(err error, entity, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.Wrap(err, appErrors.KindInvalidRequest, entity+" not found")
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.Wrap(err, appErrors.KindConflict, entity+" already exists")
	case errors.Is(err, repository.ErrInvalidReference):
		return appErrors.Wrap(err, appErrors.KindInvalidRequest, entity+" references a missing entity")
	default:
		return appErrors.Wrap(err, appErrors.KindInternal, op)
	}
}
