package httpserver

import (
	"errors"
	"fmt"
	"moviereview/errs"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{validate: v}
}

// Validate reports only the first failing field, in declaration order.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return errs.Errorf(errs.EINVALID, "%s", formatValidationError(err))
	}
	return nil
}

func formatValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Error: validation failed"
	}

	fe := fieldErrs[0]
	field := fe.Field()
	if field == "" {
		field = fe.StructField()
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Error: You must provide a '%s' key", field)
	case "max":
		return fmt.Sprintf("Error: '%s' must be at most %s characters", field, fe.Param())
	}
	return fmt.Sprintf("Error: '%s' failed on %s", field, fe.Tag())
}
