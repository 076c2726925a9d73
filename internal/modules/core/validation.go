package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Validator interface {
	Validate() error
}

type ValidationError struct {
	ValidationErrors []error
}

func (e ValidationError) Error() string {
	var b strings.Builder
	for _, err := range e.ValidationErrors {
		b.WriteString(" '")
		b.WriteString(err.Error())
		b.WriteString("'")
	}
	return b.String()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.NullDecimal); ok && d.Valid {
			return d.Decimal.InexactFloat64()
		}
		return nil
	}, decimal.NullDecimal{})

	return v
}

// ValidateStruct checks the `validate` tags of s and collects every failed rule.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	validationErr := ValidationError{ValidationErrors: make([]error, 0, len(fieldErrors))}
	for _, fe := range fieldErrors {
		validationErr.ValidationErrors = append(validationErr.ValidationErrors, fieldError(fe))
	}

	return validationErr
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Errorf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Errorf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s failed '%s' validation", fe.Field(), fe.Tag())
	}
}

type RequestValidationBehavior struct{}

func (b *RequestValidationBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	if request, ok := request.(Validator); ok {
		if err := request.Validate(); err != nil {
			return nil, NewCommandError(http.StatusBadRequest, err, WithReason("request validation failed"))
		}
	}

	return next(ctx, request)
}
